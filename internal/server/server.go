package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/petzim/petzim-services/api/internal/config"
	mongodoc "github.com/petzim/petzim-services/api/internal/infrastructure/mongo"
	commonhttp "github.com/petzim/petzim-services/api/internal/interfaces/http/common"
	partnerhttp "github.com/petzim/petzim-services/api/internal/interfaces/http/partner"
	publichttp "github.com/petzim/petzim-services/api/internal/interfaces/http/public"
	partnerapp "github.com/petzim/petzim-services/api/internal/partner/application"
	publicapp "github.com/petzim/petzim-services/api/internal/public/application"
)

// Server gerencia o ciclo de vida HTTP e injeta as dependências nos
// handlers dos contextos público e de parceiro. É a raiz de composição da
// aplicação; nenhuma regra de domínio vive aqui.
type Server struct {
	logger              *log.Logger
	client              *mongo.Client
	database            *mongo.Database
	location            *time.Location
	catalog             *publicapp.Catalog
	watcher             *mongodoc.EstablishmentWatcher
	watchEnabled        bool
	establishmentQuery  publicapp.EstablishmentQueryService
	reviewCommands      publicapp.ReviewCommandService
	accountService      publicapp.AccountService
	partnerEstabService partnerapp.EstablishmentService
	partnerReviews      partnerapp.ReviewService
	partnerDashboard    partnerapp.DashboardService
	jwtSecret           []byte
	jwtIssuer           string
	jwtAudience         string
	tokenTTL            time.Duration
	addr                string
	allowedOrigins      []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run inicia o servidor HTTP, o observador do catálogo e a montagem das
// rotas. Bloqueia até o desligamento.
func (s *Server) Run() error {
	watchCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	if s.watchEnabled {
		go func() {
			if err := s.watcher.Run(watchCtx); err != nil {
				s.logger.Printf("observador do catálogo encerrou com erro: %v", err)
			}
		}()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:               s.logger,
		EstablishmentQueries: s.establishmentQuery,
		ReviewCommands:       s.reviewCommands,
		Accounts:             s.accountService,
		JWTSecret:            s.jwtSecret,
		JWTIssuer:            s.jwtIssuer,
		JWTAudience:          s.jwtAudience,
		TokenTTL:             s.tokenTTL,
	})
	publicHandler.Register(router, s.authMiddleware)

	partnerHandler := partnerhttp.NewHandler(partnerhttp.Config{
		Logger:         s.logger,
		Establishments: s.partnerEstabService,
		Reviews:        s.partnerReviews,
		Dashboard:      s.partnerDashboard,
	})
	router.Route("/partner", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.requirePartner)
		partnerHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("servidor HTTP no ar: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s, stopWatcher)
	return nil
}

// withCORS aplica os cabeçalhos de CORS conforme a lista de origens
// permitidas.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler verifica a conexão com o MongoDB; responde estado de
// infraestrutura, não de domínio.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// authMiddleware valida o JWT do cabeçalho Authorization e coloca o usuário
// autenticado no contexto da requisição.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "cabeçalho Authorization ausente"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "informe um token Bearer"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token de acesso vazio"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:          claims.Subject,
			Name:        claims.Name,
			AccountType: claims.AccountType,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePartner restringe o grupo de rotas a contas Parceiro. Depende de
// authMiddleware já ter populado o contexto.
func (s *Server) requirePartner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := commonhttp.UserFromContext(r.Context())
		if !ok || !user.IsPartner() {
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "rota exclusiva para contas Parceiro"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// parseAuthToken verifica assinatura, emissor, audiência e prazo do token.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.jwtSecret, nil
	}, jwt.WithLeeway(30*time.Second))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token de acesso inválido")
	}
	if s.jwtIssuer != "" && claims.Issuer != s.jwtIssuer {
		return nil, fmt.Errorf("token de acesso inválido")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token de acesso inválido")
	}
	if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
		return nil, fmt.Errorf("token de acesso inválido")
	}
	return claims, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name        string `json:"name,omitempty"`
	AccountType string `json:"accountType,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("falha ao codificar JSON: %v", err)
	}
}

// shutdown desconecta o cliente Mongo com timeout para não vazar conexões.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("erro ao desconectar do MongoDB: %v", err)
	}
}

// waitForShutdown acompanha o ListenAndServe e os sinais do SO para fazer o
// desligamento gracioso, parando também o observador do catálogo.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server, stopWatcher context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("servidor encerrou com erro: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("sinal %s recebido, iniciando desligamento", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("erro no desligamento do servidor: %v", err)
		}
	}

	stopWatcher()
	srv.shutdown(context.Background())
}

// New monta o Server resolvendo repositórios e serviços de aplicação a
// partir da configuração e do cliente Mongo.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
		cfg.ServerLog.Printf("falha ao carregar o fuso %s: %v, usando BRT", cfg.Timezone, err)
	}

	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		location:       loc,
		watchEnabled:   cfg.CatalogWatchEnabled,
		jwtSecret:      cfg.JWTSecret,
		jwtIssuer:      cfg.JWTIssuer,
		jwtAudience:    cfg.JWTAudience,
		tokenTTL:       cfg.TokenTTL,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	establishmentRepo := mongodoc.NewEstablishmentRepository(srv.database, cfg.EstablishmentCollection)
	reviewRepo := mongodoc.NewReviewRepository(srv.database, cfg.EstablishmentCollection)
	accountRepo := mongodoc.NewAccountRepository(srv.database, cfg.UserCollection)

	srv.catalog = publicapp.NewCatalog()
	srv.watcher = mongodoc.NewEstablishmentWatcher(srv.database, cfg.EstablishmentCollection, establishmentRepo, srv.catalog, srv.logger)

	srv.establishmentQuery = publicapp.NewEstablishmentQueryService(establishmentRepo, srv.catalog)
	srv.reviewCommands = publicapp.NewReviewCommandService(reviewRepo, loc)
	srv.accountService = publicapp.NewAccountService(accountRepo)

	partnerEstabRepo := mongodoc.NewPartnerEstablishmentRepository(srv.database, cfg.EstablishmentCollection)
	partnerReviewRepo := mongodoc.NewPartnerReviewRepository(srv.database, cfg.EstablishmentCollection)
	srv.partnerEstabService = partnerapp.NewEstablishmentService(partnerEstabRepo)
	srv.partnerReviews = partnerapp.NewReviewService(partnerEstabRepo, partnerReviewRepo)
	srv.partnerDashboard = partnerapp.NewDashboardService(partnerEstabRepo)

	return srv
}
