package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/petzim/petzim-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger               *log.Logger
	establishmentQueries publicapp.EstablishmentQueryService
	reviewCommands       publicapp.ReviewCommandService
	accounts             publicapp.AccountService
	jwtSecret            []byte
	jwtIssuer            string
	jwtAudience          string
	tokenTTL             time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger               *log.Logger
	EstablishmentQueries publicapp.EstablishmentQueryService
	ReviewCommands       publicapp.ReviewCommandService
	Accounts             publicapp.AccountService
	JWTSecret            []byte
	JWTIssuer            string
	JWTAudience          string
	TokenTTL             time.Duration
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Handler{
		logger:               cfg.Logger,
		establishmentQueries: cfg.EstablishmentQueries,
		reviewCommands:       cfg.ReviewCommands,
		accounts:             cfg.Accounts,
		jwtSecret:            cfg.JWTSecret,
		jwtIssuer:            cfg.JWTIssuer,
		jwtAudience:          cfg.JWTAudience,
		tokenTTL:             ttl,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/signup", h.signupHandler())
	r.Post("/auth/login", h.loginHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())

	r.Get("/establishments", h.establishmentListHandler())
	r.Get("/establishments/{ownerID}/{establishmentID}", h.establishmentDetailHandler())
	r.With(authMiddleware).Post("/establishments/{ownerID}/{establishmentID}/reviews", h.reviewCreateHandler())
	r.With(authMiddleware).Delete("/establishments/{ownerID}/{establishmentID}/reviews", h.reviewDeleteHandler())
	r.With(authMiddleware).Delete("/establishments/{ownerID}/{establishmentID}/reviews/{reviewID}", h.reviewDeleteHandler())
}
