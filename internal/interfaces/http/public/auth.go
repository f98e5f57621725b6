package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
	publicapp "github.com/petzim/petzim-services/api/internal/public/application"
	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

func (h *Handler) signupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
			return
		}

		user, err := h.accounts.Signup(ctx, publicapp.SignupCommand{
			FullName:    req.FullName,
			Email:       req.Email,
			Password:    req.Password,
			AccountType: req.AccountType,
		})
		if err != nil {
			switch {
			case errors.Is(err, publicapp.ErrInvalidInput):
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "preencha nome, e-mail válido, senha de ao menos 6 caracteres e o tipo de conta"})
			case errors.Is(err, publicapp.ErrEmailTaken):
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "este e-mail já está cadastrado"})
			default:
				h.logger.Printf("cadastro de conta falhou: %v", err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível concluir o cadastro"})
			}
			return
		}

		token, err := h.issueToken(*user)
		if err != nil {
			h.logger.Printf("emissão de token falhou: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível concluir o cadastro"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, authResponse{
			Token: token,
			User:  buildUserResponse(*user),
		})
	}
}

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
			return
		}

		user, err := h.accounts.Login(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, publicapp.ErrBadPassword) {
				common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "e-mail ou senha incorretos"})
				return
			}
			h.logger.Printf("login falhou: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível entrar agora"})
			return
		}

		token, err := h.issueToken(*user)
		if err != nil {
			h.logger.Printf("emissão de token falhou: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível entrar agora"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, authResponse{
			Token: token,
			User:  buildUserResponse(*user),
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}

// issueToken assina um JWT HS256 com o principal da conta; o middleware do
// servidor valida o mesmo conjunto de claims.
func (h *Handler) issueToken(user publicdomain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         user.ID,
		"name":        user.FullName,
		"accountType": user.AccountType,
		"iss":         h.jwtIssuer,
		"iat":         now.Unix(),
		"exp":         now.Add(h.tokenTTL).Unix(),
	}
	if h.jwtAudience != "" {
		claims["aud"] = h.jwtAudience
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
