package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
	publicapp "github.com/petzim/petzim-services/api/internal/public/application"
	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		var req reviewCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
			return
		}

		cmd := publicapp.SubmitReviewCommand{
			OwnerID:         strings.TrimSpace(chi.URLParam(r, "ownerID")),
			EstablishmentID: strings.TrimSpace(chi.URLParam(r, "establishmentID")),
			AuthorName:      reviewerDisplayName(user),
			Rating:          req.Rating,
			Comment:         req.Comment,
		}

		review, outcome, err := h.reviewCommands.Submit(ctx, cmd)
		if err != nil {
			switch {
			case errors.Is(err, publicapp.ErrInvalidRating):
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "a nota deve ser um número inteiro de 1 a 5"})
			case errors.Is(err, publicapp.ErrNotFound):
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "estabelecimento não encontrado"})
			case errors.Is(err, publicapp.ErrConflict):
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "o estabelecimento foi atualizado por outra pessoa, tente novamente"})
			default:
				h.logger.Printf("envio de avaliação falhou: %v", err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível registrar a avaliação"})
			}
			return
		}
		if outcome == publicapp.SubmitSkipped {
			common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ignorado"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildReviewResponse(*review))
	}
}

func (h *Handler) reviewDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		ownerID := strings.TrimSpace(chi.URLParam(r, "ownerID"))
		establishmentID := strings.TrimSpace(chi.URLParam(r, "establishmentID"))
		reviewID := strings.TrimSpace(chi.URLParam(r, "reviewID"))

		cmd := publicapp.DeleteReviewCommand{
			OwnerID:         ownerID,
			EstablishmentID: establishmentID,
			ReviewID:        reviewID,
			FallbackIndex:   -1,
			RequesterName:   user.Name,
			RequesterOwner:  user.ID == ownerID,
		}

		// Clientes antigos não conhecem o id gerado e enviam o conteúdo da
		// avaliação mais o índice de origem no corpo.
		if reviewID == "" && r.Body != nil {
			var req reviewDeleteRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
				return
			} else if err == nil {
				if req.Review != nil {
					cmd.Target = publicdomain.Review{
						ID:      req.Review.ID,
						Name:    req.Review.Name,
						Rating:  req.Review.Rating,
						Comment: req.Review.Comment,
						Date:    req.Review.Date,
					}
				}
				if req.FallbackIndex != nil {
					cmd.FallbackIndex = *req.FallbackIndex
				}
			}
		}

		outcome, err := h.reviewCommands.Delete(ctx, cmd)
		if err != nil {
			switch {
			case errors.Is(err, publicapp.ErrNotFound):
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "estabelecimento não encontrado"})
			case errors.Is(err, publicapp.ErrConflict):
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "o estabelecimento foi atualizado por outra pessoa, tente novamente"})
			default:
				h.logger.Printf("remoção de avaliação falhou: %v", err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível remover a avaliação"})
			}
			return
		}

		switch outcome {
		case publicapp.DeleteApplied:
			common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "removida"})
		case publicapp.DeleteForbidden:
			common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "você só pode remover as próprias avaliações"})
		case publicapp.DeleteSkipped:
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificação do estabelecimento incompleta"})
		default:
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "avaliação não encontrada"})
		}
	}
}
