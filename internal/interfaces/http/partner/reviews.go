package partner

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
)

func (h *Handler) reviewBoardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		board, err := h.reviews.Board(ctx, user.ID, chi.URLParam(r, "establishmentID"))
		if err != nil {
			h.writeEstablishmentError(w, err)
			return
		}

		reviews := make([]reviewResponse, 0, len(board.Reviews))
		for _, review := range board.Reviews {
			reviews = append(reviews, reviewResponse{
				ID:      review.ID,
				Name:    review.Name,
				Rating:  review.Rating,
				Comment: review.Comment,
				Date:    review.Date,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewBoardResponse{
			Reviews:   reviews,
			Count:     board.Summary.Count,
			Average:   board.Summary.Average,
			Histogram: board.Summary.PerStar,
		})
	}
}

func (h *Handler) reviewRemoveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		establishmentID := chi.URLParam(r, "establishmentID")
		reviewID := strings.TrimSpace(chi.URLParam(r, "reviewID"))
		fallbackIndex, _ := common.ParsePositiveInt(r.URL.Query().Get("indice"), -1)

		removed, err := h.reviews.Remove(ctx, user.ID, establishmentID, reviewID, fallbackIndex)
		if err != nil {
			h.writeEstablishmentError(w, err)
			return
		}
		if !removed {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "avaliação não encontrada"})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "removida"})
	}
}
