package partner

import (
	"context"
	"net/http"
	"time"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
)

func (h *Handler) dashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		overview, err := h.dashboard.Overview(ctx, user.ID)
		if err != nil {
			h.logger.Printf("painel do parceiro falhou owner=%q err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível carregar o painel"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, dashboardResponse{
			Establishments: overview.Establishments,
			TotalReviews:   overview.TotalReviews,
			AverageRating:  overview.AverageRating,
		})
	}
}
