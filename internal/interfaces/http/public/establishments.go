package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
	publicapp "github.com/petzim/petzim-services/api/internal/public/application"
	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

func (h *Handler) establishmentListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicdomain.ListingFilter{
			Search:      strings.TrimSpace(query.Get("busca")),
			Category:    strings.TrimSpace(query.Get("tipo")),
			RatingLabel: strings.TrimSpace(query.Get("nota")),
		}

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		if page <= 0 {
			page = 1
		}
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 10)
		if limit <= 0 {
			limit = 10
		}

		listings, err := h.establishmentQueries.List(ctx, filter)
		if err != nil {
			h.logger.Printf("listagem de estabelecimentos falhou: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível carregar os estabelecimentos"})
			return
		}

		total := len(listings)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]listingResponse, 0, end-start)
		for _, listing := range listings[start:end] {
			items = append(items, buildListingResponse(listing))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, listingListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

func (h *Handler) establishmentDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		ownerID := strings.TrimSpace(chi.URLParam(r, "ownerID"))
		establishmentID := strings.TrimSpace(chi.URLParam(r, "establishmentID"))
		if ownerID == "" || establishmentID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificação do estabelecimento incompleta"})
			return
		}

		est, err := h.establishmentQueries.Detail(ctx, ownerID, establishmentID)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "estabelecimento não encontrado"})
				return
			}
			h.logger.Printf("detalhe de estabelecimento falhou owner=%q id=%q err=%v", ownerID, establishmentID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível carregar o estabelecimento"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildEstablishmentDetailResponse(*est))
	}
}
