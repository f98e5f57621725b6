package partner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
	partnerapp "github.com/petzim/petzim-services/api/internal/partner/application"
	partnerdomain "github.com/petzim/petzim-services/api/internal/partner/domain"
)

func (h *Handler) establishmentListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		establishments, err := h.establishments.List(ctx, user.ID)
		if err != nil {
			h.logger.Printf("listagem do parceiro falhou owner=%q err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível carregar os estabelecimentos"})
			return
		}

		items := make([]establishmentResponse, 0, len(establishments))
		for _, est := range establishments {
			items = append(items, buildEstablishmentResponse(est))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, establishmentListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) establishmentDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		est, err := h.establishments.Detail(ctx, user.ID, chi.URLParam(r, "establishmentID"))
		if err != nil {
			h.writeEstablishmentError(w, err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildEstablishmentResponse(*est))
	}
}

func (h *Handler) establishmentCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		var req upsertEstablishmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
			return
		}

		est, err := h.establishments.Create(ctx, user.ID, partnerapp.UpsertEstablishmentCommand{
			Name:        req.Name,
			Category:    req.Category,
			Address:     req.Address,
			Phone:       req.Phone,
			Hours:       req.Hours,
			Description: req.Description,
			PriceTier:   req.PriceTier,
			Services:    req.Services,
		})
		if err != nil {
			if isValidationError(err) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			h.logger.Printf("cadastro de estabelecimento falhou owner=%q err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível cadastrar o estabelecimento"})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildEstablishmentResponse(*est))
	}
}

func (h *Handler) establishmentUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		var req updateEstablishmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
			return
		}

		est, err := h.establishments.Update(ctx, user.ID, chi.URLParam(r, "establishmentID"), partnerapp.UpdateEstablishmentCommand{
			Name:        req.Name,
			Category:    req.Category,
			Address:     req.Address,
			Phone:       req.Phone,
			Hours:       req.Hours,
			Description: req.Description,
			PriceTier:   req.PriceTier,
			Services:    req.Services,
		})
		if err != nil {
			if isValidationError(err) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			h.writeEstablishmentError(w, err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildEstablishmentResponse(*est))
	}
}

func (h *Handler) establishmentDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "falha ao recuperar o usuário autenticado"})
			return
		}

		if err := h.establishments.Delete(ctx, user.ID, chi.URLParam(r, "establishmentID")); err != nil {
			h.writeEstablishmentError(w, err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "removido"})
	}
}

func (h *Handler) writeEstablishmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, partnerapp.ErrNotFound):
		common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "estabelecimento não encontrado"})
	case errors.Is(err, partnerapp.ErrForbidden):
		common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "este estabelecimento pertence a outro parceiro"})
	case errors.Is(err, partnerapp.ErrConflict):
		common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "o estabelecimento foi atualizado por outra pessoa, tente novamente"})
	default:
		h.logger.Printf("operação de estabelecimento falhou: %v", err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "não foi possível concluir a operação"})
	}
}

// isValidationError separa as falhas de validação do domínio dos erros de
// infraestrutura: só as primeiras voltam como 400 com a mensagem original.
func isValidationError(err error) bool {
	return errors.Is(err, partnerdomain.ErrValidation)
}

func buildEstablishmentResponse(est partnerdomain.Establishment) establishmentResponse {
	return establishmentResponse{
		ID:           est.ID,
		OwnerID:      est.OwnerID,
		Name:         est.Name,
		Category:     est.Category.String(),
		Address:      est.Address,
		Phone:        est.Phone,
		Hours:        est.Hours,
		Description:  est.Description,
		PriceTier:    est.PriceTier,
		Services:     append([]string{}, est.Services...),
		ReviewsCount: est.ReviewsCount,
		Rating:       est.Rating,
	}
}
