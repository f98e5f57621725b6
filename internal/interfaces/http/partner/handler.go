package partner

import (
	"log"

	"github.com/go-chi/chi/v5"

	partnerapp "github.com/petzim/petzim-services/api/internal/partner/application"
)

// Handler wires partner HTTP endpoints to application services.
// Todas as rotas deste conjunto exigem conta Parceiro; o middleware é
// aplicado pelo servidor ao montar o grupo.
type Handler struct {
	logger         *log.Logger
	establishments partnerapp.EstablishmentService
	reviews        partnerapp.ReviewService
	dashboard      partnerapp.DashboardService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *log.Logger
	Establishments partnerapp.EstablishmentService
	Reviews        partnerapp.ReviewService
	Dashboard      partnerapp.DashboardService
}

// NewHandler constructs a partner HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		establishments: cfg.Establishments,
		reviews:        cfg.Reviews,
		dashboard:      cfg.Dashboard,
	}
}

// Register mounts all partner routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard", h.dashboardHandler())
	r.Get("/establishments", h.establishmentListHandler())
	r.Post("/establishments", h.establishmentCreateHandler())
	r.Get("/establishments/{establishmentID}", h.establishmentDetailHandler())
	r.Patch("/establishments/{establishmentID}", h.establishmentUpdateHandler())
	r.Delete("/establishments/{establishmentID}", h.establishmentDeleteHandler())
	r.Get("/establishments/{establishmentID}/reviews", h.reviewBoardHandler())
	r.Delete("/establishments/{establishmentID}/reviews/{reviewID}", h.reviewRemoveHandler())
}
