package application

import (
	"context"
	"errors"

	partnerdomain "github.com/petzim/petzim-services/api/internal/partner/domain"
	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

// Erros sentinela do contexto de parceiro.
var (
	ErrNotFound  = errors.New("recurso não encontrado")
	ErrConflict  = errors.New("escrita concorrente detectada")
	ErrForbidden = errors.New("estabelecimento pertence a outro parceiro")
)

// EstablishmentRepository exposes partner operations on establishments.
type EstablishmentRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]partnerdomain.Establishment, error)
	FindByKey(ctx context.Context, ownerID, establishmentID string) (*partnerdomain.Establishment, error)
	Create(ctx context.Context, establishment *partnerdomain.Establishment) error
	UpdateProfile(ctx context.Context, establishment *partnerdomain.Establishment) error
	Delete(ctx context.Context, ownerID, establishmentID string) error
}

// ReviewRepository exposes the review sequence of an owned establishment.
// A escrita é condicionada ao resumo lido, como no contexto público.
type ReviewRepository interface {
	FindReviews(ctx context.Context, ownerID, establishmentID string) ([]publicdomain.Review, int, float64, error)
	ApplyWrite(ctx context.Context, ownerID, establishmentID string, expectedCount int, expectedRating float64, payload publicdomain.WritePayload) error
}

// EstablishmentService describes partner establishment use-cases.
type EstablishmentService interface {
	List(ctx context.Context, ownerID string) ([]partnerdomain.Establishment, error)
	Detail(ctx context.Context, ownerID, establishmentID string) (*partnerdomain.Establishment, error)
	Create(ctx context.Context, ownerID string, cmd UpsertEstablishmentCommand) (*partnerdomain.Establishment, error)
	Update(ctx context.Context, ownerID, establishmentID string, cmd UpdateEstablishmentCommand) (*partnerdomain.Establishment, error)
	Delete(ctx context.Context, ownerID, establishmentID string) error
}

// ReviewService describes the partner moderation use-cases.
type ReviewService interface {
	Board(ctx context.Context, ownerID, establishmentID string) (*ReviewBoard, error)
	Remove(ctx context.Context, ownerID, establishmentID, reviewID string, fallbackIndex int) (bool, error)
}

// DashboardService aggregates the partner KPIs.
type DashboardService interface {
	Overview(ctx context.Context, ownerID string) (*DashboardOverview, error)
}

// UpsertEstablishmentCommand contains inputs for creating establishments.
type UpsertEstablishmentCommand struct {
	Name        string
	Category    string
	Address     string
	Phone       string
	Hours       string
	Description string
	PriceTier   string
	Services    []string
}

// UpdateEstablishmentCommand contains the partial update of the descriptive
// fields. Campo nulo significa manter o valor atual; os caches de avaliação
// nunca entram aqui.
type UpdateEstablishmentCommand struct {
	Name        *string
	Category    *string
	Address     *string
	Phone       *string
	Hours       *string
	Description *string
	PriceTier   *string
	Services    *[]string
}

// ReviewBoard é a visão de moderação: a sequência completa mais o resumo
// recomputado dela, não dos caches.
type ReviewBoard struct {
	Reviews []publicdomain.Review
	Summary publicdomain.ReviewSummary
}

// DashboardOverview carrega os indicadores da tela inicial do parceiro.
// AverageRating é a média das médias dos estabelecimentos avaliados;
// estabelecimentos sem avaliação ficam fora desse cálculo.
type DashboardOverview struct {
	Establishments int
	TotalReviews   int
	AverageRating  float64
}
