package application

import (
	"context"
	"errors"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

// Erros sentinela compartilhados pelos serviços do contexto público.
var (
	ErrNotFound      = errors.New("recurso não encontrado")
	ErrConflict      = errors.New("escrita concorrente detectada")
	ErrEmailTaken    = errors.New("e-mail já cadastrado")
	ErrBadPassword   = errors.New("credenciais inválidas")
	ErrInvalidRating = errors.New("nota fora do intervalo de 1 a 5")
	ErrInvalidInput  = errors.New("dados obrigatórios ausentes ou inválidos")
)

// EstablishmentRepository é o porto de leitura de estabelecimentos no
// contexto público.
type EstablishmentRepository interface {
	FindAll(ctx context.Context) ([]domain.Establishment, error)
	FindByKey(ctx context.Context, ownerID, establishmentID string) (*domain.Establishment, error)
}

// ReviewRepository persists review-sequence writes.
// ApplyWrite grava a sequência nova junto dos caches, condicionada ao
// resumo esperado (contagem e média lidos antes do cálculo); se o documento
// mudou no intervalo a gravação não acontece e ErrConflict é retornado.
type ReviewRepository interface {
	FindByKey(ctx context.Context, ownerID, establishmentID string) (*domain.Establishment, error)
	ApplyWrite(ctx context.Context, ownerID, establishmentID string, expectedCount int, expectedRating float64, payload domain.WritePayload) error
}

// AccountRepository persists and looks up user accounts keyed by the
// sanitized e-mail.
type AccountRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByKey(ctx context.Context, key string) (*domain.User, error)
}

// EstablishmentQueryService é o modelo de leitura da vitrine pública.
type EstablishmentQueryService interface {
	List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	Detail(ctx context.Context, ownerID, establishmentID string) (*domain.Establishment, error)
}

// ReviewCommandService handles review writing use-cases.
type ReviewCommandService interface {
	Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, SubmitOutcome, error)
	Delete(ctx context.Context, cmd DeleteReviewCommand) (DeleteOutcome, error)
}

// AccountService handles signup and login.
type AccountService interface {
	Signup(ctx context.Context, cmd SignupCommand) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// SubmitReviewCommand captures the input of a review post.
type SubmitReviewCommand struct {
	OwnerID         string
	EstablishmentID string
	AuthorName      string
	Rating          int
	Comment         string
}

// DeleteReviewCommand captures the input of a review removal. Target and
// FallbackIndex cover documents written by the legacy client, whose reviews
// carry no generated ID.
type DeleteReviewCommand struct {
	OwnerID         string
	EstablishmentID string
	ReviewID        string
	Target          domain.Review
	FallbackIndex   int
	RequesterName   string
	RequesterOwner  bool
}

// SignupCommand captures the input of an account creation.
type SignupCommand struct {
	FullName    string
	Email       string
	Password    string
	AccountType string
}

// SubmitOutcome distingue gravação efetiva de descarte silencioso (chaves de
// destino ausentes, comportamento herdado do cliente legado).
type SubmitOutcome int

const (
	SubmitApplied SubmitOutcome = iota
	SubmitSkipped
)

// DeleteOutcome distingue os quatro desfechos possíveis de uma remoção.
type DeleteOutcome int

const (
	DeleteApplied DeleteOutcome = iota
	DeleteUnchanged
	DeleteSkipped
	DeleteForbidden
)
