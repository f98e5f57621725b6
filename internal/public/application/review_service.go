package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

// reviewCommandService is the concrete implementation of
// ReviewCommandService.
type reviewCommandService struct {
	repo ReviewRepository
	loc  *time.Location
}

// NewReviewCommandService creates a new review command service. A data
// exibida na avaliação é formatada no fuso informado.
func NewReviewCommandService(repo ReviewRepository, loc *time.Location) ReviewCommandService {
	if loc == nil {
		loc = time.UTC
	}
	return &reviewCommandService{repo: repo, loc: loc}
}

func (s *reviewCommandService) Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, SubmitOutcome, error) {
	ownerID := strings.TrimSpace(cmd.OwnerID)
	establishmentID := strings.TrimSpace(cmd.EstablishmentID)
	// Referência irresolúvel é descarte silencioso, nunca erro.
	if ownerID == "" || establishmentID == "" {
		return nil, SubmitSkipped, nil
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, SubmitSkipped, ErrInvalidRating
	}

	review := domain.Review{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(cmd.AuthorName),
		Rating:  cmd.Rating,
		Comment: strings.TrimSpace(cmd.Comment),
		Date:    time.Now().In(s.loc).Format("02/01/2006"),
	}

	est, err := s.repo.FindByKey(ctx, ownerID, establishmentID)
	if err != nil {
		return nil, SubmitSkipped, err
	}

	payload := domain.InsertReview(est.Reviews, review)
	if err := s.repo.ApplyWrite(ctx, ownerID, establishmentID, est.ReviewsCount, est.Rating, payload); err != nil {
		return nil, SubmitSkipped, err
	}
	return &review, SubmitApplied, nil
}

func (s *reviewCommandService) Delete(ctx context.Context, cmd DeleteReviewCommand) (DeleteOutcome, error) {
	ownerID := strings.TrimSpace(cmd.OwnerID)
	establishmentID := strings.TrimSpace(cmd.EstablishmentID)
	if ownerID == "" || establishmentID == "" {
		return DeleteSkipped, nil
	}

	est, err := s.repo.FindByKey(ctx, ownerID, establishmentID)
	if err != nil {
		return DeleteSkipped, err
	}

	target, index, ok := resolveTarget(est.Reviews, cmd)
	if !ok {
		return DeleteUnchanged, nil
	}

	// Tutores só removem as próprias avaliações; o dono do estabelecimento
	// modera qualquer uma.
	if !cmd.RequesterOwner && !strings.EqualFold(strings.TrimSpace(target.Name), strings.TrimSpace(cmd.RequesterName)) {
		return DeleteForbidden, nil
	}

	// O índice posicional remove um único elemento; duplicatas de conteúdo em
	// outras posições não podem ser arrastadas junto.
	var payload domain.WritePayload
	var changed bool
	if index >= 0 {
		payload, changed = domain.DeleteReviewAt(est.Reviews, index)
	} else {
		payload, changed = domain.DeleteReview(est.Reviews, target, -1)
	}
	if !changed {
		return DeleteUnchanged, nil
	}
	if err := s.repo.ApplyWrite(ctx, ownerID, establishmentID, est.ReviewsCount, est.Rating, payload); err != nil {
		return DeleteSkipped, err
	}
	return DeleteApplied, nil
}

// resolveTarget localiza a avaliação alvo na sequência atual: primeiro pelo
// ID gerado, depois pelo conteúdo informado, por fim pelo índice posicional
// herdado do cliente legado. O índice retornado é -1 exceto quando a
// resolução foi posicional.
func resolveTarget(reviews []domain.Review, cmd DeleteReviewCommand) (domain.Review, int, bool) {
	if id := strings.TrimSpace(cmd.ReviewID); id != "" {
		for _, review := range reviews {
			if review.ID == id {
				return review, -1, true
			}
		}
		return domain.Review{}, -1, false
	}

	target := cmd.Target
	for _, review := range reviews {
		if review.Name == target.Name &&
			review.Date == target.Date &&
			review.Comment == target.Comment &&
			review.Rating == target.Rating {
			return review, -1, true
		}
	}
	if cmd.FallbackIndex >= 0 && cmd.FallbackIndex < len(reviews) {
		return reviews[cmd.FallbackIndex], cmd.FallbackIndex, true
	}
	return domain.Review{}, -1, false
}
