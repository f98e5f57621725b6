package application

import (
	"context"
	"strings"

	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

// reviewService implements ReviewService.
type reviewService struct {
	establishments EstablishmentRepository
	reviews        ReviewRepository
}

func NewReviewService(establishments EstablishmentRepository, reviews ReviewRepository) ReviewService {
	return &reviewService{establishments: establishments, reviews: reviews}
}

func (s *reviewService) Board(ctx context.Context, ownerID, establishmentID string) (*ReviewBoard, error) {
	// Garante a posse antes de expor a sequência.
	if _, err := s.establishments.FindByKey(ctx, ownerID, establishmentID); err != nil {
		return nil, err
	}

	reviews, _, _, err := s.reviews.FindReviews(ctx, ownerID, establishmentID)
	if err != nil {
		return nil, err
	}

	return &ReviewBoard{
		Reviews: reviews,
		Summary: publicdomain.Summarize(reviews),
	}, nil
}

func (s *reviewService) Remove(ctx context.Context, ownerID, establishmentID, reviewID string, fallbackIndex int) (bool, error) {
	reviews, cachedCount, cachedRating, err := s.reviews.FindReviews(ctx, ownerID, establishmentID)
	if err != nil {
		return false, err
	}

	// Resolve o alvo na sequência atual antes de delegar; um id desconhecido
	// não pode degradar para casamento por conteúdo vazio, e o índice
	// posicional remove um único elemento mesmo com duplicatas de conteúdo.
	var payload publicdomain.WritePayload
	var changed bool
	if id := strings.TrimSpace(reviewID); id != "" {
		found := false
		var target publicdomain.Review
		for _, review := range reviews {
			if review.ID == id {
				target = review
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
		payload, changed = publicdomain.DeleteReview(reviews, target, -1)
	} else {
		payload, changed = publicdomain.DeleteReviewAt(reviews, fallbackIndex)
	}
	if !changed {
		return false, nil
	}
	if err := s.reviews.ApplyWrite(ctx, ownerID, establishmentID, cachedCount, cachedRating, payload); err != nil {
		return false, err
	}
	return true, nil
}
