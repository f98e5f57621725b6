package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petzim/petzim-services/api/internal/partner/application"
	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

// PartnerReviewRepository implements the partner-context
// application.ReviewRepository using MongoDB.
type PartnerReviewRepository struct {
	collection *mongo.Collection
}

// NewPartnerReviewRepository creates a new Mongo-backed partner review
// repository.
func NewPartnerReviewRepository(db *mongo.Database, collectionName string) *PartnerReviewRepository {
	return &PartnerReviewRepository{collection: db.Collection(collectionName)}
}

// FindReviews devolve a sequência e o resumo em cache lido junto, para a
// escrita condicional subsequente.
func (r *PartnerReviewRepository) FindReviews(ctx context.Context, ownerID, establishmentID string) ([]publicdomain.Review, int, float64, error) {
	doc, err := findEstablishmentDocument(ctx, r.collection, ownerID, establishmentID)
	if err != nil {
		return nil, 0, 0, mapPartnerLookupError(err)
	}
	return mapReviewDocuments(doc.Reviews), doc.ReviewsCount, doc.Rating, nil
}

// ApplyWrite shares the conditional write path with the public context.
func (r *PartnerReviewRepository) ApplyWrite(ctx context.Context, ownerID, establishmentID string, expectedCount int, expectedRating float64, payload publicdomain.WritePayload) error {
	err := applyReviewWrite(ctx, r.collection, ownerID, establishmentID, expectedCount, expectedRating, payload)
	switch {
	case errors.Is(err, errWriteConflict):
		return application.ErrConflict
	case errors.Is(err, errDocumentNotFound), errors.Is(err, errDocumentForeign):
		return mapPartnerLookupError(err)
	}
	return err
}
