package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petzim/petzim-services/api/internal/public/application"
	"github.com/petzim/petzim-services/api/internal/public/domain"
)

// EstablishmentRepository implements application.EstablishmentRepository
// using MongoDB.
type EstablishmentRepository struct {
	collection *mongo.Collection
}

// NewEstablishmentRepository creates a new Mongo-backed establishment
// repository.
func NewEstablishmentRepository(db *mongo.Database, collectionName string) *EstablishmentRepository {
	return &EstablishmentRepository{collection: db.Collection(collectionName)}
}

// FindAll returns every establishment, most recent first.
func (r *EstablishmentRepository) FindAll(ctx context.Context) ([]domain.Establishment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	establishments := make([]domain.Establishment, 0)
	for cursor.Next(ctx) {
		var doc EstablishmentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		establishments = append(establishments, mapEstablishmentDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return establishments, nil
}

// FindByKey returns a single establishment by its composite key.
func (r *EstablishmentRepository) FindByKey(ctx context.Context, ownerID, establishmentID string) (*domain.Establishment, error) {
	doc, err := findEstablishmentDocument(ctx, r.collection, ownerID, establishmentID)
	if err != nil {
		if errors.Is(err, errDocumentNotFound) || errors.Is(err, errDocumentForeign) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	establishment := mapEstablishmentDocument(*doc)
	return &establishment, nil
}

// findEstablishmentDocument resolve a chave composta (ownerId, _id) e
// distingue documento inexistente de documento de outro dono.
func findEstablishmentDocument(ctx context.Context, collection *mongo.Collection, ownerID, establishmentID string) (*EstablishmentDocument, error) {
	objectID, err := primitive.ObjectIDFromHex(establishmentID)
	if err != nil {
		return nil, errDocumentNotFound
	}

	var doc EstablishmentDocument
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errDocumentNotFound
		}
		return nil, err
	}
	if doc.OwnerID != ownerID {
		return nil, errDocumentForeign
	}
	return &doc, nil
}

func mapEstablishmentDocument(doc EstablishmentDocument) domain.Establishment {
	createdAt := time.Time{}
	if doc.CreatedAt != nil {
		createdAt = *doc.CreatedAt
	}
	updatedAt := time.Time{}
	if doc.UpdatedAt != nil {
		updatedAt = *doc.UpdatedAt
	}

	return domain.Establishment{
		ID:           doc.ID.Hex(),
		OwnerID:      doc.OwnerID,
		Name:         doc.Name,
		Category:     doc.Category,
		Address:      doc.Address,
		Phone:        doc.Phone,
		Hours:        doc.Hours,
		Description:  doc.Description,
		PriceTier:    doc.PriceTier,
		Services:     append([]string{}, doc.Services...),
		Reviews:      mapReviewDocuments(doc.Reviews),
		ReviewsCount: doc.ReviewsCount,
		Rating:       doc.Rating,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func mapReviewDocuments(docs []ReviewDocument) []domain.Review {
	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, domain.Review{
			ID:      doc.ID,
			Name:    doc.Name,
			Rating:  doc.Rating,
			Comment: doc.Comment,
			Date:    doc.Date,
		})
	}
	return reviews
}

func toReviewDocuments(reviews []domain.Review) []ReviewDocument {
	docs := make([]ReviewDocument, 0, len(reviews))
	for _, review := range reviews {
		docs = append(docs, ReviewDocument{
			ID:      review.ID,
			Name:    review.Name,
			Rating:  review.Rating,
			Comment: review.Comment,
			Date:    review.Date,
		})
	}
	return docs
}
