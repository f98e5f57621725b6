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

// Sentinelas internas da camada mongo; cada repositório as converte para o
// erro do seu contexto.
var (
	errDocumentNotFound = errors.New("documento não encontrado")
	errDocumentForeign  = errors.New("documento pertence a outro dono")
	errWriteConflict    = errors.New("resumo esperado divergiu antes da gravação")
)

// ReviewRepository implements application.ReviewRepository using MongoDB.
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

// FindByKey returns the establishment holding the review sequence.
func (r *ReviewRepository) FindByKey(ctx context.Context, ownerID, establishmentID string) (*domain.Establishment, error) {
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

// ApplyWrite grava a sequência e os caches somente se o resumo armazenado
// ainda for o que o chamador leu. Divergência vira ErrConflict; o chamador
// decide se relê e tenta de novo.
func (r *ReviewRepository) ApplyWrite(ctx context.Context, ownerID, establishmentID string, expectedCount int, expectedRating float64, payload domain.WritePayload) error {
	err := applyReviewWrite(ctx, r.collection, ownerID, establishmentID, expectedCount, expectedRating, payload)
	switch {
	case errors.Is(err, errDocumentNotFound), errors.Is(err, errDocumentForeign):
		return application.ErrNotFound
	case errors.Is(err, errWriteConflict):
		return application.ErrConflict
	}
	return err
}

// applyReviewWrite é o caminho único de escrita condicional da sequência de
// avaliações, compartilhado pelos contextos público e de parceiro.
func applyReviewWrite(ctx context.Context, collection *mongo.Collection, ownerID, establishmentID string, expectedCount int, expectedRating float64, payload domain.WritePayload) error {
	objectID, err := primitive.ObjectIDFromHex(establishmentID)
	if err != nil {
		return errDocumentNotFound
	}

	// Documentos legados podem não ter os campos de cache; contagem zero
	// também casa com campo ausente.
	countCond := bson.M{"reviewsCount": expectedCount}
	if expectedCount == 0 {
		countCond = bson.M{"$or": []bson.M{
			{"reviewsCount": 0},
			{"reviewsCount": bson.M{"$exists": false}},
		}}
	}
	ratingCond := bson.M{"rating": expectedRating}
	if expectedRating == 0 {
		ratingCond = bson.M{"$or": []bson.M{
			{"rating": 0},
			{"rating": bson.M{"$exists": false}},
		}}
	}

	filter := bson.M{
		"_id":     objectID,
		"ownerId": ownerID,
		"$and":    []bson.M{countCond, ratingCond},
	}
	update := bson.M{"$set": bson.M{
		"reviews":      toReviewDocuments(payload.Reviews),
		"reviewsCount": payload.ReviewsCount,
		"rating":       payload.Rating,
		"updatedAt":    time.Now().UTC(),
	}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// Nada casou: ou o documento sumiu, ou o resumo mudou no intervalo.
	if _, err := findEstablishmentDocument(ctx, collection, ownerID, establishmentID); err != nil {
		return err
	}
	return errWriteConflict
}
