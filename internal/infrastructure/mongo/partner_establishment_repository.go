package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petzim/petzim-services/api/internal/partner/application"
	partnerdomain "github.com/petzim/petzim-services/api/internal/partner/domain"
)

// PartnerEstablishmentRepository implements the partner-context
// application.EstablishmentRepository using MongoDB.
type PartnerEstablishmentRepository struct {
	collection *mongo.Collection
}

// NewPartnerEstablishmentRepository creates a new Mongo-backed partner
// establishment repository.
func NewPartnerEstablishmentRepository(db *mongo.Database, collectionName string) *PartnerEstablishmentRepository {
	return &PartnerEstablishmentRepository{collection: db.Collection(collectionName)}
}

// FindByOwner returns every establishment of the partner, newest first.
func (r *PartnerEstablishmentRepository) FindByOwner(ctx context.Context, ownerID string) ([]partnerdomain.Establishment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	establishments := make([]partnerdomain.Establishment, 0)
	for cursor.Next(ctx) {
		var doc EstablishmentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		establishments = append(establishments, mapPartnerEstablishmentDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return establishments, nil
}

// FindByKey returns one establishment, distinguishing absence from foreign
// ownership.
func (r *PartnerEstablishmentRepository) FindByKey(ctx context.Context, ownerID, establishmentID string) (*partnerdomain.Establishment, error) {
	doc, err := findEstablishmentDocument(ctx, r.collection, ownerID, establishmentID)
	if err != nil {
		return nil, mapPartnerLookupError(err)
	}
	establishment := mapPartnerEstablishmentDocument(*doc)
	return &establishment, nil
}

// Create insere o estabelecimento com caches zerados; avaliação só entra
// pelo caminho condicional de escrita.
func (r *PartnerEstablishmentRepository) Create(ctx context.Context, establishment *partnerdomain.Establishment) error {
	now := time.Now().UTC()
	doc := EstablishmentDocument{
		ID:           primitive.NewObjectID(),
		OwnerID:      establishment.OwnerID,
		Name:         establishment.Name,
		Category:     establishment.Category.String(),
		Address:      establishment.Address,
		Phone:        establishment.Phone,
		Hours:        establishment.Hours,
		Description:  establishment.Description,
		PriceTier:    establishment.PriceTier,
		Services:     serviceList(append([]string{}, establishment.Services...)),
		Reviews:      []ReviewDocument{},
		ReviewsCount: 0,
		Rating:       0,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	establishment.ID = doc.ID.Hex()
	establishment.CreatedAt = now
	establishment.UpdatedAt = now
	return nil
}

// UpdateProfile grava apenas os campos descritivos. A sequência de
// avaliações e seus caches nunca passam por aqui.
func (r *PartnerEstablishmentRepository) UpdateProfile(ctx context.Context, establishment *partnerdomain.Establishment) error {
	objectID, err := primitive.ObjectIDFromHex(establishment.ID)
	if err != nil {
		return application.ErrNotFound
	}

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"nome":      establishment.Name,
		"tipo":      establishment.Category.String(),
		"endereco":  establishment.Address,
		"telefone":  establishment.Phone,
		"horario":   establishment.Hours,
		"descricao": establishment.Description,
		"preco":     establishment.PriceTier,
		"servico":   append([]string{}, establishment.Services...),
		"updatedAt": now,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID, "ownerId": establishment.OwnerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if _, err := findEstablishmentDocument(ctx, r.collection, establishment.OwnerID, establishment.ID); err != nil {
			return mapPartnerLookupError(err)
		}
		return application.ErrNotFound
	}
	establishment.UpdatedAt = now
	return nil
}

// Delete removes the establishment together with its embedded reviews.
func (r *PartnerEstablishmentRepository) Delete(ctx context.Context, ownerID, establishmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(establishmentID)
	if err != nil {
		return application.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		if _, err := findEstablishmentDocument(ctx, r.collection, ownerID, establishmentID); err != nil {
			return mapPartnerLookupError(err)
		}
		return application.ErrNotFound
	}
	return nil
}

func mapPartnerEstablishmentDocument(doc EstablishmentDocument) partnerdomain.Establishment {
	createdAt := time.Time{}
	if doc.CreatedAt != nil {
		createdAt = *doc.CreatedAt
	}
	updatedAt := time.Time{}
	if doc.UpdatedAt != nil {
		updatedAt = *doc.UpdatedAt
	}

	return partnerdomain.Establishment{
		ID:           doc.ID.Hex(),
		OwnerID:      doc.OwnerID,
		Name:         doc.Name,
		Category:     partnerdomain.Category(doc.Category),
		Address:      doc.Address,
		Phone:        doc.Phone,
		Hours:        doc.Hours,
		Description:  doc.Description,
		PriceTier:    doc.PriceTier,
		Services:     append([]string{}, doc.Services...),
		ReviewsCount: doc.ReviewsCount,
		Rating:       doc.Rating,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func mapPartnerLookupError(err error) error {
	switch {
	case errors.Is(err, errDocumentNotFound):
		return application.ErrNotFound
	case errors.Is(err, errDocumentForeign):
		return application.ErrForbidden
	}
	return err
}
