package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petzim/petzim-services/api/internal/public/application"
	"github.com/petzim/petzim-services/api/internal/public/domain"
)

// AccountRepository implements application.AccountRepository using MongoDB.
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a new Mongo-backed account repository.
func NewAccountRepository(db *mongo.Database, collectionName string) *AccountRepository {
	return &AccountRepository{collection: db.Collection(collectionName)}
}

// Create insere a conta; o _id é o e-mail sanitizado, então a colisão de
// chave primária equivale a e-mail já cadastrado.
func (r *AccountRepository) Create(ctx context.Context, user *domain.User) error {
	doc := UserDocument{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		Password:    user.Password,
		AccountType: user.AccountType,
		CreatedAt:   user.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return application.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByKey returns the account stored under the sanitized e-mail key.
func (r *AccountRepository) FindByKey(ctx context.Context, key string) (*domain.User, error) {
	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	return &domain.User{
		ID:          doc.ID,
		FullName:    doc.FullName,
		Email:       doc.Email,
		Password:    doc.Password,
		AccountType: doc.AccountType,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
