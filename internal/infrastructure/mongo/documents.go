package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// EstablishmentDocument é o esquema do estabelecimento no MongoDB. Os nomes
// de campo em português vêm do esquema legado e não podem mudar sem migração.
type EstablishmentDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	OwnerID      string             `bson:"ownerId"`
	Name         string             `bson:"nome"`
	Category     string             `bson:"tipo,omitempty"`
	Address      string             `bson:"endereco,omitempty"`
	Phone        string             `bson:"telefone,omitempty"`
	Hours        string             `bson:"horario,omitempty"`
	Description  string             `bson:"descricao,omitempty"`
	PriceTier    string             `bson:"preco,omitempty"`
	Services     serviceList        `bson:"servico,omitempty"`
	Reviews      []ReviewDocument   `bson:"reviews,omitempty"`
	ReviewsCount int                `bson:"reviewsCount"`
	Rating       float64            `bson:"rating"`
	CreatedAt    *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty"`
}

// ReviewDocument é uma avaliação embutida no documento do estabelecimento.
// Documentos gravados pelo cliente legado não têm o campo id.
type ReviewDocument struct {
	ID      string `bson:"id,omitempty"`
	Name    string `bson:"name,omitempty"`
	Rating  int    `bson:"rating"`
	Comment string `bson:"comment,omitempty"`
	Date    string `bson:"date,omitempty"`
}

// UserDocument é o esquema da conta; a chave primária é o e-mail sanitizado.
type UserDocument struct {
	ID          string    `bson:"_id"`
	FullName    string    `bson:"fullName"`
	Email       string    `bson:"email"`
	Password    string    `bson:"password"`
	AccountType string    `bson:"accountType"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// serviceList decodifica o campo legado `servico`, que pode conter uma
// string simples ou um arranjo de strings. Valor malformado degrada para
// vazio em vez de falhar a decodificação do documento inteiro.
type serviceList []string

func (s *serviceList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		value, _, ok := bsoncore.ReadString(data)
		if !ok {
			*s = nil
			return nil
		}
		*s = serviceList{value}
		return nil
	case bsontype.Array:
		raw := bson.RawValue{Type: t, Value: data}
		var values []string
		if err := raw.Unmarshal(&values); err != nil {
			*s = nil
			return nil
		}
		*s = serviceList(values)
		return nil
	default:
		*s = nil
		return nil
	}
}
