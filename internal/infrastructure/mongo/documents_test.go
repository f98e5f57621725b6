package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func decodeEstablishment(t *testing.T, raw bson.M) EstablishmentDocument {
	t.Helper()
	data, err := bson.Marshal(raw)
	require.NoError(t, err)

	var doc EstablishmentDocument
	require.NoError(t, bson.Unmarshal(data, &doc))
	return doc
}

func TestServiceListDecodesScalar(t *testing.T) {
	doc := decodeEstablishment(t, bson.M{"nome": "Mundo Pet", "servico": "Banho"})

	assert.Equal(t, serviceList{"Banho"}, doc.Services)
}

func TestServiceListDecodesArray(t *testing.T) {
	doc := decodeEstablishment(t, bson.M{"nome": "Mundo Pet", "servico": bson.A{"Banho", "Tosa"}})

	assert.Equal(t, serviceList{"Banho", "Tosa"}, doc.Services)
}

func TestServiceListDegradesOnUnexpectedType(t *testing.T) {
	// Tipo inesperado não pode derrubar a decodificação do documento inteiro.
	doc := decodeEstablishment(t, bson.M{"nome": "Mundo Pet", "servico": int32(7)})

	assert.Nil(t, doc.Services)
	assert.Equal(t, "Mundo Pet", doc.Name)
}
