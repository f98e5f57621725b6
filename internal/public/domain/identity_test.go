package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

func TestSafeKeyReplacesForbiddenCharacters(t *testing.T) {
	assert.Equal(t, "ana_souza@exemplo_com", domain.SafeKey("ana.souza@exemplo.com"))
	assert.Equal(t, "a_b_c_d_e_", domain.SafeKey("a.b#c$d[e]"))
}

func TestSafeKeyIsIdempotent(t *testing.T) {
	once := domain.SafeKey("ana.souza@exemplo.com")
	assert.Equal(t, once, domain.SafeKey(once))
}

func TestResolveOwnerKeyPrefersID(t *testing.T) {
	user := domain.User{ID: "chave_fixa", Email: "ana@exemplo.com", FullName: "Ana Souza"}
	assert.Equal(t, "chave_fixa", domain.ResolveOwnerKey(user))
}

func TestResolveOwnerKeyFallsBackToEmail(t *testing.T) {
	user := domain.User{Email: "ana.souza@exemplo.com"}
	assert.Equal(t, "ana_souza@exemplo_com", domain.ResolveOwnerKey(user))
}

func TestResolveOwnerKeyFallsBackToNameSlug(t *testing.T) {
	user := domain.User{FullName: "Ana  Souza Lima"}
	assert.Equal(t, "ana_souza_lima", domain.ResolveOwnerKey(user))
}

func TestResolveOwnerKeyIsDeterministic(t *testing.T) {
	user := domain.User{Email: "carlos@exemplo.com"}
	assert.Equal(t, domain.ResolveOwnerKey(user), domain.ResolveOwnerKey(user))
}
