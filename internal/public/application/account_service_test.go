package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzim/petzim-services/api/internal/public/application"
	"github.com/petzim/petzim-services/api/internal/public/domain"
)

type stubAccountRepository struct {
	users     map[string]*domain.User
	createErr error
}

func newStubAccountRepository() *stubAccountRepository {
	return &stubAccountRepository{users: map[string]*domain.User{}}
}

func (s *stubAccountRepository) Create(_ context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.users[user.ID]; ok {
		return application.ErrEmailTaken
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubAccountRepository) FindByKey(_ context.Context, key string) (*domain.User, error) {
	user, ok := s.users[key]
	if !ok {
		return nil, application.ErrNotFound
	}
	return user, nil
}

func TestSignupStoresUserUnderSanitizedKey(t *testing.T) {
	repo := newStubAccountRepository()
	svc := application.NewAccountService(repo)

	user, err := svc.Signup(context.Background(), application.SignupCommand{
		FullName:    "Ana Souza",
		Email:       "ana.souza@exemplo.com",
		Password:    "123456",
		AccountType: "Tutor",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana_souza@exemplo_com", user.ID)
	assert.Contains(t, repo.users, "ana_souza@exemplo_com")
}

func TestSignupValidation(t *testing.T) {
	repo := newStubAccountRepository()
	svc := application.NewAccountService(repo)

	cases := []struct {
		name string
		cmd  application.SignupCommand
	}{
		{"nome vazio", application.SignupCommand{Email: "a@b.co", Password: "123456", AccountType: "Tutor"}},
		{"email inválido", application.SignupCommand{FullName: "Ana", Email: "sem-arroba", Password: "123456", AccountType: "Tutor"}},
		{"senha curta", application.SignupCommand{FullName: "Ana", Email: "a@b.co", Password: "12345", AccountType: "Tutor"}},
		{"tipo desconhecido", application.SignupCommand{FullName: "Ana", Email: "a@b.co", Password: "123456", AccountType: "Admin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, application.ErrInvalidInput)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newStubAccountRepository()
	svc := application.NewAccountService(repo)

	cmd := application.SignupCommand{
		FullName:    "Ana Souza",
		Email:       "ana@exemplo.com",
		Password:    "123456",
		AccountType: "Parceiro",
	}

	_, err := svc.Signup(context.Background(), cmd)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), cmd)
	assert.ErrorIs(t, err, application.ErrEmailTaken)
}

func TestLoginMatchesStoredPassword(t *testing.T) {
	repo := newStubAccountRepository()
	svc := application.NewAccountService(repo)

	_, err := svc.Signup(context.Background(), application.SignupCommand{
		FullName:    "Ana Souza",
		Email:       "ana@exemplo.com",
		Password:    "123456",
		AccountType: "Tutor",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "ana@exemplo.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.FullName)

	_, err = svc.Login(context.Background(), "ana@exemplo.com", "errada")
	assert.ErrorIs(t, err, application.ErrBadPassword)

	// Conta inexistente responde igual a senha errada.
	_, err = svc.Login(context.Background(), "ninguem@exemplo.com", "123456")
	assert.ErrorIs(t, err, application.ErrBadPassword)
}
