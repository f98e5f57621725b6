package application

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	repo AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Signup(ctx context.Context, cmd SignupCommand) (*domain.User, error) {
	fullName := strings.TrimSpace(cmd.FullName)
	email := strings.TrimSpace(cmd.Email)
	accountType := strings.TrimSpace(cmd.AccountType)

	if fullName == "" || email == "" || cmd.Password == "" {
		return nil, ErrInvalidInput
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidInput
	}
	if len(cmd.Password) < 6 {
		return nil, ErrInvalidInput
	}
	if accountType != domain.AccountTypeTutor && accountType != domain.AccountTypePartner {
		return nil, ErrInvalidInput
	}

	user := &domain.User{
		ID:          domain.SafeKey(email),
		FullName:    fullName,
		Email:       email,
		Password:    cmd.Password,
		AccountType: accountType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	key := domain.SafeKey(email)
	if key == "" || password == "" {
		return nil, ErrBadPassword
	}

	user, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		// Conta inexistente e senha errada respondem igual.
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadPassword
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrBadPassword
	}
	return user, nil
}
