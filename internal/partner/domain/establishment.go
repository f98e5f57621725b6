package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Faixas de preço aceitas no cadastro.
const (
	PriceTierLow    = "Baixo"
	PriceTierMedium = "Médio"
	PriceTierHigh   = "Alto"
)

// ErrValidation marca falhas de validação de cadastro; a camada HTTP as
// devolve como requisição inválida com a mensagem original.
var ErrValidation = errors.New("dados do estabelecimento inválidos")

// Category is the canonical establishment category.
type Category string

// NewCategory valida e canonicaliza a categoria. O cliente legado gravava
// "Clínica" puro em alguns fluxos; a forma canônica é "Clínica Veterinária".
func NewCategory(value string) (Category, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: categoria é obrigatória", ErrValidation)
	}
	if strings.EqualFold(trimmed, "Clínica") {
		return Category("Clínica Veterinária"), nil
	}
	return Category(trimmed), nil
}

func (c Category) String() string {
	return string(c)
}

// Establishment aggregates data required for partner operations.
// ReviewsCount e Rating são caches derivados das avaliações; o contexto de
// parceiro nunca os escreve diretamente.
type Establishment struct {
	ID           string
	OwnerID      string
	Name         string
	Category     Category
	Address      string
	Phone        string
	Hours        string
	Description  string
	PriceTier    string
	Services     []string
	ReviewsCount int
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEstablishment monta um estabelecimento validado para cadastro.
func NewEstablishment(ownerID, name, category, address, phone, hours, description, priceTier string, services []string) (*Establishment, error) {
	ownerID = strings.TrimSpace(ownerID)
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: identificador do parceiro é obrigatório", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", ErrValidation)
	}
	if address == "" {
		return nil, fmt.Errorf("%w: endereço é obrigatório", ErrValidation)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: telefone é obrigatório", ErrValidation)
	}

	cat, err := NewCategory(category)
	if err != nil {
		return nil, err
	}

	tier, err := normalizePriceTier(priceTier)
	if err != nil {
		return nil, err
	}

	return &Establishment{
		OwnerID:     ownerID,
		Name:        name,
		Category:    cat,
		Address:     address,
		Phone:       phone,
		Hours:       strings.TrimSpace(hours),
		Description: strings.TrimSpace(description),
		PriceTier:   tier,
		Services:    append([]string{}, services...),
	}, nil
}

func normalizePriceTier(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case "", PriceTierLow, PriceTierMedium, PriceTierHigh:
		return trimmed, nil
	}
	return "", fmt.Errorf("%w: faixa de preço desconhecida: %s", ErrValidation, trimmed)
}
