package domain

import (
	"fmt"
	"strings"
)

// Listing is the display-ready projection of an establishment used by the
// browse surface.
type Listing struct {
	ID           string
	OwnerID      string
	Name         string
	Category     string
	Rating       float64
	RatingLabel  string
	ReviewsCount int
	PriceTag     string
	Address      string
	Phone        string
	Hours        string
	Description  string
	Services     []string
}

// NewListing projeta um estabelecimento bruto na forma de exibição. Todo
// campo opcional ganha um padrão explícito; entrada malformada degrada para
// os padrões em vez de falhar.
func NewListing(est Establishment) Listing {
	services := append([]string{}, est.Services...)

	hours := strings.TrimSpace(est.Hours)
	if hours == "" {
		hours = "-"
	}

	return Listing{
		ID:           est.ID,
		OwnerID:      est.OwnerID,
		Name:         est.Name,
		Category:     est.Category,
		Rating:       est.Rating,
		RatingLabel:  FormatRating(est.Rating),
		ReviewsCount: est.ReviewsCount,
		PriceTag:     PriceTag(est.PriceTier),
		Address:      est.Address,
		Phone:        est.Phone,
		Hours:        hours,
		Description:  est.Description,
		Services:     services,
	}
}

// FormatRating renders a rating with one decimal and the pt-BR comma
// separator, e.g. 4 -> "4,0".
func FormatRating(rating float64) string {
	return strings.Replace(fmt.Sprintf("%.1f", rating), ".", ",", 1)
}

// PriceTag converte a faixa de preço armazenada em cifrões. Ausente vira a
// faixa média "$$"; valor desconhecido cai em "$", espelhando o cliente
// legado.
func PriceTag(tier string) string {
	switch strings.TrimSpace(tier) {
	case "":
		return "$$"
	case PriceTierHigh:
		return "$$$"
	case PriceTierMedium:
		return "$$"
	default:
		return "$"
	}
}
