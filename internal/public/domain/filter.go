package domain

import (
	"math"
	"strconv"
	"strings"
)

// ListingFilter reúne os critérios de busca da tela inicial. Cada campo é
// independente e opcional; os ativos são combinados com E lógico.
type ListingFilter struct {
	Search      string
	Category    string
	RatingLabel string
}

// RatingRange is the closed numeric interval derived from a rating label.
type RatingRange struct {
	Min float64
	Max float64
}

// Contains reports whether a rating falls inside the range.
func (r RatingRange) Contains(rating float64) bool {
	return rating >= r.Min && rating <= r.Max
}

// ParseRatingLabel converte rótulos como "4.0+" ou "5.0" no intervalo
// correspondente. "X.Y+" abaixo de 5 cobre [X.Y, X.Y+0.9999]; a partir de
// 5.0 o teto é infinito. "Todas"/"Todos" (ou vazio) significa sem filtro e
// retorna ok=false. Vírgula decimal é aceita.
func ParseRatingLabel(label string) (RatingRange, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || strings.EqualFold(trimmed, "Todas") || strings.EqualFold(trimmed, "Todos") {
		return RatingRange{}, false
	}

	raw := strings.TrimSuffix(trimmed, "+")
	value, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return RatingRange{}, false
	}

	if value >= 5 {
		return RatingRange{Min: value, Max: math.Inf(1)}, true
	}
	if strings.HasSuffix(trimmed, "+") {
		return RatingRange{Min: value, Max: value + 0.9999}, true
	}
	return RatingRange{Min: value, Max: value}, true
}

// ApplyFilters estreita a coleção preservando a ordem de entrada — é um
// filtro, não uma ordenação. Com todos os critérios vazios a coleção volta
// intacta.
func ApplyFilters(listings []Listing, filter ListingFilter) []Listing {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	category := normalizeCategory(filter.Category)
	ratingRange, ratingActive := ParseRatingLabel(filter.RatingLabel)

	matched := make([]Listing, 0, len(listings))
	for _, listing := range listings {
		if search != "" && !matchesSearch(listing, search) {
			continue
		}
		if category != "" && normalizeCategory(listing.Category) != category {
			continue
		}
		if ratingActive && !ratingRange.Contains(listing.Rating) {
			continue
		}
		matched = append(matched, listing)
	}
	return matched
}

func matchesSearch(listing Listing, search string) bool {
	return strings.Contains(strings.ToLower(listing.Name), search) ||
		strings.Contains(strings.ToLower(listing.Address), search)
}

// normalizeCategory remove espaços e caixa para comparação exata. "Todos" e
// "all" equivalem a ausência de filtro; um estabelecimento sem categoria
// nunca casa com um filtro ativo.
func normalizeCategory(category string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(category), ""))
	if normalized == "todos" || normalized == "todas" || normalized == "all" {
		return ""
	}
	return normalized
}
