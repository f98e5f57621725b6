package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

func TestParseRatingLabel(t *testing.T) {
	cases := []struct {
		label  string
		ok     bool
		min    float64
		max    float64
		maxInf bool
	}{
		{label: "4.0+", ok: true, min: 4.0, max: 4.9999},
		{label: "3.5+", ok: true, min: 3.5, max: 4.4999},
		{label: "4,0+", ok: true, min: 4.0, max: 4.9999},
		{label: "5.0", ok: true, min: 5.0, maxInf: true},
		{label: "5.0+", ok: true, min: 5.0, maxInf: true},
		{label: "Todas", ok: false},
		{label: "Todos", ok: false},
		{label: "", ok: false},
		{label: "abc", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			rng, ok := domain.ParseRatingLabel(tc.label)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tc.min, rng.Min, 1e-9)
			if tc.maxInf {
				assert.True(t, math.IsInf(rng.Max, 1))
			} else {
				assert.InDelta(t, tc.max, rng.Max, 1e-9)
			}
		})
	}
}

func TestRatingRangeBoundaries(t *testing.T) {
	rng, ok := domain.ParseRatingLabel("4.0+")
	require.True(t, ok)

	assert.True(t, rng.Contains(4.0))
	assert.True(t, rng.Contains(4.5))
	assert.True(t, rng.Contains(4.9999))
	assert.False(t, rng.Contains(3.9))
	assert.False(t, rng.Contains(5.0))

	topo, ok := domain.ParseRatingLabel("5.0")
	require.True(t, ok)
	assert.True(t, topo.Contains(5.0))
	assert.False(t, topo.Contains(4.9999))
}

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: "a", Name: "Mundo Pet", Address: "Rua das Flores, Centro", Category: "Pet Shop", Rating: 4.5},
		{ID: "b", Name: "Clínica Amigo Fiel", Address: "Av. Beira Mar", Category: "Clínica Veterinária", Rating: 3.9},
		{ID: "c", Name: "Patas & Cia", Address: "Rua do Centro", Category: "Banho e Tosa", Rating: 5.0},
	}
}

func TestApplyFiltersNoCriteriaReturnsAllInOrder(t *testing.T) {
	listings := sampleListings()

	result := domain.ApplyFilters(listings, domain.ListingFilter{})

	require.Len(t, result, 3)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "b", result[1].ID)
	assert.Equal(t, "c", result[2].ID)
}

func TestApplyFiltersSearchMatchesNameOrAddress(t *testing.T) {
	listings := sampleListings()

	byName := domain.ApplyFilters(listings, domain.ListingFilter{Search: "mundo"})
	require.Len(t, byName, 1)
	assert.Equal(t, "a", byName[0].ID)

	byAddress := domain.ApplyFilters(listings, domain.ListingFilter{Search: "centro"})
	require.Len(t, byAddress, 2)
	assert.Equal(t, "a", byAddress[0].ID)
	assert.Equal(t, "c", byAddress[1].ID)
}

func TestApplyFiltersCategoryNormalized(t *testing.T) {
	listings := sampleListings()

	result := domain.ApplyFilters(listings, domain.ListingFilter{Category: " pet  shop "})
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)

	all := domain.ApplyFilters(listings, domain.ListingFilter{Category: "Todos"})
	assert.Len(t, all, 3)
}

func TestApplyFiltersEmptyCategoryNeverMatchesActiveFilter(t *testing.T) {
	listings := []domain.Listing{{ID: "x", Name: "Sem Categoria"}}

	result := domain.ApplyFilters(listings, domain.ListingFilter{Category: "Pet Shop"})
	assert.Empty(t, result)
}

func TestApplyFiltersRatingLabel(t *testing.T) {
	listings := sampleListings()

	result := domain.ApplyFilters(listings, domain.ListingFilter{RatingLabel: "4.0+"})
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)

	top := domain.ApplyFilters(listings, domain.ListingFilter{RatingLabel: "5.0"})
	require.Len(t, top, 1)
	assert.Equal(t, "c", top[0].ID)
}

func TestApplyFiltersCombinesWithAnd(t *testing.T) {
	listings := sampleListings()

	result := domain.ApplyFilters(listings, domain.ListingFilter{
		Search:      "centro",
		RatingLabel: "4.0+",
	})
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)
}
