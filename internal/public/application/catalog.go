package application

import (
	"sync"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

// Catalog mantém em memória a projeção de listagens mais recente, alimentada
// pelo observador de mudanças da camada de infraestrutura. Leituras da
// vitrine servem do snapshot; enquanto o primeiro carregamento não chega, os
// leitores caem no repositório.
type Catalog struct {
	mu       sync.RWMutex
	listings []domain.Listing
	ready    bool
}

// NewCatalog creates an empty, not-yet-ready catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Replace substitui o snapshot inteiro pela projeção dos documentos
// recebidos. Cada notificação de mudança carrega o estado completo, então a
// troca é atômica e nunca parcial.
func (c *Catalog) Replace(establishments []domain.Establishment) {
	listings := make([]domain.Listing, 0, len(establishments))
	for _, est := range establishments {
		listings = append(listings, domain.NewListing(est))
	}

	c.mu.Lock()
	c.listings = listings
	c.ready = true
	c.mu.Unlock()
}

// Snapshot devolve uma cópia do snapshot atual e se o catálogo já recebeu o
// primeiro carregamento.
func (c *Catalog) Snapshot() ([]domain.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ready {
		return nil, false
	}
	return append([]domain.Listing{}, c.listings...), true
}
