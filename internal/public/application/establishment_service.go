package application

import (
	"context"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

// establishmentQueryService is the concrete implementation of
// EstablishmentQueryService.
type establishmentQueryService struct {
	repo    EstablishmentRepository
	catalog *Catalog
}

// NewEstablishmentQueryService creates a new establishment query service.
// O catálogo é opcional; sem ele toda listagem vai direto ao repositório.
func NewEstablishmentQueryService(repo EstablishmentRepository, catalog *Catalog) EstablishmentQueryService {
	return &establishmentQueryService{repo: repo, catalog: catalog}
}

func (s *establishmentQueryService) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if s.catalog != nil {
		if listings, ok := s.catalog.Snapshot(); ok {
			return domain.ApplyFilters(listings, filter), nil
		}
	}

	establishments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]domain.Listing, 0, len(establishments))
	for _, est := range establishments {
		listings = append(listings, domain.NewListing(est))
	}
	return domain.ApplyFilters(listings, filter), nil
}

func (s *establishmentQueryService) Detail(ctx context.Context, ownerID, establishmentID string) (*domain.Establishment, error) {
	return s.repo.FindByKey(ctx, ownerID, establishmentID)
}
