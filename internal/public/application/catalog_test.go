package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzim/petzim-services/api/internal/public/application"
	"github.com/petzim/petzim-services/api/internal/public/domain"
)

type stubEstablishmentRepository struct {
	establishments []domain.Establishment
	findAllCalls   int
}

func (s *stubEstablishmentRepository) FindAll(_ context.Context) ([]domain.Establishment, error) {
	s.findAllCalls++
	return s.establishments, nil
}

func (s *stubEstablishmentRepository) FindByKey(_ context.Context, ownerID, establishmentID string) (*domain.Establishment, error) {
	for _, est := range s.establishments {
		if est.OwnerID == ownerID && est.ID == establishmentID {
			found := est
			return &found, nil
		}
	}
	return nil, application.ErrNotFound
}

func TestCatalogNotReadyBeforeFirstLoad(t *testing.T) {
	catalog := application.NewCatalog()

	_, ok := catalog.Snapshot()
	assert.False(t, ok)
}

func TestCatalogReplaceProjectsListings(t *testing.T) {
	catalog := application.NewCatalog()
	catalog.Replace([]domain.Establishment{
		{ID: "a", Name: "Mundo Pet", PriceTier: "Alto", Rating: 4.5},
	})

	listings, ok := catalog.Snapshot()
	require.True(t, ok)
	require.Len(t, listings, 1)
	assert.Equal(t, "$$$", listings[0].PriceTag)
	assert.Equal(t, "4,5", listings[0].RatingLabel)
}

func TestCatalogSnapshotIsACopy(t *testing.T) {
	catalog := application.NewCatalog()
	catalog.Replace([]domain.Establishment{{ID: "a", Name: "Mundo Pet"}})

	listings, ok := catalog.Snapshot()
	require.True(t, ok)
	listings[0].Name = "alterado"

	again, _ := catalog.Snapshot()
	assert.Equal(t, "Mundo Pet", again[0].Name)
}

func TestListServesFromCatalogWhenReady(t *testing.T) {
	repo := &stubEstablishmentRepository{}
	catalog := application.NewCatalog()
	catalog.Replace([]domain.Establishment{
		{ID: "a", Name: "Mundo Pet", Category: "Pet Shop", Rating: 4.5},
		{ID: "b", Name: "Clínica Amigo Fiel", Category: "Clínica Veterinária", Rating: 3.9},
	})
	svc := application.NewEstablishmentQueryService(repo, catalog)

	listings, err := svc.List(context.Background(), domain.ListingFilter{RatingLabel: "4.0+"})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "a", listings[0].ID)
	assert.Equal(t, 0, repo.findAllCalls)
}

func TestListFallsBackToRepositoryBeforeFirstLoad(t *testing.T) {
	repo := &stubEstablishmentRepository{
		establishments: []domain.Establishment{
			{ID: "a", Name: "Mundo Pet", Rating: 4.5},
		},
	}
	svc := application.NewEstablishmentQueryService(repo, application.NewCatalog())

	listings, err := svc.List(context.Background(), domain.ListingFilter{})

	require.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, 1, repo.findAllCalls)
}
