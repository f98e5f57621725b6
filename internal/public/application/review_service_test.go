package application_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzim/petzim-services/api/internal/public/application"
	"github.com/petzim/petzim-services/api/internal/public/domain"
)

type stubReviewRepository struct {
	establishment  *domain.Establishment
	findErr        error
	applyErr       error
	applied        *domain.WritePayload
	expectedCount  int
	expectedRating float64
	findCalls      int
}

func (s *stubReviewRepository) FindByKey(_ context.Context, _, _ string) (*domain.Establishment, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.establishment, nil
}

func (s *stubReviewRepository) ApplyWrite(_ context.Context, _, _ string, expectedCount int, expectedRating float64, payload domain.WritePayload) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	s.expectedCount = expectedCount
	s.expectedRating = expectedRating
	s.applied = &payload
	return nil
}

func establishmentFixture() *domain.Establishment {
	return &domain.Establishment{
		ID:      "65a000000000000000000001",
		OwnerID: "dono_exemplo_com",
		Name:    "Mundo Pet",
		Reviews: []domain.Review{
			{ID: "r1", Name: "Ana Souza", Rating: 5, Date: "01/06/2026"},
			{ID: "r2", Name: "Carlos Lima", Rating: 3, Date: "20/05/2026"},
		},
		ReviewsCount: 2,
		Rating:       4.0,
	}
}

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

func TestSubmitReviewAppliesConditionalWrite(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	review, outcome, err := svc.Submit(context.Background(), application.SubmitReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		AuthorName:      "  Beatriz Costa  ",
		Rating:          4,
		Comment:         "Ótimo atendimento",
	})

	require.NoError(t, err)
	assert.Equal(t, application.SubmitApplied, outcome)
	require.NotNil(t, review)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "Beatriz Costa", review.Name)
	assert.Regexp(t, datePattern, review.Date)

	require.NotNil(t, repo.applied)
	assert.Equal(t, 3, repo.applied.ReviewsCount)
	assert.InDelta(t, 4.0, repo.applied.Rating, 1e-9)
	assert.Equal(t, review.ID, repo.applied.Reviews[0].ID)
	// A escrita é condicionada ao resumo lido antes do cálculo.
	assert.Equal(t, 2, repo.expectedCount)
	assert.InDelta(t, 4.0, repo.expectedRating, 1e-9)
}

func TestSubmitReviewSkipsOnMissingReference(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	review, outcome, err := svc.Submit(context.Background(), application.SubmitReviewCommand{
		OwnerID:         "  ",
		EstablishmentID: "65a000000000000000000001",
		Rating:          4,
	})

	assert.NoError(t, err)
	assert.Equal(t, application.SubmitSkipped, outcome)
	assert.Nil(t, review)
	assert.Equal(t, 0, repo.findCalls)
}

func TestSubmitReviewRejectsInvalidRating(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	_, _, err := svc.Submit(context.Background(), application.SubmitReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		Rating:          6,
	})

	assert.ErrorIs(t, err, application.ErrInvalidRating)
}

func TestSubmitReviewPropagatesConflict(t *testing.T) {
	repo := &stubReviewRepository{
		establishment: establishmentFixture(),
		applyErr:      application.ErrConflict,
	}
	svc := application.NewReviewCommandService(repo, time.UTC)

	_, _, err := svc.Submit(context.Background(), application.SubmitReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		Rating:          5,
	})

	assert.ErrorIs(t, err, application.ErrConflict)
}

func TestDeleteReviewOwnReviewByID(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		ReviewID:        "r2",
		FallbackIndex:   -1,
		RequesterName:   "Carlos Lima",
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteApplied, outcome)
	require.NotNil(t, repo.applied)
	assert.Equal(t, 1, repo.applied.ReviewsCount)
	assert.InDelta(t, 5.0, repo.applied.Rating, 1e-9)
}

func TestDeleteReviewForbiddenForOtherAuthor(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		ReviewID:        "r1",
		FallbackIndex:   -1,
		RequesterName:   "Carlos Lima",
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteForbidden, outcome)
	assert.Nil(t, repo.applied)
}

func TestDeleteReviewOwnerModeratesAnyReview(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		ReviewID:        "r1",
		FallbackIndex:   -1,
		RequesterName:   "Dono da Loja",
		RequesterOwner:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteApplied, outcome)
}

func TestDeleteReviewUnchangedWhenIDUnknown(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		ReviewID:        "desconhecido",
		FallbackIndex:   -1,
		RequesterOwner:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteUnchanged, outcome)
}

func TestDeleteReviewLegacyContentMatch(t *testing.T) {
	est := establishmentFixture()
	// Avaliação legada, sem id gerado.
	est.Reviews = append(est.Reviews, domain.Review{Name: "Ana Souza", Rating: 2, Comment: "Ruim", Date: "10/04/2026"})
	est.ReviewsCount = 3
	repo := &stubReviewRepository{establishment: est}
	svc := application.NewReviewCommandService(repo, time.UTC)

	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		Target:          domain.Review{Name: "Ana Souza", Rating: 2, Comment: "Ruim", Date: "10/04/2026"},
		FallbackIndex:   2,
		RequesterName:   "Ana Souza",
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteApplied, outcome)
	require.NotNil(t, repo.applied)
	assert.Len(t, repo.applied.Reviews, 2)
}

func TestDeleteReviewPositionalFallbackSparesDuplicates(t *testing.T) {
	est := establishmentFixture()
	// Duas avaliações legadas idênticas campo a campo, sem id gerado.
	legacy := domain.Review{Name: "Ana Souza", Rating: 2, Comment: "Ruim", Date: "10/04/2026"}
	est.Reviews = append(est.Reviews, legacy, legacy)
	est.ReviewsCount = 4
	repo := &stubReviewRepository{establishment: est}
	svc := application.NewReviewCommandService(repo, time.UTC)

	// O conteúdo enviado não casa com nada; só o índice resolve o alvo.
	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "dono_exemplo_com",
		EstablishmentID: "65a000000000000000000001",
		Target:          domain.Review{Name: "Outra Pessoa", Rating: 1},
		FallbackIndex:   3,
		RequesterName:   "Ana Souza",
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteApplied, outcome)
	require.NotNil(t, repo.applied)
	// Apenas o elemento da posição sai; a duplicata permanece.
	require.Len(t, repo.applied.Reviews, 3)
	assert.Equal(t, "Ana Souza", repo.applied.Reviews[2].Name)
	assert.Equal(t, 2, repo.applied.Reviews[2].Rating)
}

func TestDeleteReviewSkipsOnMissingReference(t *testing.T) {
	repo := &stubReviewRepository{establishment: establishmentFixture()}
	svc := application.NewReviewCommandService(repo, time.UTC)

	outcome, err := svc.Delete(context.Background(), application.DeleteReviewCommand{
		OwnerID:         "",
		EstablishmentID: "65a000000000000000000001",
		ReviewID:        "r1",
	})

	require.NoError(t, err)
	assert.Equal(t, application.DeleteSkipped, outcome)
	assert.Equal(t, 0, repo.findCalls)
}
