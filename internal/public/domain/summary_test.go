package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzim/petzim-services/api/internal/public/domain"
)

func TestSummarizeEmptySequence(t *testing.T) {
	summary := domain.Summarize(nil)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Average)
	for star := 1; star <= 5; star++ {
		assert.Equal(t, 0, summary.PerStar[star])
	}
}

func TestSummarizeComputesMeanAndHistogram(t *testing.T) {
	reviews := []domain.Review{
		{Name: "Ana", Rating: 5},
		{Name: "Carlos", Rating: 3},
		{Name: "Beatriz", Rating: 5},
		{Name: "João", Rating: 1},
	}

	summary := domain.Summarize(reviews)

	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 3.5, summary.Average, 1e-9)
	assert.Equal(t, 2, summary.PerStar[5])
	assert.Equal(t, 1, summary.PerStar[3])
	assert.Equal(t, 1, summary.PerStar[1])
	assert.Equal(t, 0, summary.PerStar[2])
}

func TestSummarizeOutOfRangeRatingCountsInMeanOnly(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5},
		{Rating: 0},
	}

	summary := domain.Summarize(reviews)

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 2.5, summary.Average, 1e-9)
	histTotal := 0
	for star := 1; star <= 5; star++ {
		histTotal += summary.PerStar[star]
	}
	assert.Equal(t, 1, histTotal)
}

func TestInsertReviewPrependsAndRecomputes(t *testing.T) {
	existing := []domain.Review{
		{Name: "Ana", Rating: 5, Date: "01/06/2026"},
		{Name: "Carlos", Rating: 3, Date: "20/05/2026"},
	}
	novo := domain.Review{ID: "r-novo", Name: "Beatriz", Rating: 4, Date: "15/06/2026"}

	payload := domain.InsertReview(existing, novo)

	require.Len(t, payload.Reviews, 3)
	assert.Equal(t, "r-novo", payload.Reviews[0].ID)
	assert.Equal(t, "Ana", payload.Reviews[1].Name)
	assert.Equal(t, "Carlos", payload.Reviews[2].Name)
	assert.Equal(t, 3, payload.ReviewsCount)
	assert.InDelta(t, 4.0, payload.Rating, 1e-9)

	// A sequência original não é alterada.
	assert.Len(t, existing, 2)
}

func TestDeleteReviewByGeneratedID(t *testing.T) {
	reviews := []domain.Review{
		{ID: "r1", Name: "Ana", Rating: 5},
		{ID: "r2", Name: "Carlos", Rating: 3},
		{ID: "r3", Name: "Beatriz", Rating: 4},
	}

	payload, changed := domain.DeleteReview(reviews, domain.Review{ID: "r2"}, -1)

	require.True(t, changed)
	require.Len(t, payload.Reviews, 2)
	assert.Equal(t, "r1", payload.Reviews[0].ID)
	assert.Equal(t, "r3", payload.Reviews[1].ID)
	assert.Equal(t, 2, payload.ReviewsCount)
	assert.InDelta(t, 4.5, payload.Rating, 1e-9)
}

func TestDeleteReviewByContentRemovesEveryMatch(t *testing.T) {
	duplicated := domain.Review{Name: "Ana", Rating: 5, Comment: "Ótimo", Date: "01/06/2026"}
	reviews := []domain.Review{
		duplicated,
		{Name: "Carlos", Rating: 3, Date: "20/05/2026"},
		duplicated,
	}

	payload, changed := domain.DeleteReview(reviews, duplicated, -1)

	require.True(t, changed)
	require.Len(t, payload.Reviews, 1)
	assert.Equal(t, "Carlos", payload.Reviews[0].Name)
	assert.InDelta(t, 3.0, payload.Rating, 1e-9)
}

func TestDeleteReviewFallsBackToIndex(t *testing.T) {
	reviews := []domain.Review{
		{Name: "Ana", Rating: 5},
		{Name: "Carlos", Rating: 3},
	}
	target := domain.Review{Name: "Inexistente", Rating: 1}

	payload, changed := domain.DeleteReview(reviews, target, 1)

	require.True(t, changed)
	require.Len(t, payload.Reviews, 1)
	assert.Equal(t, "Ana", payload.Reviews[0].Name)
}

func TestDeleteReviewAtRemovesSingleElement(t *testing.T) {
	duplicated := domain.Review{Name: "Ana", Rating: 5, Comment: "Ótimo", Date: "01/06/2026"}
	reviews := []domain.Review{
		duplicated,
		{Name: "Carlos", Rating: 3, Date: "20/05/2026"},
		duplicated,
	}

	payload, changed := domain.DeleteReviewAt(reviews, 2)

	require.True(t, changed)
	require.Len(t, payload.Reviews, 2)
	// A duplicata em outra posição permanece.
	assert.Equal(t, "Ana", payload.Reviews[0].Name)
	assert.Equal(t, "Carlos", payload.Reviews[1].Name)
	assert.Equal(t, 2, payload.ReviewsCount)
	assert.InDelta(t, 4.0, payload.Rating, 1e-9)
}

func TestDeleteReviewAtOutOfRange(t *testing.T) {
	reviews := []domain.Review{{Name: "Ana", Rating: 5}}

	_, changed := domain.DeleteReviewAt(reviews, 1)
	assert.False(t, changed)

	_, changed = domain.DeleteReviewAt(reviews, -1)
	assert.False(t, changed)
}

func TestDeleteReviewUnchangedWhenNothingMatches(t *testing.T) {
	reviews := []domain.Review{
		{Name: "Ana", Rating: 5},
	}
	target := domain.Review{Name: "Inexistente", Rating: 1}

	_, changed := domain.DeleteReview(reviews, target, 5)

	assert.False(t, changed)
}

func TestDeleteLastReviewZeroesRating(t *testing.T) {
	reviews := []domain.Review{{ID: "r1", Name: "Ana", Rating: 4}}

	payload, changed := domain.DeleteReview(reviews, domain.Review{ID: "r1"}, -1)

	require.True(t, changed)
	assert.Empty(t, payload.Reviews)
	assert.Equal(t, 0, payload.ReviewsCount)
	assert.Equal(t, 0.0, payload.Rating)
}

func TestInsertThenDeleteKeepsCachesConsistent(t *testing.T) {
	reviews := []domain.Review{
		{ID: "r1", Name: "Ana", Rating: 5},
		{ID: "r2", Name: "Carlos", Rating: 3},
	}

	inserted := domain.InsertReview(reviews, domain.Review{ID: "r3", Name: "Beatriz", Rating: 4})
	assert.Equal(t, 3, inserted.ReviewsCount)
	assert.InDelta(t, 4.0, inserted.Rating, 1e-9)

	payload, changed := domain.DeleteReview(inserted.Reviews, domain.Review{ID: "r1"}, -1)
	require.True(t, changed)
	assert.Equal(t, 2, payload.ReviewsCount)
	assert.InDelta(t, 3.5, payload.Rating, 1e-9)

	summary := domain.Summarize(payload.Reviews)
	assert.Equal(t, payload.ReviewsCount, summary.Count)
	assert.InDelta(t, payload.Rating, summary.Average, 1e-9)
}
