package application

import "context"

// dashboardService implements DashboardService.
type dashboardService struct {
	repo EstablishmentRepository
}

func NewDashboardService(repo EstablishmentRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Overview(ctx context.Context, ownerID string) (*DashboardOverview, error) {
	establishments, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{Establishments: len(establishments)}

	ratedSum := 0.0
	rated := 0
	for _, est := range establishments {
		overview.TotalReviews += est.ReviewsCount
		if est.ReviewsCount > 0 {
			ratedSum += est.Rating
			rated++
		}
	}
	if rated > 0 {
		overview.AverageRating = ratedSum / float64(rated)
	}
	return overview, nil
}
