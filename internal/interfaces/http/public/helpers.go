package public

import (
	"strings"

	"github.com/petzim/petzim-services/api/internal/interfaces/http/common"
	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

func buildListingResponse(listing publicdomain.Listing) listingResponse {
	return listingResponse{
		ID:           listing.ID,
		OwnerID:      listing.OwnerID,
		Name:         listing.Name,
		Category:     listing.Category,
		Rating:       listing.Rating,
		RatingLabel:  listing.RatingLabel,
		ReviewsCount: listing.ReviewsCount,
		PriceTag:     listing.PriceTag,
		Address:      listing.Address,
		Phone:        listing.Phone,
		Hours:        listing.Hours,
		Description:  listing.Description,
		Services:     listing.Services,
	}
}

func buildReviewResponse(review publicdomain.Review) reviewResponse {
	return reviewResponse{
		ID:      review.ID,
		Name:    review.Name,
		Rating:  review.Rating,
		Comment: review.Comment,
		Date:    review.Date,
	}
}

func buildEstablishmentDetailResponse(est publicdomain.Establishment) establishmentDetailResponse {
	reviews := make([]reviewResponse, 0, len(est.Reviews))
	for _, review := range est.Reviews {
		reviews = append(reviews, buildReviewResponse(review))
	}

	summary := publicdomain.Summarize(est.Reviews)

	return establishmentDetailResponse{
		listingResponse: buildListingResponse(publicdomain.NewListing(est)),
		Reviews:         reviews,
		Summary: reviewSummaryResponse{
			Count:     summary.Count,
			Average:   summary.Average,
			Histogram: summary.PerStar,
		},
	}
}

func buildUserResponse(user publicdomain.User) userResponse {
	return userResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		AccountType: user.AccountType,
	}
}

func reviewerDisplayName(user common.AuthenticatedUser) string {
	name := strings.TrimSpace(user.Name)
	if name != "" {
		return name
	}
	return "Anônimo"
}
