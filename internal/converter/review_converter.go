package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:            review.ID,
		AuthorName:    review.AuthorName,
		Content:       review.Content,
		Rating:        review.Rating,
		Approved:      review.Approved,
		Featured:      review.Featured,
		CreatedAt:     review.CreatedAt,
		StarRating:    review.StarRating(),
		FormattedDate: review.FormattedDate(),
	}
}

func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}
