package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

// GetApprovedReviews lists the reviews shown on the public site.
func (h *ReviewHandler) GetApprovedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.GetApprovedReviews(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// CreateReview handles the public review form. It accepts a JSON body or
// classic form fields. Field checks live in the usecase so the public
// site's wording is matched exactly.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	} else {
		req.AuthorName = r.FormValue("author_name")
		req.Content = r.FormValue("content")
		if rating, err := strconv.Atoi(r.FormValue("rating")); err == nil {
			req.Rating = rating
		}
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrReviewAuthorBlank:
			response.ValidationError(w, []string{"Author name must not be blank"})
		case usecase.ErrReviewContentBlank:
			response.ValidationError(w, []string{"Review content must not be blank"})
		case usecase.ErrReviewRatingBounds:
			response.ValidationError(w, []string{"Rating must be between 1 and 5"})
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.GetAllReviews(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reviewUsecase.ApproveReview, "Review approved successfully")
}

func (h *ReviewHandler) RejectReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reviewUsecase.RejectReview, "Review rejected successfully")
}

func (h *ReviewHandler) FeatureReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reviewUsecase.FeatureReview, "Review featured successfully")
}

func (h *ReviewHandler) UnfeatureReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reviewUsecase.UnfeatureReview, "Review unfeatured successfully")
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reviewUsecase.DeleteReview, "Review deleted successfully")
}

func (h *ReviewHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, reviewID uint, actor string) error,
	message string,
) {
	reviewID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid review ID")
		return
	}

	actor, _ := middleware.GetAdminUserFromContext(r.Context())
	if err := apply(r.Context(), reviewID, actor); err != nil {
		switch err {
		case usecase.ErrReviewNotFound:
			response.NotFound(w, "Review not found")
		default:
			response.InternalServerError(w, "Failed to update review")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
