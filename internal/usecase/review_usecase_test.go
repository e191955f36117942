package usecase

import (
	"context"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewUsecase(t *testing.T) (ReviewUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	return NewReviewUsecase(
		db, log,
		repository.NewReviewRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateReviewDefaultsToUnapproved(t *testing.T) {
	uc, _ := newReviewUsecase(t)

	resp, err := uc.CreateReview(context.Background(), &dto.CreateReviewRequest{
		AuthorName: "Анна",
		Content:    "Отличная клиника, внимательные врачи",
		Rating:     5,
	})
	require.NoError(t, err)
	assert.False(t, resp.Approved)
	assert.False(t, resp.Featured)
	assert.Equal(t, "★★★★★", resp.StarRating)
}

func TestCreateReviewValidation(t *testing.T) {
	uc, _ := newReviewUsecase(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateReviewRequest
		want error
	}{
		{"blank author", dto.CreateReviewRequest{AuthorName: "   ", Content: "Хорошо", Rating: 4}, ErrReviewAuthorBlank},
		{"blank content", dto.CreateReviewRequest{AuthorName: "Анна", Content: "", Rating: 4}, ErrReviewContentBlank},
		{"rating too low", dto.CreateReviewRequest{AuthorName: "Анна", Content: "Хорошо", Rating: 0}, ErrReviewRatingBounds},
		{"rating too high", dto.CreateReviewRequest{AuthorName: "Анна", Content: "Хорошо", Rating: 6}, ErrReviewRatingBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateReview(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApprovedReviewsListing(t *testing.T) {
	uc, _ := newReviewUsecase(t)
	ctx := context.Background()

	first, err := uc.CreateReview(ctx, &dto.CreateReviewRequest{AuthorName: "Анна", Content: "Отлично", Rating: 5})
	require.NoError(t, err)
	_, err = uc.CreateReview(ctx, &dto.CreateReviewRequest{AuthorName: "Борис", Content: "Хорошо", Rating: 4})
	require.NoError(t, err)

	public, err := uc.GetApprovedReviews(ctx)
	require.NoError(t, err)
	assert.Zero(t, public.Total)

	require.NoError(t, uc.ApproveReview(ctx, first.ID, "admin"))

	public, err = uc.GetApprovedReviews(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, public.Total)
	assert.Equal(t, "Анна", public.Reviews[0].AuthorName)

	all, err := uc.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestReviewFlagTransitions(t *testing.T) {
	uc, _ := newReviewUsecase(t)
	ctx := context.Background()

	resp, err := uc.CreateReview(ctx, &dto.CreateReviewRequest{AuthorName: "Анна", Content: "Отлично", Rating: 5})
	require.NoError(t, err)

	require.NoError(t, uc.ApproveReview(ctx, resp.ID, "admin"))
	require.NoError(t, uc.FeatureReview(ctx, resp.ID, "admin"))

	all, err := uc.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.True(t, all.Reviews[0].Approved)
	assert.True(t, all.Reviews[0].Featured)

	// Rejecting does not clear the highlight flag.
	require.NoError(t, uc.RejectReview(ctx, resp.ID, "admin"))
	all, err = uc.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.False(t, all.Reviews[0].Approved)
	assert.True(t, all.Reviews[0].Featured)

	require.NoError(t, uc.UnfeatureReview(ctx, resp.ID, "admin"))
	all, err = uc.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.False(t, all.Reviews[0].Featured)
}

func TestReviewNotFound(t *testing.T) {
	uc, _ := newReviewUsecase(t)

	assert.ErrorIs(t, uc.ApproveReview(context.Background(), 42, "admin"), ErrReviewNotFound)
	assert.ErrorIs(t, uc.DeleteReview(context.Background(), 42, "admin"), ErrReviewNotFound)
}

func TestDeleteReview(t *testing.T) {
	uc, _ := newReviewUsecase(t)
	ctx := context.Background()

	resp, err := uc.CreateReview(ctx, &dto.CreateReviewRequest{AuthorName: "Анна", Content: "Отлично", Rating: 5})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteReview(ctx, resp.ID, "admin"))

	all, err := uc.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Zero(t, all.Total)
}
