package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewAuthorBlank  = errors.New("author name must not be blank")
	ErrReviewContentBlank = errors.New("review content must not be blank")
	ErrReviewRatingBounds = errors.New("rating must be between 1 and 5")
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetApprovedReviews(ctx context.Context) (*dto.ReviewListResponse, error)
	GetAllReviews(ctx context.Context) (*dto.ReviewListResponse, error)
	ApproveReview(ctx context.Context, reviewID uint, actor string) error
	RejectReview(ctx context.Context, reviewID uint, actor string) error
	FeatureReview(ctx context.Context, reviewID uint, actor string) error
	UnfeatureReview(ctx context.Context, reviewID uint, actor string) error
	DeleteReview(ctx context.Context, reviewID uint, actor string) error
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	auditService service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		reviewRepo:   reviewRepo,
		auditService: auditService,
	}
}

// CreateReview persists a public review. New reviews are never approved
// and never featured until an admin acts on them.
func (u *reviewUsecase) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	authorName := strings.TrimSpace(req.AuthorName)
	content := strings.TrimSpace(req.Content)

	if authorName == "" {
		return nil, ErrReviewAuthorBlank
	}
	if content == "" {
		return nil, ErrReviewContentBlank
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrReviewRatingBounds
	}

	review := &entity.Review{
		AuthorName: authorName,
		Content:    content,
		Rating:     req.Rating,
		Approved:   false,
		Featured:   false,
	}
	if err := u.reviewRepo.Create(u.db.WithContext(ctx), review); err != nil {
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}
	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) GetApprovedReviews(ctx context.Context) (*dto.ReviewListResponse, error) {
	reviews, err := u.reviewRepo.FindApproved(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find approved reviews: %+v", err)
		return nil, err
	}
	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}

func (u *reviewUsecase) GetAllReviews(ctx context.Context) (*dto.ReviewListResponse, error) {
	reviews, err := u.reviewRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find reviews: %+v", err)
		return nil, err
	}
	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}

func (u *reviewUsecase) ApproveReview(ctx context.Context, reviewID uint, actor string) error {
	return u.transition(ctx, reviewID, actor, entity.AuditActionReviewApprove, (*entity.Review).Approve)
}

func (u *reviewUsecase) RejectReview(ctx context.Context, reviewID uint, actor string) error {
	return u.transition(ctx, reviewID, actor, entity.AuditActionReviewReject, (*entity.Review).Reject)
}

func (u *reviewUsecase) FeatureReview(ctx context.Context, reviewID uint, actor string) error {
	return u.transition(ctx, reviewID, actor, entity.AuditActionReviewFeature, (*entity.Review).Feature)
}

func (u *reviewUsecase) UnfeatureReview(ctx context.Context, reviewID uint, actor string) error {
	return u.transition(ctx, reviewID, actor, entity.AuditActionReviewUnfeature, (*entity.Review).Unfeature)
}

func (u *reviewUsecase) DeleteReview(ctx context.Context, reviewID uint, actor string) error {
	db := u.db.WithContext(ctx)

	review, err := u.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	if _, err := u.reviewRepo.Delete(db, reviewID); err != nil {
		u.log.Warnf("Failed to delete review: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, entity.AuditActionReviewDelete, "review", reviewID, entity.JSON{
		"author_name": review.AuthorName,
	})
	return nil
}

func (u *reviewUsecase) transition(ctx context.Context, reviewID uint, actor, action string, apply func(*entity.Review)) error {
	db := u.db.WithContext(ctx)

	review, err := u.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	apply(review)
	if err := u.reviewRepo.Update(db, review); err != nil {
		u.log.Warnf("Failed to update review flags: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, action, "review", reviewID, entity.JSON{
		"approved": review.Approved,
		"featured": review.Featured,
	})
	return nil
}
