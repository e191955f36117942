package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newReviewHandler(t *testing.T) (*ReviewHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entity.Review{}, &entity.AuditLog{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	reviewUsecase := usecase.NewReviewUsecase(db, log, repository.NewReviewRepository(), auditService)
	return NewReviewHandler(reviewUsecase), db
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestCreateReviewJSON(t *testing.T) {
	h, db := newReviewHandler(t)

	body := `{"author_name":"Анна","content":"Отличная клиника","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.CreateReview(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeResponse(t, rec)
	assert.True(t, envelope.Success)

	var stored entity.Review
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Анна", stored.AuthorName)
	assert.False(t, stored.Approved)
}

func TestCreateReviewFormEncoded(t *testing.T) {
	h, db := newReviewHandler(t)

	form := "author_name=%D0%90%D0%BD%D0%BD%D0%B0&content=%D0%A5%D0%BE%D1%80%D0%BE%D1%88%D0%BE&rating=4"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.CreateReview(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var stored entity.Review
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, 4, stored.Rating)
}

func TestCreateReviewRejectsBadRating(t *testing.T) {
	h, _ := newReviewHandler(t)

	body := `{"author_name":"Анна","content":"Отлично","rating":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.CreateReview(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeResponse(t, rec)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Errors)
}

func TestGetApprovedReviewsOnlyApproved(t *testing.T) {
	h, db := newReviewHandler(t)

	require.NoError(t, db.Create(&entity.Review{AuthorName: "Анна", Content: "Отлично", Rating: 5, Approved: true}).Error)
	require.NoError(t, db.Create(&entity.Review{AuthorName: "Борис", Content: "Хорошо", Rating: 4}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	rec := httptest.NewRecorder()

	h.GetApprovedReviews(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Анна")
	assert.NotContains(t, rec.Body.String(), "Борис")
}
