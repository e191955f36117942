package usecase

import (
	"context"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCategoryUsecase(t *testing.T) (ServiceCategoryUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	return NewServiceCategoryUsecase(
		db, log,
		repository.NewServiceCategoryRepository(),
		repository.NewServiceRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateCategoryAutoAssignsPosition(t *testing.T) {
	uc, _ := newCategoryUsecase(t)
	ctx := context.Background()

	first, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)

	second, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Лабораторные анализы"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)
}

func TestCreateCategoryExplicitPosition(t *testing.T) {
	uc, _ := newCategoryUsecase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Диагностика", Position: "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, cat.Position)

	// Auto assignment continues past the explicit position.
	next, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия"})
	require.NoError(t, err)
	assert.Equal(t, 8, next.Position)
}

func TestCreateCategoryInvalidPosition(t *testing.T) {
	uc, _ := newCategoryUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия", Position: "abc"})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия", Position: "-1"})
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	uc, _ := newCategoryUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия"})
	assert.ErrorIs(t, err, ErrCategoryNameExists)
}

func TestUpdateCategoryKeepsPositionWhenBlank(t *testing.T) {
	uc, _ := newCategoryUsecase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия", Position: "3"})
	require.NoError(t, err)

	updated, err := uc.UpdateCategory(ctx, cat.ID, &dto.UpdateCategoryRequest{Name: "Педиатрия и неонатология"})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Position)
	assert.Equal(t, "Педиатрия и неонатология", updated.Name)
}

func TestGetAllCategoriesOrderedByPosition(t *testing.T) {
	uc, _ := newCategoryUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Хирургия", Position: "2"})
	require.NoError(t, err)
	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия", Position: "1"})
	require.NoError(t, err)

	list, err := uc.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Педиатрия", list.Categories[0].Name)
	assert.Equal(t, "Хирургия", list.Categories[1].Name)
}

func TestDeleteCategoryCascadesToServices(t *testing.T) {
	uc, db := newCategoryUsecase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Педиатрия"})
	require.NoError(t, err)

	svc := entity.Service{
		ServiceCategoryID: cat.ID,
		Name:              "Первичный осмотр",
		Price:             decimal.NewFromInt(1500),
		Active:            true,
	}
	require.NoError(t, db.Create(&svc).Error)

	require.NoError(t, uc.DeleteCategory(ctx, cat.ID, "admin"))

	var services int64
	require.NoError(t, db.Model(&entity.Service{}).Count(&services).Error)
	assert.Zero(t, services)

	err = uc.DeleteCategory(ctx, cat.ID, "admin")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
