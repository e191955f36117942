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

func newDocumentUsecase(t *testing.T) (DocumentUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	return NewDocumentUsecase(
		db, log,
		repository.NewDocumentRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateDocumentDefaultsToActive(t *testing.T) {
	uc, _ := newDocumentUsecase(t)

	resp, err := uc.CreateDocument(context.Background(), &dto.CreateDocumentRequest{
		Title:    "Лицензия",
		FilePath: "/files/license.pdf",
	})
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, "PDF", resp.FileTypeLabel)
	assert.Equal(t, "Лицензия.pdf", resp.DownloadFilename)
}

func TestActiveDocumentsListingFiltersInactive(t *testing.T) {
	uc, _ := newDocumentUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateDocument(ctx, &dto.CreateDocumentRequest{Title: "Лицензия", FilePath: "/files/license.pdf"})
	require.NoError(t, err)

	inactive := false
	_, err = uc.CreateDocument(ctx, &dto.CreateDocumentRequest{
		Title:    "Старый сертификат",
		FilePath: "/files/old.pdf",
		Active:   &inactive,
	})
	require.NoError(t, err)

	public, err := uc.GetActiveDocuments(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, public.Total)
	assert.Equal(t, "Лицензия", public.Documents[0].Title)

	all, err := uc.GetAllDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestDocumentsOrderedByPosition(t *testing.T) {
	uc, _ := newDocumentUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateDocument(ctx, &dto.CreateDocumentRequest{Title: "Второй", FilePath: "/files/b.pdf", Position: 2})
	require.NoError(t, err)
	_, err = uc.CreateDocument(ctx, &dto.CreateDocumentRequest{Title: "Первый", FilePath: "/files/a.pdf", Position: 1})
	require.NoError(t, err)

	list, err := uc.GetActiveDocuments(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Первый", list.Documents[0].Title)
	assert.Equal(t, "Второй", list.Documents[1].Title)
}

func TestUpdateDocument(t *testing.T) {
	uc, _ := newDocumentUsecase(t)
	ctx := context.Background()

	created, err := uc.CreateDocument(ctx, &dto.CreateDocumentRequest{Title: "Лицензия", FilePath: "/files/license.pdf"})
	require.NoError(t, err)

	inactive := false
	updated, err := uc.UpdateDocument(ctx, created.ID, &dto.UpdateDocumentRequest{
		Title:    "Лицензия 2024",
		FilePath: "/files/license-2024.pdf",
		Active:   &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Лицензия 2024", updated.Title)
	assert.False(t, updated.Active)
}

func TestDocumentNotFound(t *testing.T) {
	uc, _ := newDocumentUsecase(t)
	ctx := context.Background()

	_, err := uc.GetDocument(ctx, 42)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	assert.ErrorIs(t, uc.DeleteDocument(ctx, 42, "admin"), ErrDocumentNotFound)
}
