package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentUsecase interface {
	CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	GetDocument(ctx context.Context, documentID uint) (*dto.DocumentResponse, error)
	GetActiveDocuments(ctx context.Context) (*dto.DocumentListResponse, error)
	GetAllDocuments(ctx context.Context) (*dto.DocumentListResponse, error)
	UpdateDocument(ctx context.Context, documentID uint, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, documentID uint, actor string) error
}

type documentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	documentRepo repository.DocumentRepository
	auditService service.AuditService
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	documentRepo repository.DocumentRepository,
	auditService service.AuditService,
) DocumentUsecase {
	return &documentUsecase{
		db:           db,
		log:          log,
		documentRepo: documentRepo,
		auditService: auditService,
	}
}

func (u *documentUsecase) CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	document := &entity.Document{
		Title:            req.Title,
		FilePath:         req.FilePath,
		OriginalFilename: req.OriginalFilename,
		Position:         req.Position,
		Active:           true,
	}
	if req.Active != nil {
		document.Active = *req.Active
	}

	if err := u.documentRepo.Create(u.db.WithContext(ctx), document); err != nil {
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}
	return converter.DocumentToResponse(document), nil
}

func (u *documentUsecase) GetDocument(ctx context.Context, documentID uint) (*dto.DocumentResponse, error) {
	document, err := u.documentRepo.FindByID(u.db.WithContext(ctx), documentID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}
	return converter.DocumentToResponse(document), nil
}

func (u *documentUsecase) GetActiveDocuments(ctx context.Context) (*dto.DocumentListResponse, error) {
	documents, err := u.documentRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active documents: %+v", err)
		return nil, err
	}
	return &dto.DocumentListResponse{
		Documents: converter.DocumentsToResponses(documents),
		Total:     len(documents),
	}, nil
}

func (u *documentUsecase) GetAllDocuments(ctx context.Context) (*dto.DocumentListResponse, error) {
	documents, err := u.documentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find documents: %+v", err)
		return nil, err
	}
	return &dto.DocumentListResponse{
		Documents: converter.DocumentsToResponses(documents),
		Total:     len(documents),
	}, nil
}

func (u *documentUsecase) UpdateDocument(ctx context.Context, documentID uint, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	db := u.db.WithContext(ctx)

	document, err := u.documentRepo.FindByID(db, documentID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}

	document.Title = req.Title
	document.FilePath = req.FilePath
	document.OriginalFilename = req.OriginalFilename
	document.Position = req.Position
	if req.Active != nil {
		document.Active = *req.Active
	}

	if err := u.documentRepo.Update(db, document); err != nil {
		u.log.Warnf("Failed to update document: %+v", err)
		return nil, err
	}
	return converter.DocumentToResponse(document), nil
}

func (u *documentUsecase) DeleteDocument(ctx context.Context, documentID uint, actor string) error {
	db := u.db.WithContext(ctx)

	document, err := u.documentRepo.FindByID(db, documentID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return err
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	if _, err := u.documentRepo.Delete(db, documentID); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, entity.AuditActionDocumentDelete, "document", documentID, entity.JSON{
		"title": document.Title,
	})
	return nil
}
