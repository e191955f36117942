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

var ErrMessageNotFound = errors.New("message not found")

type MessageUsecase interface {
	CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	GetAllMessages(ctx context.Context) (*dto.MessageListResponse, error)
	MarkRead(ctx context.Context, messageID uint, actor string) error
	MarkReplied(ctx context.Context, messageID uint, actor string) error
	DeleteMessage(ctx context.Context, messageID uint, actor string) error
}

type messageUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	messageRepo   repository.MessageRepository
	notifications *service.NotificationService
	auditService  service.AuditService
}

func NewMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.MessageRepository,
	notifications *service.NotificationService,
	auditService service.AuditService,
) MessageUsecase {
	return &messageUsecase{
		db:            db,
		log:           log,
		messageRepo:   messageRepo,
		notifications: notifications,
		auditService:  auditService,
	}
}

func (u *messageUsecase) CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	message := &entity.Message{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  entity.MessageStatusNew,
	}
	if err := u.messageRepo.Create(u.db.WithContext(ctx), message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	u.notifications.Invalidate(ctx)
	return converter.MessageToResponse(message), nil
}

func (u *messageUsecase) GetAllMessages(ctx context.Context) (*dto.MessageListResponse, error) {
	messages, err := u.messageRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find messages: %+v", err)
		return nil, err
	}
	return &dto.MessageListResponse{
		Messages: converter.MessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

// MarkRead and MarkReplied are both reachable from any prior state; a
// message can go straight to replied without passing through read.
func (u *messageUsecase) MarkRead(ctx context.Context, messageID uint, actor string) error {
	return u.transition(ctx, messageID, actor, entity.AuditActionMessageMarkRead, (*entity.Message).MarkRead)
}

func (u *messageUsecase) MarkReplied(ctx context.Context, messageID uint, actor string) error {
	return u.transition(ctx, messageID, actor, entity.AuditActionMessageMarkReplied, (*entity.Message).MarkReplied)
}

func (u *messageUsecase) DeleteMessage(ctx context.Context, messageID uint, actor string) error {
	db := u.db.WithContext(ctx)

	message, err := u.messageRepo.FindByID(db, messageID)
	if err != nil {
		u.log.Warnf("Failed to find message: %+v", err)
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}

	if _, err := u.messageRepo.Delete(db, messageID); err != nil {
		u.log.Warnf("Failed to delete message: %+v", err)
		return err
	}

	u.notifications.Invalidate(ctx)
	u.auditService.Log(ctx, u.db, actor, entity.AuditActionMessageDelete, "message", messageID, entity.JSON{
		"subject": message.Subject,
	})
	return nil
}

func (u *messageUsecase) transition(ctx context.Context, messageID uint, actor, action string, apply func(*entity.Message)) error {
	db := u.db.WithContext(ctx)

	message, err := u.messageRepo.FindByID(db, messageID)
	if err != nil {
		u.log.Warnf("Failed to find message: %+v", err)
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}

	apply(message)
	if err := u.messageRepo.Update(db, message); err != nil {
		u.log.Warnf("Failed to update message status: %+v", err)
		return err
	}

	u.notifications.Invalidate(ctx)
	u.auditService.Log(ctx, u.db, actor, action, "message", messageID, entity.JSON{
		"status": string(message.Status),
	})
	return nil
}
