package service

import (
	"context"
	"encoding/json"
	"time"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	notificationCountsKey = "admin:notifications:count"
	notificationCountsTTL = 10 * time.Second
)

// NotificationCounts is the unread badge data for the admin panel.
type NotificationCounts struct {
	UnreadMessages  int64 `json:"unread_messages"`
	NewAppointments int64 `json:"new_appointments"`
	Total           int64 `json:"total"`
	UpdatedAt       int64 `json:"updated_at"`
}

// NotificationService serves the admin unread counters. Counts are cached
// in Redis for a few seconds since the admin UI polls this endpoint; a
// nil redis client disables caching (tests, local setups without Redis).
type NotificationService struct {
	db              *gorm.DB
	redisClient     *redis.Client
	log             *logrus.Logger
	messageRepo     repository.MessageRepository
	appointmentRepo repository.AppointmentRepository
}

func NewNotificationService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	messageRepo repository.MessageRepository,
	appointmentRepo repository.AppointmentRepository,
) *NotificationService {
	return &NotificationService{
		db:              db,
		redisClient:     redisClient,
		log:             log,
		messageRepo:     messageRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Counts returns the number of new messages and appointments.
func (s *NotificationService) Counts(ctx context.Context) (*NotificationCounts, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	unreadMessages, err := s.messageRepo.CountByStatus(s.db.WithContext(ctx), entity.MessageStatusNew)
	if err != nil {
		s.log.Warnf("Failed to count new messages: %+v", err)
		return nil, err
	}
	newAppointments, err := s.appointmentRepo.CountByStatus(s.db.WithContext(ctx), entity.AppointmentStatusNew)
	if err != nil {
		s.log.Warnf("Failed to count new appointments: %+v", err)
		return nil, err
	}

	counts := &NotificationCounts{
		UnreadMessages:  unreadMessages,
		NewAppointments: newAppointments,
		Total:           unreadMessages + newAppointments,
		UpdatedAt:       time.Now().Unix(),
	}
	s.toCache(ctx, counts)
	return counts, nil
}

// Invalidate drops the cached counters. Called after any message or
// appointment mutation so the badge catches up on the next poll.
func (s *NotificationService) Invalidate(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, notificationCountsKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate notification counts: %+v", err)
	}
}

func (s *NotificationService) fromCache(ctx context.Context) *NotificationCounts {
	if s.redisClient == nil {
		return nil
	}
	raw, err := s.redisClient.Get(ctx, notificationCountsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read notification counts cache: %+v", err)
		}
		return nil
	}
	var counts NotificationCounts
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil
	}
	return &counts
}

func (s *NotificationService) toCache(ctx context.Context, counts *NotificationCounts) {
	if s.redisClient == nil {
		return
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, notificationCountsKey, raw, notificationCountsTTL).Err(); err != nil {
		s.log.Warnf("Failed to cache notification counts: %+v", err)
	}
}
