package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"samvidhan-be/internal/model"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/repository/contract"
	"samvidhan-be/internal/repository/implementation"
	"samvidhan-be/pkg/events"
	pktNats "samvidhan-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TargetSelf  = "SELF"
	TargetAdmin = "ADMIN"

	notificationDurable = "notif-service-worker"
)

// EventSubscriber is the receiving side of the event bus.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

type NotificationService struct {
	repo       contract.NotificationRepository
	subscriber EventSubscriber
	delivery   RealtimeDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo contract.NotificationRepository, sub EventSubscriber, delivery RealtimeDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start attaches the durable consumer for every domain event.
func (s *NotificationService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		s.logger.Warn("NOTIFICATION", "No event subscriber configured, notifications disabled", nil)
		return nil
	}
	subject := pktNats.Subject(">")
	if err := s.subscriber.Subscribe(ctx, subject, notificationDurable, s.HandleEvent); err != nil {
		return fmt.Errorf("failed to start notification subscriber: %w", err)
	}
	s.logger.Info("NOTIFICATION", "Notification service listening", map[string]interface{}{"subject": subject})
	return nil
}

// HandleEvent stores one notification per recipient and pushes it live.
// Returning an error makes the broker redeliver the event.
func (s *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	typeCode := event.EventType()

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	recipients, err := s.resolveRecipients(ctx, config, event)
	if err != nil {
		s.logger.Error("NOTIFICATION", "Failed to resolve recipients", map[string]interface{}{"type": typeCode, "error": err.Error()})
		return err
	}

	for _, r := range recipients {
		notif := buildNotification(r, config, event)
		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NOTIFICATION", "Failed to save notification", map[string]interface{}{"recipient_id": r.id.String(), "error": err.Error()})
			continue
		}
		if s.delivery != nil {
			s.delivery.Push(r.id, FrameNotification, notif)
		}
	}
	return nil
}

type recipient struct {
	id   uuid.UUID
	role string
}

func (s *NotificationService) resolveRecipients(ctx context.Context, config *model.NotificationType, event events.Event) ([]recipient, error) {
	switch config.TargetType {
	case TargetSelf:
		raw, role := events.StringField(event, "recipient_id"), events.StringField(event, "recipient_role")
		if raw == "" {
			raw, role = events.StringField(event, "user_id"), RoleUser
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("NOTIFICATION", "Event has no recipient", map[string]interface{}{"type": event.EventType()})
			return nil, nil
		}
		if role == "" {
			role = RoleUser
		}
		return []recipient{{id: id, role: role}}, nil

	case TargetAdmin:
		ids, err := s.repo.GetAdminIDs(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]recipient, 0, len(ids))
		for _, id := range ids {
			out = append(out, recipient{id: id, role: RoleAdmin})
		}
		return out, nil
	}

	s.logger.Warn("NOTIFICATION", "Unsupported target type", map[string]interface{}{"target": config.TargetType})
	return nil, nil
}

// buildNotification fills {key} placeholders of the template from the payload.
func buildNotification(r recipient, config *model.NotificationType, event events.Event) model.Notification {
	msg := config.Template
	payload := event.Payload()
	for k, v := range payload {
		msg = strings.ReplaceAll(msg, "{"+k+"}", fmt.Sprintf("%v", v))
	}

	var actorID *uuid.UUID
	if raw := events.StringField(event, "sender_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			actorID = &id
		}
	}

	meta, _ := json.Marshal(payload)
	createdAt := event.Timestamp()
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return model.Notification{
		ID:            uuid.New(),
		RecipientID:   r.id,
		RecipientRole: r.role,
		ActorID:       actorID,
		TypeCode:      config.Code,
		Title:         config.DisplayName,
		Message:       msg,
		Metadata:      datatypes.JSON(meta),
		CreatedAt:     createdAt,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, recipientID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	err := s.repo.MarkAsRead(ctx, recipientID, notificationID)
	if errors.Is(err, implementation.ErrNotificationNotFound) {
		return newError(ErrNotFound, "Notification not found")
	}
	return err
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}
