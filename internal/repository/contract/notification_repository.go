package contract

import (
	"context"

	"samvidhan-be/internal/model"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]model.Notification, int64, error)
	GetUnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
	// MarkAsRead only touches rows owned by recipientID.
	MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error
	DeleteByRecipient(ctx context.Context, recipientID uuid.UUID) error

	GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error)
	GetAdminIDs(ctx context.Context) ([]uuid.UUID, error)
}
