package contract

import (
	"context"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type ChatHistoryRepository interface {
	Append(ctx context.Context, entry *entity.ChatHistoryEntry) error
	// ListByUser returns entries oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ChatHistoryEntry, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
