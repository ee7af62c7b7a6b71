package contract

import (
	"context"

	"samvidhan-be/internal/entity"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	FindOrCreate(ctx context.Context, userID, lawyerID uuid.UUID) (*entity.Conversation, error)
	AddMessage(ctx context.Context, msg *entity.ConversationMessage) error
	ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*entity.Conversation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)
	// Messages returns the newest limit messages of a conversation, oldest first.
	Messages(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.ConversationMessage, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteByLawyer(ctx context.Context, lawyerID uuid.UUID) error
}
