package service

import (
	"context"
	"strings"
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/pkg/events"

	"github.com/google/uuid"
)

const (
	FrameNewMessage   = "newMessage"
	FrameNotification = "notification"

	conversationPreviewSize = 50
	maxMessageLength        = 5000
)

// RealtimeDelivery pushes a typed frame to every connection of an account.
// Implemented by the websocket hub.
type RealtimeDelivery interface {
	Push(recipientID uuid.UUID, frameType string, data interface{})
}

type NewMessageFrame struct {
	ConversationId uuid.UUID `json:"conversationId"`
	Sender         string    `json:"sender"`
	SenderId       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

type IMessagingService interface {
	Send(ctx context.Context, senderID uuid.UUID, senderRole string, recipientID uuid.UUID, content string) (*dto.MessageResponse, error)
	Conversations(ctx context.Context, accountID uuid.UUID, role string) ([]dto.ConversationResponse, error)
}

type messagingService struct {
	uowFactory unitofwork.RepositoryFactory
	delivery   RealtimeDelivery
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewMessagingService(uowFactory unitofwork.RepositoryFactory, delivery RealtimeDelivery, publisher events.Publisher, log logger.ILogger) IMessagingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &messagingService{
		uowFactory: uowFactory,
		delivery:   delivery,
		publisher:  publisher,
		logger:     log,
	}
}

// Send stores a message in the conversation of the user-lawyer pair, creating
// the conversation on first contact, and relays it to the recipient.
func (s *messagingService) Send(ctx context.Context, senderID uuid.UUID, senderRole string, recipientID uuid.UUID, content string) (*dto.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, newError(ErrValidation, "Message is required")
	}
	if len([]rune(content)) > maxMessageLength {
		return nil, newError(ErrValidation, "Message is too long")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var userID, lawyerID uuid.UUID
	var recipientRole string
	switch senderRole {
	case RoleUser:
		lawyer, err := uow.LawyerRepository().FindOne(ctx, specification.ByID{ID: recipientID}, specification.ApprovedLawyers{})
		if err != nil {
			return nil, err
		}
		if lawyer == nil {
			return nil, newError(ErrNotFound, "Lawyer not found")
		}
		userID, lawyerID, recipientRole = senderID, recipientID, RoleLawyer
	case RoleLawyer:
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: recipientID})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, newError(ErrNotFound, "User not found")
		}
		userID, lawyerID, recipientRole = recipientID, senderID, RoleUser
	default:
		return nil, newError(ErrForbidden, "Only users and lawyers can send messages")
	}

	conv, err := uow.ConversationRepository().FindOrCreate(ctx, userID, lawyerID)
	if err != nil {
		return nil, err
	}

	msg := &entity.ConversationMessage{
		Id:             uuid.New(),
		ConversationId: conv.Id,
		SenderId:       senderID,
		SenderType:     entity.AccountType(senderRole),
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := uow.ConversationRepository().AddMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.delivery != nil {
		s.delivery.Push(recipientID, FrameNewMessage, NewMessageFrame{
			ConversationId: conv.Id,
			Sender:         senderRole,
			SenderId:       senderID,
			Content:        msg.Content,
			Timestamp:      msg.CreatedAt,
		})
	}

	evt := events.New(events.MessageReceived, map[string]interface{}{
		"recipient_id":    recipientID.String(),
		"recipient_role":  recipientRole,
		"sender_id":       senderID.String(),
		"sender_role":     senderRole,
		"conversation_id": conv.Id.String(),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("MESSAGING", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}

	res := toMessage(msg)
	return &res, nil
}

// Conversations lists the account's conversations, newest activity first, each
// with its most recent messages in chronological order.
func (s *messagingService) Conversations(ctx context.Context, accountID uuid.UUID, role string) ([]dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var convs []*entity.Conversation
	var err error
	switch role {
	case RoleLawyer:
		convs, err = uow.ConversationRepository().ListByLawyer(ctx, accountID)
	case RoleUser:
		convs, err = uow.ConversationRepository().ListByUser(ctx, accountID)
	default:
		return nil, newError(ErrForbidden, "Only users and lawyers have conversations")
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConversationResponse, 0, len(convs))
	for _, c := range convs {
		msgs, err := uow.ConversationRepository().Messages(ctx, c.Id, conversationPreviewSize)
		if err != nil {
			return nil, err
		}
		item := dto.ConversationResponse{
			Id:            c.Id,
			UserId:        c.UserId,
			LawyerId:      c.LawyerId,
			LastMessageAt: c.LastMessageAt,
			Messages:      make([]dto.MessageResponse, 0, len(msgs)),
		}
		for _, m := range msgs {
			item.Messages = append(item.Messages, toMessage(m))
		}
		out = append(out, item)
	}
	return out, nil
}
