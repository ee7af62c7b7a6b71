package implementation

import (
	"context"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/mapper"
	"samvidhan-be/internal/model"
	"samvidhan-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

func (r *ConversationRepositoryImpl) FindOrCreate(ctx context.Context, userID, lawyerID uuid.UUID) (*entity.Conversation, error) {
	conv := model.Conversation{UserId: userID, LawyerId: lawyerID, LastMessageAt: time.Now()}

	// the unique pair index makes concurrent first messages converge on one row
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&conv).Error
	if err != nil {
		return nil, err
	}

	var found model.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND lawyer_id = ?", userID, lawyerID).
		First(&found).Error; err != nil {
		return nil, err
	}
	return mapper.ConversationToEntity(&found), nil
}

func (r *ConversationRepositoryImpl) AddMessage(ctx context.Context, msg *entity.ConversationMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := mapper.MessageToModel(msg)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Conversation{}).
			Where("id = ?", m.ConversationId).
			Update("last_message_at", m.CreatedAt).Error; err != nil {
			return err
		}
		*msg = *mapper.MessageToEntity(m)
		return nil
	})
}

func (r *ConversationRepositoryImpl) list(ctx context.Context, column string, id uuid.UUID) ([]*entity.Conversation, error) {
	var items []*model.Conversation
	if err := r.db.WithContext(ctx).
		Where(column+" = ?", id).
		Order("last_message_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Conversation, 0, len(items))
	for _, c := range items {
		out = append(out, mapper.ConversationToEntity(c))
	}
	return out, nil
}

func (r *ConversationRepositoryImpl) ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*entity.Conversation, error) {
	return r.list(ctx, "lawyer_id", lawyerID)
}

func (r *ConversationRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	return r.list(ctx, "user_id", userID)
}

func (r *ConversationRepositoryImpl) Messages(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.ConversationMessage, error) {
	var items []*model.ConversationMessage
	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.ConversationMessage, len(items))
	for i, m := range items {
		out[len(items)-1-i] = mapper.MessageToEntity(m)
	}
	return out, nil
}

func (r *ConversationRepositoryImpl) deleteWhere(ctx context.Context, column string, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Conversation{}).Select("id").Where(column+" = ?", id)
		if err := tx.Where("conversation_id IN (?)", sub).Delete(&model.ConversationMessage{}).Error; err != nil {
			return err
		}
		return tx.Where(column+" = ?", id).Delete(&model.Conversation{}).Error
	})
}

func (r *ConversationRepositoryImpl) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "user_id", userID)
}

func (r *ConversationRepositoryImpl) DeleteByLawyer(ctx context.Context, lawyerID uuid.UUID) error {
	return r.deleteWhere(ctx, "lawyer_id", lawyerID)
}
