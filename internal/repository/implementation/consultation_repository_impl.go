package implementation

import (
	"context"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/mapper"
	"samvidhan-be/internal/model"
	"samvidhan-be/internal/repository/contract"
	"samvidhan-be/internal/repository/scope"
	"samvidhan-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConsultationMapper
}

func NewConsultationRepository(db *gorm.DB) contract.ConsultationRepository {
	return &ConsultationRepositoryImpl{db: db, mapper: mapper.NewConsultationMapper()}
}

func (r *ConsultationRepositoryImpl) Create(ctx context.Context, consultation *entity.Consultation) error {
	m := r.mapper.ToModel(consultation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*consultation = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConsultationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	var items []*model.Consultation
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&items).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(items), nil
}

func (r *ConsultationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Consultation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ConsultationRepositoryImpl) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Consultation{}).Error
}

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConsultationMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{db: db, mapper: mapper.NewConsultationMapper()}
}

// Append is a plain insert, so concurrent appends for one user never overwrite each other.
func (r *ChatHistoryRepositoryImpl) Append(ctx context.Context, entry *entity.ChatHistoryEntry) error {
	m := r.mapper.HistoryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.HistoryToEntity(m)
	return nil
}

func (r *ChatHistoryRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ChatHistoryEntry, error) {
	var items []*model.ChatHistoryEntry
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(scope.OrderByCreatedAsc)
	query = specification.Pagination{Limit: limit, Offset: offset}.Apply(query)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return r.mapper.HistoryToEntities(items), nil
}

func (r *ChatHistoryRepositoryImpl) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ChatHistoryEntry{}).Error
}
