package implementation

import (
	"context"
	"errors"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/mapper"
	"samvidhan-be/internal/model"
	"samvidhan-be/internal/repository/contract"
	"samvidhan-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdRepositoryImpl struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) contract.AdRepository {
	return &AdRepositoryImpl{db: db}
}

func (r *AdRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ad, error) {
	var ads []*model.Ad
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ads).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Ad, 0, len(ads))
	for _, a := range ads {
		out = append(out, mapper.AdToEntity(a))
	}
	return out, nil
}

func (r *AdRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Ad{}).Count(&count).Error
	return count, err
}

func (r *AdRepositoryImpl) Create(ctx context.Context, ad *entity.Ad) error {
	m := &model.Ad{
		Title:       ad.Title,
		Description: ad.Description,
		ImageURL:    ad.ImageURL,
		Link:        ad.Link,
		Advertiser:  ad.Advertiser,
		IsActive:    ad.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ad = *mapper.AdToEntity(m)
	return nil
}

func (r *AdRepositoryImpl) AddImpressions(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Ad{}).
		Where("id IN ?", ids).
		UpdateColumn("impressions", gorm.Expr("impressions + 1")).Error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *entity.Payment) error {
	m := mapper.PaymentToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *mapper.PaymentToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	var m model.Payment
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapper.PaymentToEntity(&m), nil
}

func (r *PaymentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	var items []*model.Payment
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Payment, 0, len(items))
	for _, p := range items {
		out = append(out, mapper.PaymentToEntity(p))
	}
	return out, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paidAt *time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status NOT IN ?", id, []string{string(entity.PaymentStatusCompleted), string(status)}).
		Updates(map[string]interface{}{
			"status":  string(status),
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *PaymentRepositoryImpl) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Payment{}).Error
}
