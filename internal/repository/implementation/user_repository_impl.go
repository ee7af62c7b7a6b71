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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var users []*model.User
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&users).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(users), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.updates(ctx, id, map[string]interface{}{
		"email_verified": true,
		"phone_verified": true,
		"is_verified":    true,
	})
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.updates(ctx, id, map[string]interface{}{"password_hash": hash})
}

func (r *UserRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updates(ctx, id, map[string]interface{}{"last_login": at})
}

func (r *UserRepositoryImpl) RequestDeletion(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updates(ctx, id, map[string]interface{}{
		"deletion_requested":    true,
		"deletion_requested_at": at,
	})
}

func (r *UserRepositoryImpl) GrantPremium(ctx context.Context, id uuid.UUID, until time.Time) error {
	return r.updates(ctx, id, map[string]interface{}{
		"is_premium":         true,
		"premium_expires_at": until,
	})
}

func (r *UserRepositoryImpl) RemoveAds(ctx context.Context, id uuid.UUID) error {
	return r.updates(ctx, id, map[string]interface{}{"ads_removed": true})
}
