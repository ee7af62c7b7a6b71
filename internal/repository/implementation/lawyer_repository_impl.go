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

type LawyerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LawyerMapper
}

func NewLawyerRepository(db *gorm.DB) contract.LawyerRepository {
	return &LawyerRepositoryImpl{
		db:     db,
		mapper: mapper.NewLawyerMapper(),
	}
}

func (r *LawyerRepositoryImpl) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	m := r.mapper.ToModel(lawyer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lawyer = *r.mapper.ToEntity(m)
	return nil
}

func (r *LawyerRepositoryImpl) Update(ctx context.Context, lawyer *entity.Lawyer) error {
	m := r.mapper.ToModel(lawyer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*lawyer = *r.mapper.ToEntity(m)
	return nil
}

func (r *LawyerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Lawyer{}).Error
}

func (r *LawyerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error) {
	var m model.Lawyer
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LawyerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error) {
	var lawyers []*model.Lawyer
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&lawyers).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(lawyers), nil
}

func (r *LawyerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Lawyer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LawyerRepositoryImpl) updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Lawyer{}).Where("id = ?", id).Updates(fields).Error
}

func (r *LawyerRepositoryImpl) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.updates(ctx, id, map[string]interface{}{
		"email_verified": true,
		"phone_verified": true,
		"is_verified":    true,
	})
}

func (r *LawyerRepositoryImpl) Approve(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updates(ctx, id, map[string]interface{}{
		"is_approved": true,
		"approved_at": at,
	})
}

func (r *LawyerRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updates(ctx, id, map[string]interface{}{"last_login": at})
}

func (r *LawyerRepositoryImpl) RequestDeletion(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updates(ctx, id, map[string]interface{}{
		"deletion_requested":    true,
		"deletion_requested_at": at,
	})
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) contract.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *entity.Admin) error {
	m := mapper.AdminToModel(admin)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*admin = *mapper.AdminToEntity(m)
	return nil
}

func (r *AdminRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	var m model.Admin
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapper.AdminToEntity(&m), nil
}

func (r *AdminRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Admin, error) {
	var admins []*model.Admin
	if err := r.db.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Admin, 0, len(admins))
	for _, a := range admins {
		out = append(out, mapper.AdminToEntity(a))
	}
	return out, nil
}

func (r *AdminRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).Update("last_login", at).Error
}
