package implementation

import (
	"context"
	"errors"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/mapper"
	"samvidhan-be/internal/model"
	"samvidhan-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationCodeRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationCodeRepository(db *gorm.DB) contract.VerificationCodeRepository {
	return &VerificationCodeRepositoryImpl{db: db}
}

func (r *VerificationCodeRepositoryImpl) Replace(ctx context.Context, code *entity.VerificationCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("account_id = ? AND purpose = ? AND channel = ?", code.AccountId, code.Purpose, string(code.Channel)).
			Delete(&model.VerificationCode{}).Error
		if err != nil {
			return err
		}

		m := mapper.VerificationCodeToModel(code)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		*code = *mapper.VerificationCodeToEntity(m)
		return nil
	})
}

func (r *VerificationCodeRepositoryImpl) Find(ctx context.Context, accountID uuid.UUID, purpose string, channel entity.OTPChannel) (*entity.VerificationCode, error) {
	var m model.VerificationCode
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND purpose = ? AND channel = ?", accountID, purpose, string(channel)).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapper.VerificationCodeToEntity(&m), nil
}

func (r *VerificationCodeRepositoryImpl) DeleteForAccount(ctx context.Context, accountID uuid.UUID, purpose string) error {
	return r.db.WithContext(ctx).
		Where("account_id = ? AND purpose = ?", accountID, purpose).
		Delete(&model.VerificationCode{}).Error
}
