package contract

import (
	"context"

	"samvidhan-be/internal/entity"

	"github.com/google/uuid"
)

type VerificationCodeRepository interface {
	// Replace drops any pending code for the same account, purpose and channel
	// before storing the new one.
	Replace(ctx context.Context, code *entity.VerificationCode) error
	Find(ctx context.Context, accountID uuid.UUID, purpose string, channel entity.OTPChannel) (*entity.VerificationCode, error)
	DeleteForAccount(ctx context.Context, accountID uuid.UUID, purpose string) error
}
