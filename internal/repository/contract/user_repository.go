package contract

import (
	"context"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	MarkVerified(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	RequestDeletion(ctx context.Context, id uuid.UUID, at time.Time) error
	GrantPremium(ctx context.Context, id uuid.UUID, until time.Time) error
	RemoveAds(ctx context.Context, id uuid.UUID) error
}
