package contract

import (
	"context"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LawyerRepository interface {
	Create(ctx context.Context, lawyer *entity.Lawyer) error
	Update(ctx context.Context, lawyer *entity.Lawyer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	MarkVerified(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID, at time.Time) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	RequestDeletion(ctx context.Context, id uuid.UUID, at time.Time) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
	FindAll(ctx context.Context) ([]*entity.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
