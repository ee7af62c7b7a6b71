package contract

import (
	"context"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ad, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, ad *entity.Ad) error
	AddImpressions(ctx context.Context, ids []uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)
	// UpdateStatus leaves completed payments untouched and reports whether the
	// row changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paidAt *time.Time) (bool, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
