package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/pkg/events"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const premiumPeriod = 365 * 24 * time.Hour

// SnapClient is the part of the Midtrans Snap client used here.
type SnapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type PaymentOptions struct {
	ServerKey      string
	PremiumPrice   int64
	RemoveAdsPrice int64
	Currency       string
	FinishURL      string
}

type IPaymentService interface {
	Purchase(ctx context.Context, userID uuid.UUID, paymentType entity.PaymentType) (*dto.PaymentResponse, error)
	HandleNotification(ctx context.Context, n *dto.MidtransNotification) error
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	snap       SnapClient
	publisher  events.Publisher
	logger     logger.ILogger
	opts       PaymentOptions
	now        func() time.Time
}

// NewSnapClient returns nil when no server key is configured; payments then
// complete immediately.
func NewSnapClient(serverKey, environment string) SnapClient {
	if serverKey == "" {
		return nil
	}
	env := midtrans.Sandbox
	if environment == "production" {
		env = midtrans.Production
	}
	var c snap.Client
	c.New(serverKey, env)
	return &c
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, snapClient SnapClient, publisher events.Publisher, log logger.ILogger, opts PaymentOptions) IPaymentService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if opts.Currency == "" {
		opts.Currency = "INR"
	}
	return &paymentService{
		uowFactory: uowFactory,
		snap:       snapClient,
		publisher:  publisher,
		logger:     log,
		opts:       opts,
		now:        time.Now,
	}
}

func (s *paymentService) price(t entity.PaymentType) (int64, string, error) {
	switch t {
	case entity.PaymentTypePremium:
		return s.opts.PremiumPrice, "SamvidhanAI Premium (1 year)", nil
	case entity.PaymentTypeRemoveAds:
		return s.opts.RemoveAdsPrice, "SamvidhanAI Ad removal", nil
	}
	return 0, "", newError(ErrValidation, "Unknown payment type")
}

func (s *paymentService) Purchase(ctx context.Context, userID uuid.UUID, paymentType entity.PaymentType) (*dto.PaymentResponse, error) {
	amount, itemName, err := s.price(paymentType)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}

	payment := &entity.Payment{
		Id:          uuid.New(),
		UserId:      user.Id,
		Amount:      amount,
		Currency:    s.opts.Currency,
		PaymentType: paymentType,
	}

	if s.snap == nil {
		return s.completeImmediately(ctx, uow, user, payment)
	}

	payment.Status = entity.PaymentStatusPending
	payment.TransactionId = payment.Id.String()

	snapResp, midErr := s.snap.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payment.TransactionId,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    string(paymentType),
				Price: amount,
				Qty:   1,
				Name:  itemName,
			},
		},
		Callbacks: &snap.Callbacks{
			Finish: s.opts.FinishURL,
		},
	})
	if midErr != nil {
		s.logger.Error("PAYMENT", "Midtrans transaction failed", map[string]interface{}{"user_id": user.Id.String(), "error": midErr.GetMessage()})
		return nil, fmt.Errorf("midtrans error: %s", midErr.GetMessage())
	}
	payment.RedirectURL = snapResp.RedirectURL

	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("PAYMENT", "Checkout created", map[string]interface{}{"payment_id": payment.Id.String(), "type": string(paymentType)})
	return s.toResponse(payment, user), nil
}

// completeImmediately records a paid payment and grants the entitlement at once.
func (s *paymentService) completeImmediately(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, payment *entity.Payment) (*dto.PaymentResponse, error) {
	now := s.now()
	payment.Status = entity.PaymentStatusCompleted
	payment.TransactionId = fmt.Sprintf("TXN%d", now.UnixMilli())
	payment.PaidAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.grant(ctx, uow, user, payment.PaymentType, now); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishCompleted(ctx, payment)
	return s.toResponse(payment, user), nil
}

// grant applies the entitlement and mirrors it on user. Premium extends from the
// current expiry when it is still in the future.
func (s *paymentService) grant(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, t entity.PaymentType, now time.Time) error {
	switch t {
	case entity.PaymentTypePremium:
		start := now
		if user.HasPremium(now) && user.PremiumExpiresAt != nil {
			start = *user.PremiumExpiresAt
		}
		until := start.Add(premiumPeriod)
		if err := uow.UserRepository().GrantPremium(ctx, user.Id, until); err != nil {
			return err
		}
		user.IsPremium = true
		user.PremiumExpiresAt = &until
	case entity.PaymentTypeRemoveAds:
		if err := uow.UserRepository().RemoveAds(ctx, user.Id); err != nil {
			return err
		}
		user.AdsRemoved = true
	}
	return nil
}

func (s *paymentService) publishCompleted(ctx context.Context, payment *entity.Payment) {
	evt := events.New(events.PaymentCompleted, map[string]interface{}{
		"recipient_id":   payment.UserId.String(),
		"recipient_role": RoleUser,
		"payment_id":     payment.Id.String(),
		"payment_type":   string(payment.PaymentType),
		"amount":         payment.Amount,
		"currency":       payment.Currency,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("PAYMENT", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}
}

func (s *paymentService) toResponse(p *entity.Payment, u *entity.User) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		PaymentId:     p.Id,
		TransactionId: p.TransactionId,
		Type:          string(p.PaymentType),
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		RedirectURL:   p.RedirectURL,
		PaidAt:        p.PaidAt,
		IsPremium:     u.HasPremium(s.now()),
		AdsRemoved:    u.AdsRemoved,
	}
}

// Signature computes the Midtrans notification signature:
// sha512(order_id + status_code + gross_amount + server_key), hex encoded.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func (s *paymentService) HandleNotification(ctx context.Context, n *dto.MidtransNotification) error {
	if s.opts.ServerKey == "" {
		s.logger.Warn("PAYMENT", "Webhook received but MIDTRANS_SERVER_KEY is not configured", nil)
		return ErrConfigurationMissing
	}

	expected := Signature(n.OrderId, n.StatusCode, n.GrossAmount, s.opts.ServerKey)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		s.logger.Warn("PAYMENT", "Webhook signature mismatch", map[string]interface{}{"order_id": n.OrderId})
		return newError(ErrInvalidSignature, "Invalid signature")
	}

	var status entity.PaymentStatus
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "challenge" {
			return nil
		}
		status = entity.PaymentStatusCompleted
	case "settlement":
		status = entity.PaymentStatusCompleted
	case "deny", "cancel", "expire", "failure":
		status = entity.PaymentStatusFailed
	default:
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	payment, err := uow.PaymentRepository().FindOne(ctx, specification.Filter("transaction_id", n.OrderId))
	if err != nil {
		return err
	}
	if payment == nil {
		return newError(ErrNotFound, "Payment not found")
	}
	// completed payments are final; replays must not extend premium again
	if payment.Status == entity.PaymentStatusCompleted || payment.Status == status {
		return nil
	}

	now := s.now()
	var paidAt *time.Time
	if status == entity.PaymentStatusCompleted {
		paidAt = &now
	}
	updated, err := uow.PaymentRepository().UpdateStatus(ctx, payment.Id, status, paidAt)
	if err != nil {
		return err
	}
	// a concurrent notification for the same order got there first
	if !updated {
		return nil
	}

	if status == entity.PaymentStatusCompleted {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payment.UserId})
		if err != nil {
			return err
		}
		if user != nil {
			if err := s.grant(ctx, uow, user, payment.PaymentType, now); err != nil {
				return err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("PAYMENT", "Payment status updated", map[string]interface{}{"payment_id": payment.Id.String(), "status": string(status)})
	if status == entity.PaymentStatusCompleted {
		payment.Status = status
		s.publishCompleted(ctx, payment)
	}
	return nil
}
