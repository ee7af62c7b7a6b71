package dto

import (
	"time"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	PaymentId     uuid.UUID  `json:"paymentId"`
	TransactionId string     `json:"transactionId"`
	Type          string     `json:"type"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	RedirectURL   string     `json:"redirectUrl,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	IsPremium     bool       `json:"isPremium"`
	AdsRemoved    bool       `json:"adsRemoved"`
}

// MidtransNotification is the subset of the Midtrans HTTP notification we act on.
type MidtransNotification struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type AdResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Link        string    `json:"link"`
	Advertiser  string    `json:"advertiser"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}
