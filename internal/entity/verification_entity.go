package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountTypeUser   AccountType = "user"
	AccountTypeLawyer AccountType = "lawyer"
)

type OTPChannel string

const (
	OTPChannelEmail OTPChannel = "email"
	OTPChannelPhone OTPChannel = "phone"
)

type VerificationCode struct {
	Id          uuid.UUID
	AccountId   uuid.UUID
	AccountType AccountType
	Purpose     string
	Channel     OTPChannel
	Code        string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
