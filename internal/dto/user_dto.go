package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id                  uuid.UUID  `json:"id"`
	FullName            string     `json:"fullName"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	IsVerified          bool       `json:"isVerified"`
	IsPremium           bool       `json:"isPremium"`
	PremiumExpiry       *time.Time `json:"premiumExpiry,omitempty"`
	AdsRemoved          bool       `json:"adsRemoved"`
	ProblemDescription  string     `json:"problemDescription"`
	Language            string     `json:"language"`
	ConsentGiven        bool       `json:"consentGiven"`
	ConsentDate         *time.Time `json:"consentDate,omitempty"`
	DeletionRequested   bool       `json:"deletionRequested"`
	DeletionRequestDate *time.Time `json:"deletionRequestDate,omitempty"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type UpdateProfileRequest struct {
	FullName           string `json:"fullName" validate:"omitempty,min=2,max=255"`
	ProblemDescription string `json:"problemDescription" validate:"max=5000"`
	Language           string `json:"language" validate:"omitempty,max=10"`
}

type ChangePasswordRequestResponse struct {
	Otp string `json:"otp,omitempty"`
}

type ChangePasswordVerifyRequest struct {
	Otp         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type ChatHistoryItem struct {
	Id        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Mode      string    `json:"mode"`
	IsPremium bool      `json:"isPremium"`
	Citations []string  `json:"citations"`
	Timestamp time.Time `json:"timestamp"`
}
