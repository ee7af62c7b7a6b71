package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type UserSignupRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupResponse echoes the OTPs only when the server is configured to expose them.
type SignupResponse struct {
	UserId   *uuid.UUID `json:"userId,omitempty"`
	LawyerId *uuid.UUID `json:"lawyerId,omitempty"`
	EmailOtp string     `json:"emailOtp,omitempty"`
	PhoneOtp string     `json:"phoneOtp,omitempty"`
}

type VerifyUserOTPRequest struct {
	UserId   uuid.UUID `json:"userId" validate:"required"`
	EmailOtp string    `json:"emailOtp" validate:"required,len=6,numeric"`
	PhoneOtp string    `json:"phoneOtp" validate:"required,len=6,numeric"`
}

type VerifyLawyerOTPRequest struct {
	LawyerId uuid.UUID `json:"lawyerId" validate:"required"`
	EmailOtp string    `json:"emailOtp" validate:"required,len=6,numeric"`
	PhoneOtp string    `json:"phoneOtp" validate:"required,len=6,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UserSummary struct {
	Id           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	IsPremium    bool      `json:"isPremium"`
	ConsentGiven bool      `json:"consentGiven"`
	AdsRemoved   bool      `json:"adsRemoved"`
}

type LawyerSummary struct {
	Id               uuid.UUID `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Specialization   []string  `json:"specialization"`
	BarCouncilNumber string    `json:"barCouncilNumber"`
}

type AuthResponse struct {
	Token  string         `json:"token"`
	User   *UserSummary   `json:"user,omitempty"`
	Lawyer *LawyerSummary `json:"lawyer,omitempty"`
}

// Specializations accepts either a JSON array or a comma separated string.
type Specializations []string

func (s *Specializations) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = cleanList(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = cleanList(strings.Split(joined, ","))
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type LawyerSignupRequest struct {
	FullName          string          `json:"fullName" validate:"required,min=2,max=255"`
	Email             string          `json:"email" validate:"required,email"`
	Phone             string          `json:"phone" validate:"required,min=8,max=20"`
	Password          string          `json:"password" validate:"required,min=6"`
	BarCouncilNumber  string          `json:"barCouncilNumber" validate:"required"`
	AadhaarNumber     string          `json:"aadhaarNumber" validate:"required"`
	Specialization    Specializations `json:"specialization"`
	Experience        int             `json:"experience" validate:"gte=0"`
	CourtJurisdiction string          `json:"courtJurisdiction"`
	Address           string          `json:"address"`
	Bio               string          `json:"bio"`
}
