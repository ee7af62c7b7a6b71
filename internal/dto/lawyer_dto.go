package dto

import (
	"time"

	"github.com/google/uuid"
)

type LawyerProfileResponse struct {
	Id                uuid.UUID  `json:"id"`
	FullName          string     `json:"fullName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	BarCouncilNumber  string     `json:"barCouncilNumber"`
	Specialization    []string   `json:"specialization"`
	Experience        int        `json:"experience"`
	CourtJurisdiction string     `json:"courtJurisdiction"`
	Address           string     `json:"address"`
	Bio               string     `json:"bio"`
	Rating            float64    `json:"rating"`
	ConsultationFee   int        `json:"consultationFee"`
	Available         bool       `json:"available"`
	IsVerified        bool       `json:"isVerified"`
	IsApproved        bool       `json:"isApproved"`
	DeletionRequested bool       `json:"deletionRequested"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// UpdateLawyerProfileRequest lists the only fields a lawyer may change on their own profile.
type UpdateLawyerProfileRequest struct {
	FullName          *string          `json:"fullName" validate:"omitempty,min=2,max=255"`
	Specialization    *Specializations `json:"specialization"`
	Experience        *int             `json:"experience" validate:"omitempty,gte=0"`
	CourtJurisdiction *string          `json:"courtJurisdiction"`
	Address           *string          `json:"address"`
	Bio               *string          `json:"bio" validate:"omitempty,max=5000"`
	ConsultationFee   *int             `json:"consultationFee" validate:"omitempty,gte=0"`
	Available         *bool            `json:"available"`
}

type LawyerReplyRequest struct {
	UserId  uuid.UUID `json:"userId" validate:"required"`
	Message string    `json:"message" validate:"required,max=5000"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	SenderId  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConversationResponse struct {
	Id            uuid.UUID         `json:"id"`
	UserId        uuid.UUID         `json:"userId"`
	LawyerId      uuid.UUID         `json:"lawyerId"`
	LastMessageAt time.Time         `json:"lastMessageAt"`
	Messages      []MessageResponse `json:"messages"`
}
