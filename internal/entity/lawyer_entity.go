package entity

import (
	"time"

	"github.com/google/uuid"
)

type Lawyer struct {
	Id                  uuid.UUID
	FullName            string
	Email               string
	Phone               string
	PasswordHash        string
	BarCouncilNumber    string
	AadhaarNumber       string
	Specializations     []string
	Experience          int
	CourtJurisdiction   string
	Address             string
	Bio                 string
	Rating              float64
	ConsultationFee     int
	Available           bool
	EmailVerified       bool
	PhoneVerified       bool
	IsVerified          bool
	IsApproved          bool
	ApprovedAt          *time.Time
	DeletionRequested   bool
	DeletionRequestedAt *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Admin struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	LastLogin    *time.Time
	CreatedAt    time.Time
}
