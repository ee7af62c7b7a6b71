package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                  uuid.UUID
	FullName            string
	Email               string
	Phone               string
	PasswordHash        string
	EmailVerified       bool
	PhoneVerified       bool
	IsVerified          bool
	IsPremium           bool
	PremiumExpiresAt    *time.Time
	AdsRemoved          bool
	ProblemDescription  string
	Language            string
	ConsentGiven        bool
	ConsentAt           *time.Time
	DeletionRequested   bool
	DeletionRequestedAt *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasPremium reports whether the premium entitlement is active at now.
func (u *User) HasPremium(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	return u.PremiumExpiresAt == nil || u.PremiumExpiresAt.After(now)
}
