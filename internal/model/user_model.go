package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName            string    `gorm:"type:varchar(255);not null"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone               string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	EmailVerified       bool      `gorm:"default:false"`
	PhoneVerified       bool      `gorm:"default:false"`
	IsVerified          bool      `gorm:"default:false;index"`
	IsPremium           bool      `gorm:"default:false"`
	PremiumExpiresAt    *time.Time
	AdsRemoved          bool   `gorm:"default:false"`
	ProblemDescription  string `gorm:"type:text"`
	Language            string `gorm:"type:varchar(10);default:'en'"`
	ConsentGiven        bool   `gorm:"default:false"`
	ConsentAt           *time.Time
	DeletionRequested   bool `gorm:"default:false;index"`
	DeletionRequestedAt *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
