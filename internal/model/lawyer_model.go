package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lawyer struct {
	Id                  uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName            string                      `gorm:"type:varchar(255);not null"`
	Email               string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone               string                      `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash        string                      `gorm:"type:varchar(255);not null"`
	BarCouncilNumber    string                      `gorm:"type:varchar(100);uniqueIndex;not null"`
	AadhaarNumber       string                      `gorm:"type:varchar(20);not null"`
	Specializations     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Experience          int                         `gorm:"default:0"`
	CourtJurisdiction   string                      `gorm:"type:varchar(255)"`
	Address             string                      `gorm:"type:text"`
	Bio                 string                      `gorm:"type:text"`
	Rating              float64                     `gorm:"default:0"`
	ConsultationFee     int                         `gorm:"default:0"`
	Available           bool                        `gorm:"default:true"`
	EmailVerified       bool                        `gorm:"default:false"`
	PhoneVerified       bool                        `gorm:"default:false"`
	IsVerified          bool                        `gorm:"default:false;index"`
	IsApproved          bool                        `gorm:"default:false;index"`
	ApprovedAt          *time.Time
	DeletionRequested   bool `gorm:"default:false;index"`
	DeletionRequestedAt *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (Lawyer) TableName() string {
	return "lawyers"
}
