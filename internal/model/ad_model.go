package model

import (
	"time"

	"github.com/google/uuid"
)

type Ad struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	Link        string    `gorm:"type:text"`
	Advertiser  string    `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"default:true;index"`
	Impressions int64     `gorm:"default:0"`
	Clicks      int64     `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Ad) TableName() string {
	return "ads"
}
