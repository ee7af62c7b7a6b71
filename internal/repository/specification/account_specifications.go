package specification

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone = ?", s.Phone)
}

// ByEmailOrPhone matches either contact, used for duplicate checks at signup.
type ByEmailOrPhone struct {
	Email string
	Phone string
}

func (s ByEmailOrPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?) OR phone = ?", s.Email, s.Phone)
}

type ByBarCouncilNumber struct {
	Number string
}

func (s ByBarCouncilNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("bar_council_number = ?", s.Number)
}

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type Verified struct{}

func (Verified) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_verified = ?", true)
}

type ApprovedLawyers struct{}

func (ApprovedLawyers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_verified = ? AND is_approved = ?", true, true)
}

// PendingLawyers are verified but still awaiting admin approval.
type PendingLawyers struct{}

func (PendingLawyers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_verified = ? AND is_approved = ?", true, false)
}

type DeletionRequested struct{}

func (DeletionRequested) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deletion_requested = ?", true)
}

// NameOrEmailLike is a case-insensitive search over full_name and email.
type NameOrEmailLike struct {
	Query string
}

func (s NameOrEmailLike) Apply(db *gorm.DB) *gorm.DB {
	if s.Query == "" {
		return db
	}
	pattern := "%" + s.Query + "%"
	return db.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
}

type WithSpecialization struct {
	Specialization string
}

func (s WithSpecialization) Apply(db *gorm.DB) *gorm.DB {
	if s.Specialization == "" {
		return db
	}
	needle, _ := json.Marshal([]string{s.Specialization})
	return db.Where("specializations @> ?::jsonb", string(needle))
}

type ActiveAds struct{}

func (ActiveAds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
