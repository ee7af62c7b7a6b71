package main

import (
	"log"

	"samvidhan-be/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedAdmin creates the default admin account unless the username exists.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		log.Println("Info: Default admin credentials not set, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "username"}}, DoNothing: true}).
		Create(&model.Admin{Username: username, PasswordHash: string(hash)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Seeded default admin %q", username)
	}
	return nil
}

// SeedAds inserts the sample advertisers on an empty ads table.
func SeedAds(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Ad{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ads := []model.Ad{
		{
			Title:       "Draft legal documents in minutes",
			Description: "Affidavits, rent agreements and notices prepared by verified advocates.",
			ImageURL:    "https://placehold.co/600x200?text=LegalDocs+India",
			Link:        "https://example.com/legaldocs",
			Advertiser:  "LegalDocs India",
			IsActive:    true,
		},
		{
			Title:       "Property disputes resolved",
			Description: "Title verification, registration and tenancy matters across India.",
			ImageURL:    "https://placehold.co/600x200?text=PropertyLaw+India",
			Link:        "https://example.com/propertylaw",
			Advertiser:  "PropertyLaw India",
			IsActive:    true,
		},
		{
			Title:       "Family law consultations",
			Description: "Divorce, custody and maintenance guidance from experienced family lawyers.",
			ImageURL:    "https://placehold.co/600x200?text=FamilyLaw+Experts",
			Link:        "https://example.com/familylaw",
			Advertiser:  "FamilyLaw Experts",
			IsActive:    true,
		},
	}
	return db.Create(&ads).Error
}

// SeedNotificationTypes maps domain events to notification templates.
func SeedNotificationTypes(db *gorm.DB) error {
	web := datatypes.JSON([]byte(`["web"]`))
	types := []model.NotificationType{
		{
			Code:        "USER_REGISTERED",
			DisplayName: "Welcome to SamvidhanAI",
			Template:    "Welcome, {full_name}! Ask any question about your legal rights.",
			TargetType:  "SELF",
			Priority:    "LOW",
			Channels:    web,
			IsActive:    true,
		},
		{
			Code:        "LAWYER_REGISTERED",
			DisplayName: "New Lawyer Registration",
			Template:    "{full_name} (Bar Council {bar_council_number}) is awaiting approval.",
			TargetType:  "ADMIN",
			Priority:    "MEDIUM",
			Channels:    web,
			IsActive:    true,
		},
		{
			Code:        "LAWYER_APPROVED",
			DisplayName: "Account Approved",
			Template:    "Congratulations {full_name}, your lawyer account has been approved.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			Channels:    web,
			IsActive:    true,
		},
		{
			Code:        "DELETION_REQUESTED",
			DisplayName: "Account Deletion Request",
			Template:    "{full_name} ({account_type}) requested account deletion.",
			TargetType:  "ADMIN",
			Priority:    "MEDIUM",
			Channels:    web,
			IsActive:    true,
		},
		{
			Code:        "PAYMENT_COMPLETED",
			DisplayName: "Payment Received",
			Template:    "Your {payment_type} payment of {amount} {currency} was successful.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			Channels:    web,
			IsActive:    true,
		},
		{
			Code:        "MESSAGE_RECEIVED",
			DisplayName: "New Message",
			Template:    "You have a new message from a {sender_role}.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			Channels:    web,
			IsActive:    true,
		},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "template", "target_type", "priority", "channels", "is_active"}),
	}).Create(&types).Error
}
