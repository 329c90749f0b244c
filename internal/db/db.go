package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/globalreach-edu/consultancy-api/internal/config"
	"github.com/globalreach-edu/consultancy-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Class{},
		&models.Program{},
		&models.Appointment{},
		&models.Enquiry{},
		&models.Setting{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaults(db)

	return db
}

// seedDefaults makes a fresh database usable: one admin account and the
// site settings the public pages read. Idempotent.
func seedDefaults(db *gorm.DB) {
	var admins int64
	db.Model(&models.Admin{}).Count(&admins)
	if admins == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash default admin password: %v", err)
		}
		db.Create(&models.Admin{
			Email:        "admin@education.com",
			PasswordHash: string(hashed),
			Name:         "Admin User",
			Role:         "admin",
		})
		log.Println("default admin created: admin@education.com")
	}

	var settings int64
	db.Model(&models.Setting{}).Count(&settings)
	if settings == 0 {
		defaults := []models.Setting{
			{Key: "site_name", Value: "Education Platform"},
			{Key: "contact_email", Value: "info@education.com"},
			{Key: "contact_phone", Value: "+1-234-567-8900"},
			{Key: "contact_address", Value: "123 Education Street, City, Country"},
			{Key: "whatsapp_number", Value: "+1234567890"},
			{Key: "facebook_url", Value: "https://facebook.com/education"},
			{Key: "twitter_url", Value: "https://twitter.com/education"},
			{Key: "instagram_url", Value: "https://instagram.com/education"},
			{Key: "linkedin_url", Value: "https://linkedin.com/company/education"},
			{Key: "office_hours", Value: "Mon-Fri: 9:00 AM - 5:00 PM"},
		}
		db.Create(&defaults)
		log.Println("default settings initialized")
	}
}
