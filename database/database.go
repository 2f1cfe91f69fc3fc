package database

import (
	"fmt"
	"log"
	"os"

	"shambala-backend/internal/domain/content"
	"shambala-backend/internal/domain/forms"
	"shambala-backend/internal/domain/media"
	"shambala-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// editors
		&users.User{},

		// media
		&media.Image{},

		// content
		&content.MainHero{},
		&content.NewsSlider{},
		&content.BlogSlider{},
		&content.Page{},
		&content.PageBlock{},

		// forms
		&forms.BasicFormSubmission{},
		&forms.PaymentFormSubmission{},
		&forms.PaymentsPage{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
