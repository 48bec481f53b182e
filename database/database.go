package database

import (
	"log"

	"cohesion-academy/config"
	"cohesion-academy/internal/domain/articles"
	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/events"
	"cohesion-academy/internal/domain/hidden"
	"cohesion-academy/internal/domain/sitecontent"
	"cohesion-academy/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for uuid defaults on primary keys
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&users.User{},
		&users.PasswordResetToken{},

		&courses.Course{},
		&courses.Unit{},
		&courses.Favorite{},

		&articles.Article{},
		&events.Event{},
		&hidden.HiddenInstructor{},
		&sitecontent.Setting{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}
}
