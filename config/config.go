package config

import (
	"fmt"
	"log"
	"os"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	// TranslateError lets the goal service recognize the partial unique
	// index violation as gorm.ErrDuplicatedKey and map it to the
	// conflict error.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Measurement{},
		&models.DailyProgress{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
