package config

import (
	"fmt"
	"log"
	"os"

	"qna-board/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "qna_board"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connection established")

	return db
}

// Migrate registers the voter join tables and runs the schema migration.
// Split out from InitDB so tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Question{}, "Voters", &models.QuestionVoter{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Answer{}, "Voters", &models.AnswerVoter{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
