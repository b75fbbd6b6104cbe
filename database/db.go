package database

import (
	"log"
	"os"

	"ajanda-server/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	path := os.Getenv("AJANDA_DB")
	if path == "" {
		path = "ajanda.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.JournalEntry{},
		&models.JournalSentiment{},
		&models.Goal{},
		&models.Habit{},
		&models.HabitCompletion{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected successfully")
}

func GetDB() *gorm.DB {
	return DB
}
