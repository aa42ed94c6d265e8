package db

import (
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init() {
	dbPath := os.Getenv("GALLERY_DB")
	if dbPath == "" {
		// Ensure data directory exists
		if err := os.MkdirAll("data", 0755); err != nil {
			log.Fatal("Failed to create data directory:", err)
		}
		dbPath = filepath.Join("data", "gallery.db")
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Connected to SQLite database at", dbPath)
}
