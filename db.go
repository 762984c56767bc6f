package main

import (
	"log"
	"os"

	"tradeshot/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. The review server requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Permission errors are logged and ignored; the batch processor
	// migrates the same table on its side.
	if err := db.AutoMigrate(&models.Shot{}); err != nil {
		log.Printf("migration warning (shots): %v", err)
	}
}
