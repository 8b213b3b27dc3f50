package main

import (
	"log"

	"valetkleen-be/internal/config"
	"valetkleen-be/internal/model"
	"valetkleen-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	log.Println("Starting GORM migration...")

	if err := db.AutoMigrate(&model.Order{}); err != nil {
		log.Fatalf("Error: Migration failed: %v", err)
	}

	log.Println("Migration completed successfully.")
}
