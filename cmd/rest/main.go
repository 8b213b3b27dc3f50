package main

import (
	"context"
	"log"

	"valetkleen-be/internal/bootstrap"
	"valetkleen-be/internal/config"
	"valetkleen-be/internal/server"
	"valetkleen-be/pkg/database"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	if container.NotificationService != nil {
		go func() {
			log.Println("Background: starting order notification consumer...")
			if err := container.NotificationService.Consume(context.Background()); err != nil {
				log.Printf("Background consumer error: %v", err)
			}
		}()
	}

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
