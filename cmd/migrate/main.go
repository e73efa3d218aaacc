package main

import (
	"log"

	"autovitrine-be/internal/config"
	"autovitrine-be/internal/model"
	"autovitrine-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// gen_random_uuid() needs pgcrypto on Postgres < 13.
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		log.Fatalf("Failed to ensure pgcrypto extension: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Car{},
		&model.CarFeature{},
		&model.CarImage{},
		&model.Comment{},
		&model.Review{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
