package main

import (
	"context"
	"log"
	"os"
	"time"

	"autovitrine-be/internal/config"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/repository/specification"
	"autovitrine-be/internal/repository/unitofwork"
	"autovitrine-be/pkg/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial super admin account from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	email := getRequiredEnv("SEED_ADMIN_EMAIL")
	password := getRequiredEnv("SEED_ADMIN_PASSWORD")

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

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		log.Fatalf("Failed to look up existing account: %v", err)
	}
	if existing != nil {
		log.Printf("Super admin %s already exists, nothing to do", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &entity.User{
		Id:           uuid.New(),
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.UserRoleSuperAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	log.Printf("✅ Super admin %s created", email)
}

func getRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s is required", key)
	}
	return value
}
