package database

import (
	"fmt"

	"github.com/richieai/onboarding-api/internal/advisor"
	"github.com/richieai/onboarding-api/internal/client"
	"github.com/richieai/onboarding-api/internal/config"
	"github.com/richieai/onboarding-api/internal/invitation"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres connection and migrates the schema.
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&advisor.Advisor{},
		&client.Client{},
		&invitation.Invitation{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
