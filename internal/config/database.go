package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gonzofleet/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB opens the Postgres connection described by the loaded settings
// and migrates the schema.
func InitDB() {
	if C == nil {
		Load()
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		C.DBHost, C.DBUser, C.DBPassword, C.DBName, C.DBPort, C.DBSSLMode, C.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	DB = db
}

// Migrate applies the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Staff{},
		&models.Driver{},
		&models.Alias{},
		&models.Ledger{},
		&models.Application{},
		&models.ApplicationComment{},
		&models.PaymentRaw{},
		&models.SmsLog{},
	)
}
