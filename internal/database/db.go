package database

import (
	"traveldesk-backend/internal/logger"
	"traveldesk-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Document{},
		&model.LineItem{},
		&model.AppSettings{},
	)
	if err != nil {
		log := logger.WithComponent("database")
		log.Warn().Err(err).Msg("failed to auto-migrate models")
	}

	return db, nil
}

// Seed populates empty collections with their defaults: agency settings, a few
// sample customers, and the operator account. Existing rows are left alone so
// seeding only ever happens on first use.
func Seed(db *gorm.DB) error {
	log := logger.WithComponent("database")

	var settingsCount int64
	if err := db.Model(&model.AppSettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		settings := model.DefaultSettings()
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
		log.Info().Msg("seeded default settings")
	}

	var customerCount int64
	if err := db.Model(&model.Customer{}).Count(&customerCount).Error; err != nil {
		return err
	}
	if customerCount == 0 {
		customers := []model.Customer{
			{Name: "John Doe", Email: "john@example.com", Phone: "555-0101", Address: "123 Maple St"},
			{Name: "Acme Corp", Email: "billing@acme.com", Phone: "555-0900", Address: "456 Industrial Blvd"},
			{Name: "Jane Smith", Email: "jane.smith@email.com", Phone: "555-0202", Address: "789 Oak Ln"},
		}
		if err := db.Create(&customers).Error; err != nil {
			return err
		}
		log.Info().Int("count", len(customers)).Msg("seeded sample customers")
	}

	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		// Demo gate credential pair: admin / password.
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Create(&model.User{Username: "admin", Password: string(hash)}).Error; err != nil {
			return err
		}
		log.Info().Msg("seeded operator account")
	}

	return nil
}
