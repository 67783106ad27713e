package repository

import (
	"context"
	"errors"

	"traveldesk-backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Save(ctx context.Context, settings *model.AppSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the single settings row, falling back to defaults when the
// table is still empty.
func (r *settingsRepository) Get(ctx context.Context) (*model.AppSettings, error) {
	var settings model.AppSettings
	err := GetDB(ctx, r.db).Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := model.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save upserts the single settings row in place.
func (r *settingsRepository) Save(ctx context.Context, settings *model.AppSettings) error {
	db := GetDB(ctx, r.db)

	var existing model.AppSettings
	err := db.Order("id ASC").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	return db.Save(settings).Error
}
