package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"traveldesk-backend/internal/model"
	"traveldesk-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Logo uploads are embedded as data URLs, so keep them small.
const maxLogoBytes = 500 * 1024

// --- DTOs ---

type SaveSettingsRequest struct {
	AgencyName         string `json:"agency_name" binding:"required"`
	AgencyEmail        string `json:"agency_email"`
	AgencyPhone        string `json:"agency_phone"`
	AgencyAddress      string `json:"agency_address"`
	LogoURL            string `json:"logo_url"`
	PrimaryColor       string `json:"primary_color"`
	Currency           string `json:"currency"`
	DefaultTaxRate     string `json:"default_tax_rate"`
	PaperSize          string `json:"paper_size" binding:"required,oneof=A4 A5 B4 B5 LETTER"`
	LayoutTemplate     string `json:"layout_template"`
	TermsAndConditions string `json:"terms_and_conditions"`
	BankDetails        string `json:"bank_details"`
}

// --- Interface ---

type SettingsService interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Save(ctx context.Context, req SaveSettingsRequest) (*model.AppSettings, error)
	UploadLogo(ctx context.Context, contentType string, data []byte) (*model.AppSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// --- Implementation ---

func (s *settingsService) Get(ctx context.Context) (*model.AppSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Save replaces the configuration in place. The layout template is stored as
// given; rendering falls back to classic for values it does not recognize.
func (s *settingsService) Save(ctx context.Context, req SaveSettingsRequest) (*model.AppSettings, error) {
	taxRate, err := decimal.NewFromString(req.DefaultTaxRate)
	if err != nil || taxRate.IsNegative() {
		taxRate = decimal.Zero
	}

	settings := model.AppSettings{
		AgencyName:         req.AgencyName,
		AgencyEmail:        req.AgencyEmail,
		AgencyPhone:        req.AgencyPhone,
		AgencyAddress:      req.AgencyAddress,
		LogoURL:            req.LogoURL,
		PrimaryColor:       req.PrimaryColor,
		Currency:           req.Currency,
		DefaultTaxRate:     taxRate,
		PaperSize:          req.PaperSize,
		LayoutTemplate:     req.LayoutTemplate,
		TermsAndConditions: req.TermsAndConditions,
		BankDetails:        req.BankDetails,
	}

	if err := s.repo.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}

// UploadLogo converts an uploaded image to a data URL and stores it on the
// settings row.
func (s *settingsService) UploadLogo(ctx context.Context, contentType string, data []byte) (*model.AppSettings, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty logo upload")
	}
	if len(data) > maxLogoBytes {
		return nil, fmt.Errorf("logo too large: %d bytes (max %d)", len(data), maxLogoBytes)
	}
	if contentType == "" {
		contentType = "image/png"
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.LogoURL = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
