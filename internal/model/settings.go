package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaperSize enum constants. The enum is closed; an unrecognized value is a
// configuration error, not a fallback case.
const (
	PaperA4     = "A4"
	PaperA5     = "A5"
	PaperB4     = "B4"
	PaperB5     = "B5"
	PaperLetter = "LETTER"
)

// LayoutTemplate constants. Rendering falls back to classic when the stored
// value is not one of these.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateBold    = "bold"
)

func IsValidPaperSize(size string) bool {
	switch size {
	case PaperA4, PaperA5, PaperB4, PaperB5, PaperLetter:
		return true
	default:
		return false
	}
}

// AppSettings is the single-row agency configuration read on every render and
// mutated only through an explicit save.
type AppSettings struct {
	ID                 uint            `gorm:"primaryKey" json:"-"`
	AgencyName         string          `gorm:"type:varchar(255);not null" json:"agency_name"`
	AgencyEmail        string          `gorm:"type:varchar(255)" json:"agency_email"`
	AgencyPhone        string          `gorm:"type:varchar(50)" json:"agency_phone"`
	AgencyAddress      string          `gorm:"type:text" json:"agency_address"`
	LogoURL            string          `gorm:"type:text" json:"logo_url"` // http URL or data URL from upload
	PrimaryColor       string          `gorm:"type:varchar(20)" json:"primary_color"`
	Currency           string          `gorm:"type:varchar(10)" json:"currency"`
	DefaultTaxRate     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"default_tax_rate"`
	PaperSize          string          `gorm:"type:varchar(10);not null" json:"paper_size"`
	LayoutTemplate     string          `gorm:"type:varchar(20);not null" json:"layout_template"`
	TermsAndConditions string          `gorm:"type:text" json:"terms_and_conditions"`
	BankDetails        string          `gorm:"type:text" json:"bank_details"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// DefaultSettings returns the configuration seeded on first use.
func DefaultSettings() AppSettings {
	return AppSettings{
		AgencyName:         "SkyHigh Travel Agency",
		AgencyEmail:        "contact@skyhightravel.com",
		AgencyPhone:        "+1 (555) 0123-456",
		AgencyAddress:      "123 Cloud Avenue, Traveler City, TC 90210",
		LogoURL:            "https://picsum.photos/200/80",
		PrimaryColor:       "#0284c7",
		Currency:           "$",
		DefaultTaxRate:     decimal.NewFromInt(10),
		PaperSize:          PaperA4,
		LayoutTemplate:     TemplateModern,
		TermsAndConditions: "Payment is due within 14 days. Travel insurance is highly recommended.",
		BankDetails:        "Bank: Global Bank \nAccount: 123456789 \nSort Code: 11-22-33",
	}
}
