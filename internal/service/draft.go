package service

import (
	"fmt"
	"math/rand"
	"time"

	"traveldesk-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewDraft initializes an unsaved document the way the editor expects: a
// generated number, issue date today, a 14-day due window, DRAFT status and
// the agency's default tax rate. Opening a nonexistent document id falls back
// to this instead of failing.
func NewDraft(kind string, settings model.AppSettings) model.Document {
	if !model.IsValidKind(kind) {
		kind = model.KindInvoice
	}
	prefix := "QT"
	if kind == model.KindInvoice {
		prefix = "INV"
	}

	now := time.Now()
	return model.Document{
		ID:            uuid.New(),
		Kind:          kind,
		Number:        fmt.Sprintf("%s-%04d", prefix, rand.Intn(10000)),
		IssueDate:     now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 14).Format("2006-01-02"),
		PaymentMethod: "Bank Transfer",
		Status:        model.StatusDraft,
		TaxRate:       settings.DefaultTaxRate,
		Discount:      decimal.Zero,
		Items:         []model.LineItem{},
	}
}
