package service

import (
	"strings"
	"testing"
	"time"

	"traveldesk-backend/internal/model"
)

func TestNewDraftInvoice(t *testing.T) {
	settings := model.DefaultSettings()
	draft := NewDraft(model.KindInvoice, settings)

	if draft.Kind != model.KindInvoice {
		t.Errorf("Kind = %q, want invoice", draft.Kind)
	}
	if !strings.HasPrefix(draft.Number, "INV-") || len(draft.Number) != 8 {
		t.Errorf("Number = %q, want INV-NNNN", draft.Number)
	}
	if draft.Status != model.StatusDraft {
		t.Errorf("Status = %q, want DRAFT", draft.Status)
	}
	if draft.PaymentMethod != "Bank Transfer" {
		t.Errorf("PaymentMethod = %q, want Bank Transfer", draft.PaymentMethod)
	}
	if !draft.TaxRate.Equal(settings.DefaultTaxRate) {
		t.Errorf("TaxRate = %s, want %s", draft.TaxRate, settings.DefaultTaxRate)
	}
	if len(draft.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(draft.Items))
	}

	issue, err := time.Parse("2006-01-02", draft.IssueDate)
	if err != nil {
		t.Fatalf("IssueDate %q: %v", draft.IssueDate, err)
	}
	due, err := time.Parse("2006-01-02", draft.DueDate)
	if err != nil {
		t.Fatalf("DueDate %q: %v", draft.DueDate, err)
	}
	if got := due.Sub(issue); got != 14*24*time.Hour {
		t.Errorf("due window = %v, want 14 days", got)
	}
}

func TestNewDraftQuote(t *testing.T) {
	draft := NewDraft(model.KindQuote, model.DefaultSettings())

	if draft.Kind != model.KindQuote {
		t.Errorf("Kind = %q, want quote", draft.Kind)
	}
	if !strings.HasPrefix(draft.Number, "QT-") {
		t.Errorf("Number = %q, want QT- prefix", draft.Number)
	}
}

func TestNewDraftInvalidKindDefaultsToInvoice(t *testing.T) {
	for _, kind := range []string{"", "receipt", "INVOICE"} {
		draft := NewDraft(kind, model.DefaultSettings())
		if draft.Kind != model.KindInvoice {
			t.Errorf("NewDraft(%q).Kind = %q, want invoice", kind, draft.Kind)
		}
	}
}
