package render

import (
	"strings"
	"testing"

	"traveldesk-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testSettings() model.AppSettings {
	s := model.DefaultSettings()
	s.LayoutTemplate = model.TemplateClassic
	return s
}

func testDocument() *model.Document {
	doc := &model.Document{
		ID:        uuid.New(),
		Kind:      model.KindInvoice,
		Number:    "INV-0042",
		IssueDate: "2026-03-01",
		DueDate:   "2026-03-15",
		Status:    model.StatusDraft,
		TaxRate:   dec("10"),
		Discount:  dec("20"),
	}
	doc.Items = []model.LineItem{
		{ID: uuid.New(), DocumentID: doc.ID, Position: 0, Description: "City tour", Quantity: 2, Price: dec("100")},
		{ID: uuid.New(), DocumentID: doc.ID, Position: 1, Description: "Airport transfer", Quantity: 1, Price: dec("50")},
	}
	return doc
}

func renderOrFail(t *testing.T, in Input) string {
	t.Helper()
	html, err := Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return html
}

func TestParseMode(t *testing.T) {
	if ParseMode("final") != ModeFinal {
		t.Error(`ParseMode("final") != ModeFinal`)
	}
	for _, s := range []string{"", "interactive", "FINAL", "garbage"} {
		if ParseMode(s) != ModeInteractive {
			t.Errorf("ParseMode(%q) != ModeInteractive", s)
		}
	}
}

func TestRenderTotalsFormatting(t *testing.T) {
	html := renderOrFail(t, Input{Document: testDocument(), Settings: testSettings(), Mode: ModeFinal})

	for _, want := range []string{"$250.00", "Tax (10%)", "$25.00", "-$20.00", "$255.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderTaxLineOnlyWhenPositive(t *testing.T) {
	doc := testDocument()
	doc.TaxRate = decimal.Zero
	html := renderOrFail(t, Input{Document: doc, Settings: testSettings(), Mode: ModeFinal})

	if strings.Contains(html, "Tax (") {
		t.Error("tax line rendered with zero tax rate")
	}
	if !strings.Contains(html, "Subtotal") {
		t.Error("subtotal line missing")
	}
}

func TestRenderDiscountLineOnlyWhenPositive(t *testing.T) {
	doc := testDocument()
	doc.Discount = decimal.Zero
	html := renderOrFail(t, Input{Document: doc, Settings: testSettings(), Mode: ModeFinal})

	if strings.Contains(html, "Discount") {
		t.Error("discount line rendered with zero discount")
	}
}

func TestRenderLayoutSelection(t *testing.T) {
	for _, tt := range []struct {
		layout string
		marker string
	}{
		{model.TemplateClassic, "layout-classic"},
		{model.TemplateModern, "layout-modern"},
		{model.TemplateBold, "layout-bold"},
		// Unknown layout names fall back to classic.
		{"brutalist", "layout-classic"},
		{"", "layout-classic"},
	} {
		settings := testSettings()
		settings.LayoutTemplate = tt.layout
		html := renderOrFail(t, Input{Document: testDocument(), Settings: settings, Mode: ModeFinal})
		if !strings.Contains(html, tt.marker) {
			t.Errorf("layout %q: output missing marker %q", tt.layout, tt.marker)
		}
	}
}

func TestRenderLayoutsShareContent(t *testing.T) {
	doc := testDocument()
	wants := []string{"City tour", "Airport transfer", "$255.00", "INV-0042"}

	for _, layout := range []string{model.TemplateClassic, model.TemplateModern, model.TemplateBold} {
		settings := testSettings()
		settings.LayoutTemplate = layout
		html := renderOrFail(t, Input{Document: doc, Settings: settings, Mode: ModeFinal})

		for _, want := range wants {
			if !strings.Contains(html, want) {
				t.Errorf("layout %q: output missing %q", layout, want)
			}
		}
		// Items appear in stored order in every layout.
		if strings.Index(html, "City tour") > strings.Index(html, "Airport transfer") {
			t.Errorf("layout %q: items out of order", layout)
		}
	}
}

func TestRenderInteractiveMode(t *testing.T) {
	html := renderOrFail(t, Input{Document: testDocument(), Settings: testSettings(), Mode: ModeInteractive, AssistAvailable: true})

	for _, want := range []string{"<textarea", "<input", "AI Enhance", "+ Add Line Item", "remove-item"} {
		if !strings.Contains(html, want) {
			t.Errorf("interactive output missing %q", want)
		}
	}
}

func TestRenderInteractiveModeAssistUnavailable(t *testing.T) {
	html := renderOrFail(t, Input{Document: testDocument(), Settings: testSettings(), Mode: ModeInteractive, AssistAvailable: false})

	if strings.Contains(html, "AI Enhance") {
		t.Error("AI Enhance affordance rendered while assist is unavailable")
	}
	if !strings.Contains(html, "<textarea") {
		t.Error("interactive output missing edit controls")
	}
}

func TestRenderFinalModeIsStatic(t *testing.T) {
	html := renderOrFail(t, Input{Document: testDocument(), Settings: testSettings(), Mode: ModeFinal, AssistAvailable: true})

	for _, forbidden := range []string{"<textarea", "<input", "<button", "AI Enhance"} {
		if strings.Contains(html, forbidden) {
			t.Errorf("final output contains %q", forbidden)
		}
	}
}

func TestRenderUnknownPaperSizeFails(t *testing.T) {
	settings := testSettings()
	settings.PaperSize = "A3"
	if _, err := Render(Input{Document: testDocument(), Settings: settings}); err == nil {
		t.Fatal("Render succeeded with unknown paper size")
	}
}

func TestRenderQuoteLabels(t *testing.T) {
	doc := testDocument()
	doc.Kind = model.KindQuote
	doc.Number = "QT-0007"
	html := renderOrFail(t, Input{Document: doc, Settings: testSettings(), Mode: ModeFinal})

	if !strings.Contains(html, "QUOTE") {
		t.Error("quote heading missing")
	}
	if !strings.Contains(html, "Valid Until") {
		t.Error("quote due-date label missing")
	}
	// Payment details are invoice-only.
	if strings.Contains(html, "Payment Details") {
		t.Error("payment details rendered on a quote")
	}
}

func TestRenderNotesFallBackToTerms(t *testing.T) {
	doc := testDocument()
	doc.Notes = ""
	settings := testSettings()
	settings.TermsAndConditions = "Payment is due within 14 days."
	html := renderOrFail(t, Input{Document: doc, Settings: settings, Mode: ModeFinal})

	if !strings.Contains(html, "Payment is due within 14 days.") {
		t.Error("terms fallback missing when notes are empty")
	}

	doc.Notes = "Custom note for this booking"
	html = renderOrFail(t, Input{Document: doc, Settings: settings, Mode: ModeFinal})
	if !strings.Contains(html, "Custom note for this booking") {
		t.Error("document notes missing")
	}
}

func TestPaperDimensions(t *testing.T) {
	tests := []struct {
		size          string
		width, height int
	}{
		{model.PaperA4, 210, 297},
		{model.PaperA5, 148, 210},
		{model.PaperB4, 250, 353},
		{model.PaperB5, 176, 250},
		{model.PaperLetter, 216, 279},
	}
	for _, tt := range tests {
		dims, err := PaperDimensions(tt.size)
		if err != nil {
			t.Errorf("PaperDimensions(%s): %v", tt.size, err)
			continue
		}
		if dims.Width != tt.width || dims.Height != tt.height {
			t.Errorf("PaperDimensions(%s) = %dx%d, want %dx%d", tt.size, dims.Width, dims.Height, tt.width, tt.height)
		}
	}

	if _, err := PaperDimensions("TABLOID"); err == nil {
		t.Error("PaperDimensions(TABLOID) succeeded, want error")
	}
}
