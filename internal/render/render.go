// Package render turns a (document, settings) pair into a printable HTML page
// under one of three named layouts. Rendering is a pure projection: the same
// input always produces the same output and the inputs are never mutated.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"traveldesk-backend/internal/model"
)

//go:embed templates/*.html
var templates embed.FS

// Mode selects between the editable preview and the static print rendering.
// The caller chooses; the engine never infers it.
type Mode string

const (
	ModeInteractive Mode = "interactive"
	ModeFinal       Mode = "final"
)

// ParseMode maps a request string to a Mode, defaulting to interactive.
func ParseMode(s string) Mode {
	if s == string(ModeFinal) {
		return ModeFinal
	}
	return ModeInteractive
}

// Input carries everything one render call needs. Settings are passed
// explicitly rather than read from ambient state.
type Input struct {
	Document        *model.Document
	Settings        model.AppSettings
	Mode            Mode
	AssistAvailable bool
}

type itemRow struct {
	Index       int
	Description string
	Quantity    int
	Price       string
	LineTotal   string
}

type layoutData struct {
	KindLabel   string
	IsInvoice   bool
	Number      string
	Status      string
	IssueDate   string
	DueLabel    string
	DueDate     string
	TravelDate  string
	Destination string

	AgencyName    string
	AgencyEmail   string
	AgencyPhone   string
	AgencyAddress string
	LogoURL       template.URL
	PrimaryColor  template.CSS

	PaperWidth  int
	PaperHeight int

	HasCustomer     bool
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string

	Rows         []itemRow
	Subtotal     string
	TaxLabel     string
	TaxAmount    string
	Discount     string
	Total        string
	ShowTax      bool
	ShowDiscount bool

	Notes         string
	BankDetails   string
	PaymentMethod string

	Interactive     bool
	AssistAvailable bool
}

// Render produces the HTML for the document under the layout named by
// Settings.LayoutTemplate. Unrecognized layout names fall back to classic.
// An unrecognized paper size is a configuration error and fails the call.
func Render(in Input) (string, error) {
	paper, err := PaperDimensions(in.Settings.PaperSize)
	if err != nil {
		return "", err
	}

	layout := in.Settings.LayoutTemplate
	switch layout {
	case model.TemplateClassic, model.TemplateModern, model.TemplateBold:
	default:
		layout = model.TemplateClassic
	}

	data := buildLayoutData(in, paper)
	return renderLayout(layout, data)
}

func buildLayoutData(in Input, paper Dimensions) layoutData {
	doc := in.Document
	settings := in.Settings
	totals := doc.Totals()

	rows := make([]itemRow, 0, len(doc.Items))
	for i, item := range doc.Items {
		lineTotal := item.Price.Mul(decimalFromInt(item.Quantity))
		rows = append(rows, itemRow{
			Index:       i,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price.StringFixed(2),
			LineTotal:   lineTotal.StringFixed(2),
		})
	}

	dueLabel := "Valid Until"
	if doc.Kind == model.KindInvoice {
		dueLabel = "Due Date"
	}

	notes := doc.Notes
	if notes == "" {
		notes = settings.TermsAndConditions
	}

	return layoutData{
		KindLabel:   strings.ToUpper(doc.Kind),
		IsInvoice:   doc.Kind == model.KindInvoice,
		Number:      doc.Number,
		Status:      doc.Status,
		IssueDate:   doc.IssueDate,
		DueLabel:    dueLabel,
		DueDate:     doc.DueDate,
		TravelDate:  doc.TravelDate,
		Destination: doc.Destination,

		AgencyName:    settings.AgencyName,
		AgencyEmail:   settings.AgencyEmail,
		AgencyPhone:   settings.AgencyPhone,
		AgencyAddress: settings.AgencyAddress,
		LogoURL:       template.URL(settings.LogoURL),
		PrimaryColor:  template.CSS(settings.PrimaryColor),

		PaperWidth:  paper.Width,
		PaperHeight: paper.Height,

		HasCustomer:     doc.HasCustomer(),
		CustomerName:    doc.CustomerSnapshot.Name,
		CustomerEmail:   doc.CustomerSnapshot.Email,
		CustomerPhone:   doc.CustomerSnapshot.Phone,
		CustomerAddress: doc.CustomerSnapshot.Address,

		Rows:         rows,
		Subtotal:     settings.Currency + totals.Subtotal.StringFixed(2),
		TaxLabel:     fmt.Sprintf("Tax (%s%%)", doc.TaxRate.String()),
		TaxAmount:    settings.Currency + totals.TaxAmount.StringFixed(2),
		Discount:     settings.Currency + doc.Discount.StringFixed(2),
		Total:        settings.Currency + totals.Total.StringFixed(2),
		ShowTax:      doc.TaxRate.IsPositive(),
		ShowDiscount: doc.Discount.IsPositive(),

		Notes:         notes,
		BankDetails:   settings.BankDetails,
		PaymentMethod: doc.PaymentMethod,

		Interactive:     in.Mode == ModeInteractive,
		AssistAvailable: in.AssistAvailable,
	}
}

// renderLayout executes the named layout with the shared partials attached
// under fixed aliases.
func renderLayout(layout string, data layoutData) (string, error) {
	mainFile := "templates/" + layout + ".html"
	partials := map[string]string{
		"items_table": "templates/items_table.html",
		"totals":      "templates/totals.html",
		"footer":      "templates/footer.html",
	}

	mainContent, err := templates.ReadFile(mainFile)
	if err != nil {
		return "", fmt.Errorf("reading layout template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(layout).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("parsing layout template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := templates.ReadFile(file)
		if readErr != nil {
			return "", fmt.Errorf("reading partial template %q: %w", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("parsing partial template %q: %w", file, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, layout, data); err != nil {
		return "", fmt.Errorf("executing layout template %q: %w", layout, err)
	}
	return b.String(), nil
}
