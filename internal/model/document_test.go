package model

import (
	"testing"

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

func sampleDocument() *Document {
	doc := &Document{
		ID:      uuid.New(),
		Kind:    KindInvoice,
		Status:  StatusDraft,
		TaxRate: dec("10"),
	}
	doc.Items = []LineItem{
		{ID: uuid.New(), DocumentID: doc.ID, Position: 0, Description: "City tour", Quantity: 2, Price: dec("100")},
		{ID: uuid.New(), DocumentID: doc.ID, Position: 1, Description: "Airport transfer", Quantity: 1, Price: dec("50")},
	}
	return doc
}

func TestTotals(t *testing.T) {
	doc := sampleDocument()
	doc.Discount = dec("20")

	totals := doc.Totals()
	if got := totals.Subtotal; !got.Equal(dec("250")) {
		t.Errorf("Subtotal = %s, want 250", got)
	}
	if got := totals.TaxAmount; !got.Equal(dec("25")) {
		t.Errorf("TaxAmount = %s, want 25", got)
	}
	if got := totals.Total; !got.Equal(dec("255")) {
		t.Errorf("Total = %s, want 255", got)
	}
}

func TestTotalsEmptyDocument(t *testing.T) {
	doc := &Document{TaxRate: dec("10"), Discount: dec("5")}
	totals := doc.Totals()
	if !totals.Subtotal.IsZero() || !totals.TaxAmount.IsZero() {
		t.Errorf("empty document: subtotal=%s tax=%s, want both zero", totals.Subtotal, totals.TaxAmount)
	}
	if !totals.Total.Equal(dec("-5")) {
		t.Errorf("Total = %s, want -5", totals.Total)
	}
}

func TestTotalsNegativeNotClamped(t *testing.T) {
	doc := sampleDocument()
	doc.Discount = dec("1000")
	if got := doc.Totals().Total; !got.Equal(dec("-725")) {
		t.Errorf("Total = %s, want -725", got)
	}
}

func TestTotalsExactDecimals(t *testing.T) {
	doc := &Document{TaxRate: dec("7.5")}
	doc.Items = []LineItem{
		{Quantity: 3, Price: dec("19.99")},
	}
	totals := doc.Totals()
	if !totals.Subtotal.Equal(dec("59.97")) {
		t.Errorf("Subtotal = %s, want 59.97", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(dec("4.49775")) {
		t.Errorf("TaxAmount = %s, want 4.49775 exactly", totals.TaxAmount)
	}
}

func TestAddLineItemDefaults(t *testing.T) {
	doc := sampleDocument()
	item := doc.AddLineItem()

	if item.Description != "" {
		t.Errorf("Description = %q, want empty", item.Description)
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", item.Quantity)
	}
	if !item.Price.IsZero() {
		t.Errorf("Price = %s, want 0", item.Price)
	}
	if item.Position != 2 {
		t.Errorf("Position = %d, want 2", item.Position)
	}
	if item.DocumentID != doc.ID {
		t.Errorf("DocumentID = %s, want %s", item.DocumentID, doc.ID)
	}
}

func TestUpdateLineItemField(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantErr   error
		wantQty   int
		wantPrice string
	}{
		{name: "description", field: "description", value: "Hotel stay"},
		{name: "quantity", field: "quantity", value: "5", wantQty: 5},
		{name: "quantity malformed", field: "quantity", value: "abc", wantQty: 0},
		{name: "quantity negative", field: "quantity", value: "-3", wantQty: 0},
		{name: "price", field: "price", value: "12.50", wantPrice: "12.5"},
		{name: "price malformed", field: "price", value: "oops", wantPrice: "0"},
		{name: "price negative", field: "price", value: "-1", wantPrice: "0"},
		{name: "unknown field", field: "total", value: "1", wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			err := doc.UpdateLineItemField(0, tt.field, tt.value)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			switch tt.field {
			case "description":
				if doc.Items[0].Description != tt.value {
					t.Errorf("Description = %q, want %q", doc.Items[0].Description, tt.value)
				}
			case "quantity":
				if doc.Items[0].Quantity != tt.wantQty {
					t.Errorf("Quantity = %d, want %d", doc.Items[0].Quantity, tt.wantQty)
				}
			case "price":
				if !doc.Items[0].Price.Equal(dec(tt.wantPrice)) {
					t.Errorf("Price = %s, want %s", doc.Items[0].Price, tt.wantPrice)
				}
			}
		})
	}
}

func TestUpdateLineItemFieldIndexOutOfRange(t *testing.T) {
	doc := sampleDocument()
	if err := doc.UpdateLineItemField(-1, "description", "x"); err != ErrItemIndex {
		t.Errorf("index -1: err = %v, want ErrItemIndex", err)
	}
	if err := doc.UpdateLineItemField(2, "description", "x"); err != ErrItemIndex {
		t.Errorf("index 2: err = %v, want ErrItemIndex", err)
	}
}

func TestRemoveLineItemKeepsOrder(t *testing.T) {
	doc := sampleDocument()
	doc.Items = append(doc.Items, LineItem{ID: uuid.New(), DocumentID: doc.ID, Position: 2, Description: "Guide fee", Quantity: 1, Price: dec("30")})

	if err := doc.RemoveLineItem(1); err != nil {
		t.Fatalf("RemoveLineItem: %v", err)
	}

	if len(doc.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(doc.Items))
	}
	if doc.Items[0].Description != "City tour" || doc.Items[1].Description != "Guide fee" {
		t.Errorf("items = [%q, %q], want [City tour, Guide fee]", doc.Items[0].Description, doc.Items[1].Description)
	}
	for i, item := range doc.Items {
		if item.Position != i {
			t.Errorf("Items[%d].Position = %d, want %d", i, item.Position, i)
		}
	}
}

func TestRemoveLineItemOutOfRange(t *testing.T) {
	doc := sampleDocument()
	if err := doc.RemoveLineItem(5); err != ErrItemIndex {
		t.Errorf("err = %v, want ErrItemIndex", err)
	}
}

func TestSetCustomerSnapshotIsolation(t *testing.T) {
	customer := &Customer{
		ID:    uuid.New(),
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "555-0100",
	}

	doc := sampleDocument()
	doc.SetCustomerSnapshot(customer)

	if !doc.HasCustomer() {
		t.Fatal("HasCustomer() = false after selection")
	}
	if *doc.CustomerID != customer.ID {
		t.Errorf("CustomerID = %s, want %s", doc.CustomerID, customer.ID)
	}

	// Mutating the live record must not touch the stored copy.
	customer.Name = "Renamed"
	customer.Email = "new@example.com"
	if doc.CustomerSnapshot.Name != "John Doe" {
		t.Errorf("snapshot Name = %q, want John Doe", doc.CustomerSnapshot.Name)
	}
	if doc.CustomerSnapshot.Email != "john@example.com" {
		t.Errorf("snapshot Email = %q, want john@example.com", doc.CustomerSnapshot.Email)
	}
}

func TestSetCustomerSnapshotNilClears(t *testing.T) {
	doc := sampleDocument()
	doc.SetCustomerSnapshot(&Customer{ID: uuid.New(), Name: "Acme Corp"})
	doc.SetCustomerSnapshot(nil)

	if doc.CustomerID != nil {
		t.Errorf("CustomerID = %v, want nil", doc.CustomerID)
	}
	if doc.CustomerSnapshot != (CustomerSnapshot{}) {
		t.Errorf("snapshot = %+v, want zero value", doc.CustomerSnapshot)
	}
}

func TestSetStatus(t *testing.T) {
	doc := sampleDocument()

	for _, status := range []string{StatusDraft, StatusSent, StatusPaid, StatusAccepted, StatusRejected} {
		if err := doc.SetStatus(status); err != nil {
			t.Errorf("SetStatus(%s): %v", status, err)
		}
	}

	// No kind guard: a quote can be PAID and an invoice ACCEPTED.
	quote := &Document{Kind: KindQuote}
	if err := quote.SetStatus(StatusPaid); err != nil {
		t.Errorf("quote SetStatus(PAID): %v", err)
	}
	invoice := &Document{Kind: KindInvoice}
	if err := invoice.SetStatus(StatusAccepted); err != nil {
		t.Errorf("invoice SetStatus(ACCEPTED): %v", err)
	}

	if err := doc.SetStatus("ARCHIVED"); err != ErrBadStatus {
		t.Errorf("SetStatus(ARCHIVED): err = %v, want ErrBadStatus", err)
	}
}
