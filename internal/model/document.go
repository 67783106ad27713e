package model

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentKind enum constants
const (
	KindInvoice = "invoice"
	KindQuote   = "quote"
)

// DocStatus enum constants. The conventional path is DRAFT -> SENT -> {PAID |
// ACCEPTED | REJECTED}, but no transition guard exists: any status may be set
// on any document kind, directly, at any time.
const (
	StatusDraft    = "DRAFT"
	StatusSent     = "SENT"
	StatusPaid     = "PAID"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

var (
	ErrItemIndex    = errors.New("line item index out of range")
	ErrUnknownField = errors.New("unknown line item field")
	ErrBadStatus    = errors.New("unknown document status")
)

func IsValidKind(kind string) bool {
	return kind == KindInvoice || kind == KindQuote
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusSent, StatusPaid, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// LineItem is one billable row of a document. Display order equals insertion
// order, tracked by Position.
type LineItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"document_id"`
	Position    int             `gorm:"not null" json:"position"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
}

// CustomerSnapshot is the denormalized customer copy embedded in a document at
// selection time. It is never refreshed from the live customer record.
type CustomerSnapshot struct {
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Email   string `gorm:"type:varchar(255)" json:"email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
	Notes   string `gorm:"type:text" json:"notes"`
}

// Document is an invoice or quotation. Totals are always derived, never stored.
type Document struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Kind   string    `gorm:"type:varchar(10);not null;index" json:"kind"` // invoice, quote
	Number string    `gorm:"type:varchar(50);not null" json:"number"`     // user-editable, not guaranteed unique

	// Dates are ISO "2006-01-02" strings kept verbatim for display.
	// DueDate reads as due-date for invoices and valid-until for quotes.
	IssueDate  string `gorm:"type:varchar(10)" json:"issue_date"`
	DueDate    string `gorm:"type:varchar(10)" json:"due_date"`
	TravelDate string `gorm:"type:varchar(10)" json:"travel_date"`

	Destination   string `gorm:"type:varchar(255)" json:"destination"`
	PaymentMethod string `gorm:"type:varchar(50)" json:"payment_method"`

	CustomerID       *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id"`
	CustomerSnapshot CustomerSnapshot `gorm:"embedded;embeddedPrefix:snapshot_" json:"customer_snapshot"`

	Items []LineItem `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"items"`

	Status   string          `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	Notes    string          `gorm:"type:text" json:"notes"`
	Discount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	TaxRate  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax_rate"` // percentage

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals holds the derived amounts of a document.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

var hundred = decimal.NewFromInt(100)

// Totals recomputes subtotal, tax and total from the line items. It is pure:
// subtotal = sum(price*quantity), taxAmount = subtotal*taxRate/100,
// total = subtotal + taxAmount - discount. The total is not clamped; a
// discount larger than subtotal+tax yields a negative total.
func (d *Document) Totals() Totals {
	subtotal := decimal.Zero
	for _, item := range d.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	taxAmount := subtotal.Mul(d.TaxRate).Div(hundred)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount).Sub(d.Discount),
	}
}

// AddLineItem appends a fresh line item: empty description, quantity 1,
// price 0. There is no upper bound on the item count.
func (d *Document) AddLineItem() *LineItem {
	d.Items = append(d.Items, LineItem{
		ID:         uuid.New(),
		DocumentID: d.ID,
		Position:   len(d.Items),
		Quantity:   1,
		Price:      decimal.Zero,
	})
	return &d.Items[len(d.Items)-1]
}

// UpdateLineItemField sets one field of the item at index from its string
// form. Malformed or negative numeric input degrades to zero instead of
// surfacing a parse error; editing must never block on bad input.
func (d *Document) UpdateLineItemField(index int, field, value string) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndex
	}
	switch field {
	case "description":
		d.Items[index].Description = value
	case "quantity":
		qty, err := strconv.Atoi(value)
		if err != nil || qty < 0 {
			qty = 0
		}
		d.Items[index].Quantity = qty
	case "price":
		price, err := decimal.NewFromString(value)
		if err != nil || price.IsNegative() {
			price = decimal.Zero
		}
		d.Items[index].Price = price
	default:
		return ErrUnknownField
	}
	return nil
}

// RemoveLineItem deletes the item at index. Remaining items shift down and
// keep their relative order; positions are renumbered.
func (d *Document) RemoveLineItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndex
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	for i := range d.Items {
		d.Items[i].Position = i
	}
	return nil
}

// SetCustomerSnapshot stores the customer id and a value copy of the customer
// on the document. Passing nil clears both, which is the behavior for a
// selection that no longer resolves.
func (d *Document) SetCustomerSnapshot(c *Customer) {
	if c == nil {
		d.CustomerID = nil
		d.CustomerSnapshot = CustomerSnapshot{}
		return
	}
	id := c.ID
	d.CustomerID = &id
	d.CustomerSnapshot = CustomerSnapshot{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Notes:   c.Notes,
	}
}

// SetStatus assigns a status after checking it belongs to the enum. Kind is
// deliberately not consulted: PAID is assignable to a quote and ACCEPTED to
// an invoice.
func (d *Document) SetStatus(status string) error {
	if !IsValidStatus(status) {
		return ErrBadStatus
	}
	d.Status = status
	return nil
}

// HasCustomer reports whether a customer snapshot is present.
func (d *Document) HasCustomer() bool {
	return d.CustomerID != nil && d.CustomerSnapshot.Name != ""
}
