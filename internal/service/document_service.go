package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"traveldesk-backend/internal/assist"
	"traveldesk-backend/internal/model"
	"traveldesk-backend/internal/render"
	"traveldesk-backend/internal/repository"
	"traveldesk-backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type SaveLineItemRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
}

type SaveDocumentRequest struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind" binding:"required,oneof=invoice quote"`
	Number        string                `json:"number"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	TravelDate    string                `json:"travel_date"`
	Destination   string                `json:"destination"`
	PaymentMethod string                `json:"payment_method"`
	CustomerID    string                `json:"customer_id"`
	Status        string                `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID ACCEPTED REJECTED"`
	Notes         string                `json:"notes"`
	Discount      string                `json:"discount"`
	TaxRate       string                `json:"tax_rate"`
	Items         []SaveLineItemRequest `json:"items"`
}

type UpdateItemRequest struct {
	Field string `json:"field" binding:"required,oneof=description quantity price"`
	Value string `json:"value"`
}

type DocumentFilter struct {
	Kind   string
	Status string
	Page   int
	Limit  int
}

// TotalsResponse carries exact derived amounts; display rounding happens in
// the rendering engine, not here.
type TotalsResponse struct {
	Subtotal  string `json:"subtotal"`
	TaxAmount string `json:"tax_amount"`
	Total     string `json:"total"`
}

type DocumentResponse struct {
	Document model.Document `json:"document"`
	Totals   TotalsResponse `json:"totals"`
}

// --- Interface ---

type DocumentService interface {
	Open(ctx context.Context, id, kind string) (DocumentResponse, error)
	Save(ctx context.Context, req SaveDocumentRequest) (DocumentResponse, error)
	List(ctx context.Context, filter DocumentFilter) ([]DocumentResponse, int64, error)
	Delete(ctx context.Context, id string) error
	AddItem(ctx context.Context, id string) (DocumentResponse, error)
	UpdateItem(ctx context.Context, id string, index int, req UpdateItemRequest) (DocumentResponse, error)
	RemoveItem(ctx context.Context, id string, index int) (DocumentResponse, error)
	EnhanceItem(ctx context.Context, id string, index int) (DocumentResponse, error)
	SetCustomer(ctx context.Context, id, customerID string) (DocumentResponse, error)
	SetStatus(ctx context.Context, id, status string) (DocumentResponse, error)
	Render(ctx context.Context, id, mode, templateOverride string) (string, error)
	DraftEmail(ctx context.Context, id string) (string, error)
}

type documentService struct {
	docRepo      repository.DocumentRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	txManager    repository.TransactionManager
	assist       *assist.Client
	hub          *websocket.Hub
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	txManager repository.TransactionManager,
	assistClient *assist.Client,
	hub *websocket.Hub,
) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		assist:       assistClient,
		hub:          hub,
	}
}

// --- Implementation ---

// Open loads a document for editing. A missing, empty or malformed id falls
// back to a freshly initialized draft rather than failing.
func (s *documentService) Open(ctx context.Context, id, kind string) (DocumentResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if id != "" {
		docID, parseErr := uuid.Parse(id)
		if parseErr == nil {
			doc, findErr := s.docRepo.FindByID(ctx, docID)
			if findErr == nil {
				return toDocumentResponse(doc), nil
			}
			if !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return DocumentResponse{}, fmt.Errorf("failed to load document: %w", findErr)
			}
		}
	}

	draft := NewDraft(kind, *settings)
	return toDocumentResponse(&draft), nil
}

// Save persists the full document: insert if the id is unseen, replace
// otherwise. The customer snapshot is refreshed only when the selection
// changed; re-saving with the same customer keeps the stored copy untouched.
func (s *documentService) Save(ctx context.Context, req SaveDocumentRequest) (DocumentResponse, error) {
	doc := model.Document{
		ID:            uuid.New(),
		Kind:          req.Kind,
		Number:        req.Number,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		TravelDate:    req.TravelDate,
		Destination:   req.Destination,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Status:        req.Status,
		Discount:      coerceDecimal(req.Discount),
		TaxRate:       coerceDecimal(req.TaxRate),
	}
	if doc.Status == "" {
		doc.Status = model.StatusDraft
	}

	var existing *model.Document
	if req.ID != "" {
		docID, err := uuid.Parse(req.ID)
		if err != nil {
			return DocumentResponse{}, fmt.Errorf("invalid document id: %w", err)
		}
		doc.ID = docID
		found, err := s.docRepo.FindByID(ctx, docID)
		if err == nil {
			existing = found
			doc.CreatedAt = found.CreatedAt
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, fmt.Errorf("failed to load document: %w", err)
		}
	}

	if err := s.applyCustomerSelection(ctx, &doc, existing, req.CustomerID); err != nil {
		return DocumentResponse{}, err
	}

	doc.Items = make([]model.LineItem, 0, len(req.Items))
	for i, item := range req.Items {
		itemID := uuid.New()
		if parsed, err := uuid.Parse(item.ID); err == nil {
			itemID = parsed
		}
		qty, err := strconv.Atoi(item.Quantity)
		if err != nil || qty < 0 {
			qty = 0
		}
		doc.Items = append(doc.Items, model.LineItem{
			ID:          itemID,
			DocumentID:  doc.ID,
			Position:    i,
			Description: item.Description,
			Quantity:    qty,
			Price:       coerceDecimal(item.Price),
		})
	}

	if err := s.persist(ctx, &doc); err != nil {
		return DocumentResponse{}, err
	}

	s.notify("document", "saved", doc.ID)
	return toDocumentResponse(&doc), nil
}

// applyCustomerSelection implements copy-on-select: snapshot when the
// selection is new or changed, keep the stored snapshot otherwise, clear it
// when the id no longer resolves.
func (s *documentService) applyCustomerSelection(ctx context.Context, doc, existing *model.Document, customerID string) error {
	if customerID == "" {
		doc.SetCustomerSnapshot(nil)
		return nil
	}

	parsed, err := uuid.Parse(customerID)
	if err != nil {
		doc.SetCustomerSnapshot(nil)
		return nil
	}

	if existing != nil && existing.CustomerID != nil && *existing.CustomerID == parsed {
		doc.CustomerID = existing.CustomerID
		doc.CustomerSnapshot = existing.CustomerSnapshot
		return nil
	}

	customer, err := s.customerRepo.FindByID(ctx, parsed)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc.SetCustomerSnapshot(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load customer: %w", err)
	}
	doc.SetCustomerSnapshot(customer)
	return nil
}

func (s *documentService) List(ctx context.Context, filter DocumentFilter) ([]DocumentResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	docs, total, err := s.docRepo.List(ctx, repository.DocumentListFilter{
		Kind:   filter.Kind,
		Status: filter.Status,
		Page:   filter.Page,
		Limit:  filter.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch documents: %w", err)
	}

	result := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		result = append(result, toDocumentResponse(&docs[i]))
	}
	return result, total, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	docID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}
	if err := s.docRepo.Delete(ctx, docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	s.notify("document", "deleted", docID)
	return nil
}

func (s *documentService) AddItem(ctx context.Context, id string) (DocumentResponse, error) {
	return s.mutate(ctx, id, func(doc *model.Document) error {
		doc.AddLineItem()
		return nil
	})
}

func (s *documentService) UpdateItem(ctx context.Context, id string, index int, req UpdateItemRequest) (DocumentResponse, error) {
	return s.mutate(ctx, id, func(doc *model.Document) error {
		return doc.UpdateLineItemField(index, req.Field, req.Value)
	})
}

func (s *documentService) RemoveItem(ctx context.Context, id string, index int) (DocumentResponse, error) {
	return s.mutate(ctx, id, func(doc *model.Document) error {
		return doc.RemoveLineItem(index)
	})
}

// EnhanceItem rewrites one item description through the AI collaborator. The
// item is addressed by position; a response landing after a concurrent
// removal applies to whatever item now sits at that index.
func (s *documentService) EnhanceItem(ctx context.Context, id string, index int) (DocumentResponse, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("invalid document id: %w", err)
	}
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("document not found: %w", err)
	}
	if index < 0 || index >= len(doc.Items) {
		return DocumentResponse{}, model.ErrItemIndex
	}
	if doc.Items[index].Description == "" {
		return toDocumentResponse(doc), nil
	}

	enhanced := s.assist.EnhanceText(ctx, doc.Items[index].Description)

	// Reload before applying: the document may have changed while the AI call
	// was in flight, and the response still targets the index.
	doc, err = s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("document not found: %w", err)
	}
	if index >= len(doc.Items) {
		return DocumentResponse{}, model.ErrItemIndex
	}
	doc.Items[index].Description = enhanced

	if err := s.persist(ctx, doc); err != nil {
		return DocumentResponse{}, err
	}
	s.notify("document", "saved", doc.ID)
	return toDocumentResponse(doc), nil
}

// SetCustomer stores the customer id plus a deep snapshot copy on the
// document. An id that does not resolve clears the snapshot silently.
func (s *documentService) SetCustomer(ctx context.Context, id, customerID string) (DocumentResponse, error) {
	return s.mutate(ctx, id, func(doc *model.Document) error {
		if customerID == "" {
			doc.SetCustomerSnapshot(nil)
			return nil
		}
		parsed, err := uuid.Parse(customerID)
		if err != nil {
			doc.SetCustomerSnapshot(nil)
			return nil
		}
		customer, err := s.customerRepo.FindByID(ctx, parsed)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			doc.SetCustomerSnapshot(nil)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load customer: %w", err)
		}
		doc.SetCustomerSnapshot(customer)
		return nil
	})
}

func (s *documentService) SetStatus(ctx context.Context, id, status string) (DocumentResponse, error) {
	return s.mutate(ctx, id, func(doc *model.Document) error {
		return doc.SetStatus(status)
	})
}

// Render produces the HTML view of a document. An unknown id renders a fresh
// draft, mirroring Open.
func (s *documentService) Render(ctx context.Context, id, mode, templateOverride string) (string, error) {
	resp, err := s.Open(ctx, id, "")
	if err != nil {
		return "", err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	if templateOverride != "" {
		settings.LayoutTemplate = templateOverride
	}

	return render.Render(render.Input{
		Document:        &resp.Document,
		Settings:        *settings,
		Mode:            render.ParseMode(mode),
		AssistAvailable: s.assist.IsAvailable(),
	})
}

// DraftEmail asks the AI collaborator for an email body covering the
// document. The fallback strings come from the collaborator itself; the only
// error here is a missing customer selection.
func (s *documentService) DraftEmail(ctx context.Context, id string) (string, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("invalid document id: %w", err)
	}
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return "", fmt.Errorf("document not found: %w", err)
	}
	if doc.CustomerID == nil {
		return "", errors.New("select a customer first")
	}
	customer, err := s.customerRepo.FindByID(ctx, *doc.CustomerID)
	if err != nil {
		return "", fmt.Errorf("customer not found: %w", err)
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	return s.assist.DraftEmail(ctx, doc, customer, *settings), nil
}

// --- Helpers ---

// mutate loads a stored document, applies one structural edit and persists
// the result. The response always carries freshly recomputed totals.
func (s *documentService) mutate(ctx context.Context, id string, fn func(*model.Document) error) (DocumentResponse, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("invalid document id: %w", err)
	}
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("document not found: %w", err)
	}

	if err := fn(doc); err != nil {
		return DocumentResponse{}, err
	}

	if err := s.persist(ctx, doc); err != nil {
		return DocumentResponse{}, err
	}
	s.notify("document", "saved", doc.ID)
	return toDocumentResponse(doc), nil
}

// persist writes the header and replaces the item set in one transaction.
func (s *documentService) persist(ctx context.Context, doc *model.Document) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.docRepo.Save(txCtx, doc); err != nil {
			return err
		}
		return s.docRepo.ReplaceItems(txCtx, doc.ID, doc.Items)
	})
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (s *documentService) notify(entity, action string, id uuid.UUID) {
	if s.hub != nil {
		s.hub.Notify(entity, action, id.String())
	}
}

// coerceDecimal parses a money/rate field, degrading malformed or negative
// input to zero per the editing policy.
func coerceDecimal(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func toDocumentResponse(doc *model.Document) DocumentResponse {
	totals := doc.Totals()
	return DocumentResponse{
		Document: *doc,
		Totals: TotalsResponse{
			Subtotal:  totals.Subtotal.String(),
			TaxAmount: totals.TaxAmount.String(),
			Total:     totals.Total.String(),
		},
	}
}
