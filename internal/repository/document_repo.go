package repository

import (
	"context"

	"traveldesk-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentListFilter narrows a document listing.
type DocumentListFilter struct {
	Kind   string // invoice, quote or empty for all
	Status string // DRAFT, SENT, PAID, ACCEPTED, REJECTED or empty for all
	Page   int
	Limit  int
}

type DocumentRepository interface {
	Save(ctx context.Context, doc *model.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	List(ctx context.Context, filter DocumentListFilter) ([]model.Document, int64, error)
	FindByKindAndStatus(ctx context.Context, kind, status string) ([]model.Document, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
	ReplaceItems(ctx context.Context, docID uuid.UUID, items []model.LineItem) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Save writes the document header: insert if the id is unseen, replace
// otherwise. Line items are replaced separately via ReplaceItems so stale rows
// never survive an edit.
func (r *documentRepository) Save(ctx context.Context, doc *model.Document) error {
	return GetDB(ctx, r.db).Omit("Items").Save(doc).Error
}

// ReplaceItems swaps the full ordered item set of a document.
func (r *documentRepository) ReplaceItems(ctx context.Context, docID uuid.UUID, items []model.LineItem) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("document_id = ?", docID).Delete(&model.LineItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

// Delete removes the document and, via the FK constraint, its items.
// Unrecoverable; deleting a missing id is a no-op.
func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Document{}).Error
}

func (r *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	err := GetDB(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) List(ctx context.Context, filter DocumentListFilter) ([]model.Document, int64, error) {
	var docs []model.Document
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Document{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").Offset(offset).Limit(filter.Limit).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

func (r *documentRepository) FindByKindAndStatus(ctx context.Context, kind, status string) ([]model.Document, error) {
	var docs []model.Document
	err := GetDB(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("kind = ? AND status = ?", kind, status).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Document{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *documentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Document{}).Count(&count).Error
	return count, err
}
