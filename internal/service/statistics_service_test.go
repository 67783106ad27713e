package service

import (
	"context"
	"testing"

	"traveldesk-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func storeDocument(t *testing.T, repo *fakeDocumentRepo, kind, status string, itemPrices ...string) {
	t.Helper()
	ctx := context.Background()
	doc := &model.Document{ID: uuid.New(), Kind: kind, Status: status, Number: "T-0001"}
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	items := make([]model.LineItem, 0, len(itemPrices))
	for i, p := range itemPrices {
		price, err := decimal.NewFromString(p)
		if err != nil {
			t.Fatalf("price %q: %v", p, err)
		}
		items = append(items, model.LineItem{ID: uuid.New(), DocumentID: doc.ID, Position: i, Quantity: 1, Price: price})
	}
	if err := repo.ReplaceItems(ctx, doc.ID, items); err != nil {
		t.Fatalf("ReplaceItems: %v", err)
	}
}

func TestGetDashboard(t *testing.T) {
	repo := newFakeDocumentRepo()
	storeDocument(t, repo, model.KindInvoice, model.StatusPaid, "100", "50.50")
	storeDocument(t, repo, model.KindInvoice, model.StatusPaid, "200")
	storeDocument(t, repo, model.KindInvoice, model.StatusSent, "999")
	storeDocument(t, repo, model.KindQuote, model.StatusAccepted, "80")
	storeDocument(t, repo, model.KindQuote, model.StatusPaid, "40") // odd but allowed; not invoice revenue
	storeDocument(t, repo, model.KindInvoice, model.StatusDraft)

	svc := NewStatisticsService(repo)
	dash, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if dash.TotalRevenue != "350.50" {
		t.Errorf("TotalRevenue = %s, want 350.50", dash.TotalRevenue)
	}
	if dash.PendingInvoices != 1 {
		t.Errorf("PendingInvoices = %d, want 1", dash.PendingInvoices)
	}
	if dash.AcceptedQuotes != 1 {
		t.Errorf("AcceptedQuotes = %d, want 1", dash.AcceptedQuotes)
	}
	if dash.TotalDocuments != 6 {
		t.Errorf("TotalDocuments = %d, want 6", dash.TotalDocuments)
	}
	if dash.StatusCounts[model.StatusPaid] != 3 {
		t.Errorf("StatusCounts[PAID] = %d, want 3", dash.StatusCounts[model.StatusPaid])
	}
	if dash.StatusCounts[model.StatusRejected] != 0 {
		t.Errorf("StatusCounts[REJECTED] = %d, want 0", dash.StatusCounts[model.StatusRejected])
	}
}

func TestGetDashboardEmpty(t *testing.T) {
	svc := NewStatisticsService(newFakeDocumentRepo())

	dash, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if dash.TotalRevenue != "0.00" {
		t.Errorf("TotalRevenue = %s, want 0.00", dash.TotalRevenue)
	}
	if dash.TotalDocuments != 0 {
		t.Errorf("TotalDocuments = %d, want 0", dash.TotalDocuments)
	}
}
