package service

import (
	"context"
	"fmt"

	"traveldesk-backend/internal/model"
	"traveldesk-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardResponse is the landing-page summary: revenue from paid invoices,
// open workload counts and the per-status breakdown for the chart.
type DashboardResponse struct {
	TotalRevenue    string           `json:"total_revenue"`
	PendingInvoices int64            `json:"pending_invoices"`
	AcceptedQuotes  int64            `json:"accepted_quotes"`
	TotalDocuments  int64            `json:"total_documents"`
	StatusCounts    map[string]int64 `json:"status_counts"`
}

type StatisticsService interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}

type statisticsService struct {
	docRepo repository.DocumentRepository
}

func NewStatisticsService(docRepo repository.DocumentRepository) StatisticsService {
	return &statisticsService{docRepo: docRepo}
}

// GetDashboard aggregates document metrics. Revenue sums the line items of
// PAID invoices; totals stay exact and are formatted once here for display.
func (s *statisticsService) GetDashboard(ctx context.Context) (DashboardResponse, error) {
	paid, err := s.docRepo.FindByKindAndStatus(ctx, model.KindInvoice, model.StatusPaid)
	if err != nil {
		return DashboardResponse{}, fmt.Errorf("failed to fetch paid invoices: %w", err)
	}
	revenue := decimal.Zero
	for i := range paid {
		revenue = revenue.Add(paid[i].Totals().Subtotal)
	}

	pendingDocs, err := s.docRepo.FindByKindAndStatus(ctx, model.KindInvoice, model.StatusSent)
	if err != nil {
		return DashboardResponse{}, fmt.Errorf("failed to count pending invoices: %w", err)
	}

	acceptedDocs, err := s.docRepo.FindByKindAndStatus(ctx, model.KindQuote, model.StatusAccepted)
	if err != nil {
		return DashboardResponse{}, fmt.Errorf("failed to count accepted quotes: %w", err)
	}

	total, err := s.docRepo.Count(ctx)
	if err != nil {
		return DashboardResponse{}, fmt.Errorf("failed to count documents: %w", err)
	}

	statusCounts := make(map[string]int64, 5)
	for _, status := range []string{model.StatusDraft, model.StatusSent, model.StatusPaid, model.StatusAccepted, model.StatusRejected} {
		count, err := s.docRepo.CountByStatus(ctx, status)
		if err != nil {
			return DashboardResponse{}, fmt.Errorf("failed to count %s documents: %w", status, err)
		}
		statusCounts[status] = count
	}

	return DashboardResponse{
		TotalRevenue:    revenue.StringFixed(2),
		PendingInvoices: int64(len(pendingDocs)),
		AcceptedQuotes:  int64(len(acceptedDocs)),
		TotalDocuments:  total,
		StatusCounts:    statusCounts,
	}, nil
}
