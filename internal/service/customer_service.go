package service

import (
	"context"
	"fmt"

	"traveldesk-backend/internal/model"
	"traveldesk-backend/internal/repository"
	"traveldesk-backend/internal/websocket"

	"github.com/google/uuid"
)

// --- DTOs ---

type SaveCustomerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type CustomerFilter struct {
	Search string
	Page   int
	Limit  int
}

// --- Interface ---

type CustomerService interface {
	Save(ctx context.Context, req SaveCustomerRequest) (*model.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int64, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo repository.CustomerRepository
	hub  *websocket.Hub
}

func NewCustomerService(repo repository.CustomerRepository, hub *websocket.Hub) CustomerService {
	return &customerService{repo: repo, hub: hub}
}

// --- Implementation ---

func (s *customerService) Save(ctx context.Context, req SaveCustomerRequest) (*model.Customer, error) {
	customer := model.Customer{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer id: %w", err)
		}
		customer.ID = id
	}

	if err := s.repo.Save(ctx, &customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	if s.hub != nil {
		s.hub.Notify("customer", "saved", customer.ID.String())
	}
	return &customer, nil
}

func (s *customerService) List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	customers, total, err := s.repo.List(ctx, filter.Search, filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, total, nil
}

func (s *customerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	return customer, nil
}

// Delete removes the customer permanently. Documents keep their snapshot
// copies; nothing is rewritten.
func (s *customerService) Delete(ctx context.Context, id string) error {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid customer id: %w", err)
	}
	if err := s.repo.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if s.hub != nil {
		s.hub.Notify("customer", "deleted", customerID.String())
	}
	return nil
}
