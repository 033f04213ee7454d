package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/pricing"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/repository"
)

// RequestService handles move-request intake and the admin approve/decline
// decision that gates contract creation.
type RequestService struct {
	requests  RequestStore
	customers CustomerStore
	pricing   PricingSource
}

func NewRequestService(requests RequestStore, customers CustomerStore, pricing PricingSource) *RequestService {
	return &RequestService{requests: requests, customers: customers, pricing: pricing}
}

func (s *RequestService) Submit(ctx context.Context, req model.MoveRequest) (*model.MoveRequest, error) {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer name and email are required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PickupAddress) == "" || strings.TrimSpace(req.DropoffAddress) == "" {
		return nil, fmt.Errorf("%w: pickup and dropoff addresses are required", ErrInvalidInput)
	}

	// Run the calculator once at intake so an unknown vehicle class or a
	// negative value is caught while the customer can still fix the form.
	cfg, err := s.pricing.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := pricing.ComputeQuote(req, *cfg); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetOrCreateByEmail(ctx, model.Customer{
		FullName: req.CustomerName,
		Email:    req.CustomerEmail,
		Phone:    req.CustomerPhone,
	})
	if err != nil {
		return nil, err
	}
	req.CustomerID = customer.ID

	return s.requests.Create(ctx, req)
}

func (s *RequestService) Get(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.MoveRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if principal.IsCustomer() && !strings.EqualFold(principal.Email, req.CustomerEmail) {
		return nil, ErrPermissionDenied
	}
	return req, nil
}

func (s *RequestService) List(ctx context.Context, status *model.RequestStatus, principal model.Principal) ([]model.MoveRequest, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	return s.requests.List(ctx, status)
}

func (s *RequestService) Approve(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	return s.decide(ctx, id, model.RequestStatusApproved, principal)
}

func (s *RequestService) Decline(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	return s.decide(ctx, id, model.RequestStatusDeclined, principal)
}

func (s *RequestService) decide(ctx context.Context, id uuid.UUID, to model.RequestStatus, principal model.Principal) error {
	if principal.IsCustomer() {
		return ErrPermissionDenied
	}
	err := s.requests.SetStatus(ctx, id, model.RequestStatusPending, to)
	if errors.Is(err, repository.ErrStaleStatus) {
		return fmt.Errorf("%w: request is not pending", ErrInvalidInput)
	}
	return err
}
