package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/repository"
)

type ComplaintService struct {
	complaints *repository.ComplaintRepository
	customers  CustomerStore
}

func NewComplaintService(complaints *repository.ComplaintRepository, customers CustomerStore) *ComplaintService {
	return &ComplaintService{complaints: complaints, customers: customers}
}

type SubmitComplaintInput struct {
	CustomerName  string
	CustomerEmail string
	ContractID    *uuid.UUID
	Subject       string
	Body          string
}

func (s *ComplaintService) Submit(ctx context.Context, input SubmitComplaintInput) (*model.Complaint, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, fmt.Errorf("%w: subject and body are required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	customer, err := s.customers.GetOrCreateByEmail(ctx, model.Customer{
		FullName: input.CustomerName,
		Email:    input.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}

	return s.complaints.Create(ctx, model.Complaint{
		CustomerID: customer.ID,
		ContractID: input.ContractID,
		Subject:    input.Subject,
		Body:       input.Body,
	})
}

func (s *ComplaintService) List(ctx context.Context, status *model.ComplaintStatus, principal model.Principal) ([]model.Complaint, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	return s.complaints.List(ctx, status)
}

func (s *ComplaintService) SetStatus(ctx context.Context, id uuid.UUID, status model.ComplaintStatus, resolution *string, principal model.Principal) error {
	if principal.IsCustomer() {
		return ErrPermissionDenied
	}
	if status == model.ComplaintStatusResolved && (resolution == nil || strings.TrimSpace(*resolution) == "") {
		return fmt.Errorf("%w: resolution text is required to resolve", ErrInvalidInput)
	}
	err := s.complaints.SetStatus(ctx, id, status, resolution)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
