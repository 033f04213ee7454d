package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

// PricingSource serves tariff snapshots and accepts admin replacements.
type PricingSource interface {
	Load(ctx context.Context) (*model.PricingConfig, error)
	Save(ctx context.Context, cfg model.PricingConfig) error
}

type RequestStore interface {
	Create(ctx context.Context, req model.MoveRequest) (*model.MoveRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.MoveRequest, error)
	List(ctx context.Context, status *model.RequestStatus) ([]model.MoveRequest, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.MoveRequest, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to model.RequestStatus) error
}

type ContractStore interface {
	Create(ctx context.Context, contract model.Contract) (*model.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	List(ctx context.Context, status *model.ContractStatus, from, to *time.Time) ([]model.Contract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ContractStatus, rejectionReason *string) (*model.Contract, error)
}

type CustomerStore interface {
	GetOrCreateByEmail(ctx context.Context, customer model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

// Notifier delivers customer emails after contract transitions. Delivery is
// best effort; callers log failures and move on.
type Notifier interface {
	ContractIssued(ctx context.Context, payload model.ContractIssuedNotification) error
	ContractRejected(ctx context.Context, payload model.ContractRejectedNotification) error
}
