package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/repository"
)

// In-memory stores mimicking the repository contracts, including the
// compare-and-set semantics of status updates.

type fakePricingSource struct {
	mu  sync.Mutex
	cfg model.PricingConfig
}

func newFakePricingSource() *fakePricingSource {
	return &fakePricingSource{cfg: model.DefaultPricingConfig()}
}

func (f *fakePricingSource) Load(context.Context) (*model.PricingConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg := f.cfg
	return &cfg, nil
}

func (f *fakePricingSource) Save(_ context.Context, cfg model.PricingConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = cfg
	return nil
}

type fakeRequestStore struct {
	mu       sync.Mutex
	requests map[uuid.UUID]model.MoveRequest
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: make(map[uuid.UUID]model.MoveRequest)}
}

func (f *fakeRequestStore) Create(_ context.Context, req model.MoveRequest) (*model.MoveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = uuid.New()
	req.Status = model.RequestStatusPending
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return &req, nil
}

func (f *fakeRequestStore) GetByID(_ context.Context, id uuid.UUID) (*model.MoveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (f *fakeRequestStore) List(_ context.Context, status *model.RequestStatus) ([]model.MoveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.MoveRequest
	for _, req := range f.requests {
		if status == nil || req.Status == *status {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeRequestStore) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.MoveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.MoveRequest
	for _, req := range f.requests {
		if req.CustomerID == customerID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeRequestStore) SetStatus(_ context.Context, id uuid.UUID, from, to model.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok || req.Status != from {
		return repository.ErrStaleStatus
	}
	req.Status = to
	f.requests[id] = req
	return nil
}

// seed inserts a request in a given status and returns it.
func (f *fakeRequestStore) seed(req model.MoveRequest, status model.RequestStatus) model.MoveRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.Status = status
	f.requests[req.ID] = req
	return req
}

type fakeContractStore struct {
	mu        sync.Mutex
	contracts map[uuid.UUID]model.Contract
}

func newFakeContractStore() *fakeContractStore {
	return &fakeContractStore{contracts: make(map[uuid.UUID]model.Contract)}
}

func (f *fakeContractStore) Create(_ context.Context, contract model.Contract) (*model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract.ID = uuid.New()
	contract.Status = model.ContractStatusDraft
	contract.CreatedAt = time.Now()
	f.contracts[contract.ID] = contract
	return &contract, nil
}

func (f *fakeContractStore) GetByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract, ok := f.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (f *fakeContractStore) List(_ context.Context, status *model.ContractStatus, from, to *time.Time) ([]model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Contract
	for _, contract := range f.contracts {
		if status != nil && contract.Status != *status {
			continue
		}
		if from != nil && contract.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !contract.CreatedAt.Before(*to) {
			continue
		}
		result = append(result, contract)
	}
	return result, nil
}

func (f *fakeContractStore) UpdateStatus(
	_ context.Context,
	id uuid.UUID,
	from, to model.ContractStatus,
	rejectionReason *string,
) (*model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract, ok := f.contracts[id]
	if !ok || contract.Status != from {
		return nil, repository.ErrStaleStatus
	}
	contract.Status = to
	if rejectionReason != nil {
		contract.RejectionReason = rejectionReason
	}
	now := time.Now()
	switch to {
	case model.ContractStatusIssued:
		contract.IssuedAt = &now
	case model.ContractStatusAccepted:
		contract.AcceptedAt = &now
	case model.ContractStatusRejected:
		contract.RejectedAt = &now
	case model.ContractStatusCancelled:
		contract.CancelledAt = &now
	}
	f.contracts[id] = contract
	return &contract, nil
}

type fakeCustomerStore struct {
	mu        sync.Mutex
	customers map[string]model.Customer
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{customers: make(map[string]model.Customer)}
}

func (f *fakeCustomerStore) GetOrCreateByEmail(_ context.Context, customer model.Customer) (*model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.customers[customer.Email]; ok {
		return &existing, nil
	}
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	f.customers[customer.Email] = customer
	return &customer, nil
}

func (f *fakeCustomerStore) GetByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, customer := range f.customers {
		if customer.ID == id {
			return &customer, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerStore) List(context.Context) ([]model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Customer
	for _, customer := range f.customers {
		result = append(result, customer)
	}
	return result, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	issued   []model.ContractIssuedNotification
	rejected []model.ContractRejectedNotification
	fail     error
}

func (f *fakeNotifier) ContractIssued(_ context.Context, payload model.ContractIssuedNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.issued = append(f.issued, payload)
	return nil
}

func (f *fakeNotifier) ContractRejected(_ context.Context, payload model.ContractRejectedNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.rejected = append(f.rejected, payload)
	return nil
}
