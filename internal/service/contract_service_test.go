package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/contract"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/service"
)

var (
	staffPrincipal    = model.Principal{Email: "staff@g5moving.vn", Role: model.RoleStaff}
	customerPrincipal = model.Principal{Email: "lan.nguyen@example.com", Role: model.RoleCustomer}
)

type contractFixture struct {
	service   *service.ContractService
	contracts *fakeContractStore
	requests  *fakeRequestStore
	pricing   *fakePricingSource
	notifier  *fakeNotifier
}

func newContractFixture() *contractFixture {
	contracts := newFakeContractStore()
	requests := newFakeRequestStore()
	pricing := newFakePricingSource()
	notifier := &fakeNotifier{}
	return &contractFixture{
		service:   service.NewContractService(contracts, requests, pricing, notifier, zerolog.Nop()),
		contracts: contracts,
		requests:  requests,
		pricing:   pricing,
		notifier:  notifier,
	}
}

func approvedRequest() model.MoveRequest {
	return model.MoveRequest{
		CustomerName:   "Lan Nguyen",
		CustomerEmail:  "lan.nguyen@example.com",
		PickupAddress:  "12 Nguyen Trai, Hanoi",
		DropoffAddress: "45 Le Loi, Hanoi",
		DistanceKm:     10,
		DurationMin:    25,
		VehicleClass:   model.VehicleTruck750,
		PackingTier:    model.PackingStandard,
		SpeedTier:      model.SpeedStandard,
		ItemCount:      5,
		ScheduledAt:    time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (f *contractFixture) createDraft(t *testing.T) *model.Contract {
	t.Helper()
	req := f.requests.seed(approvedRequest(), model.RequestStatusApproved)
	created, err := f.service.CreateFromRequest(context.Background(), req.ID, staffPrincipal)
	require.NoError(t, err)
	return created
}

func TestCreateFromRequest(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	created := f.createDraft(t)

	assert.Equal(t, model.ContractStatusDraft, created.Status)
	assert.Equal(t, int64(490000), created.Pricing.Total)
	assert.Equal(t, int64(350000), created.Pricing.BaseFee)
	assert.True(t, created.Pricing.MinimumApplied)
	assert.NotEmpty(t, created.ContractNumber)
	assert.Equal(t, "lan.nguyen@example.com", created.CustomerEmail)
}

func TestCreateFromRequest_RequiresApproval(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	req := f.requests.seed(approvedRequest(), model.RequestStatusPending)

	_, err := f.service.CreateFromRequest(context.Background(), req.ID, staffPrincipal)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCreateFromRequest_CustomerForbidden(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	req := f.requests.seed(approvedRequest(), model.RequestStatusApproved)

	_, err := f.service.CreateFromRequest(context.Background(), req.ID, customerPrincipal)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
}

func TestIssue_SendsNotification(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)

	issued, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusIssued, issued.Status)
	assert.NotNil(t, issued.IssuedAt)

	require.Len(t, f.notifier.issued, 1)
	payload := f.notifier.issued[0]
	assert.Equal(t, "lan.nguyen@example.com", payload.CustomerEmail)
	assert.Equal(t, "Lan Nguyen", payload.CustomerName)
	assert.Equal(t, issued.ID, payload.Contract.ID)
	assert.Equal(t, draft.RequestID, payload.Request.ID)
}

func TestIssue_TwiceFails(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)

	_, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)

	_, err = f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	assert.ErrorIs(t, err, contract.ErrInvalidTransition)
}

func TestIssue_NotificationFailureDoesNotRollBack(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	f.notifier.fail = errors.New("smtp down")
	draft := f.createDraft(t)

	issued, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusIssued, issued.Status)

	stored, err := f.contracts.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusIssued, stored.Status)
}

func TestAcceptLifecycle(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)

	// accept before issue is not a valid step
	_, err := f.service.Accept(context.Background(), draft.ID, customerPrincipal)
	assert.ErrorIs(t, err, contract.ErrInvalidTransition)

	_, err = f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)

	accepted, err := f.service.Accept(context.Background(), draft.ID, customerPrincipal)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusAccepted, accepted.Status)

	// customer withdrawal after acceptance stays possible
	cancelled, err := f.service.Cancel(context.Background(), draft.ID, customerPrincipal)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestAccept_OtherCustomerForbidden(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)
	_, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)

	stranger := model.Principal{Email: "someone.else@example.com", Role: model.RoleCustomer}
	_, err = f.service.Accept(context.Background(), draft.ID, stranger)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
}

func TestReject(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)
	_, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)

	_, err = f.service.Reject(context.Background(), draft.ID, "", customerPrincipal)
	assert.ErrorIs(t, err, contract.ErrMissingReason)

	rejected, err := f.service.Reject(context.Background(), draft.ID, "schedule conflict", customerPrincipal)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "schedule conflict", *rejected.RejectionReason)

	require.Len(t, f.notifier.rejected, 1)
	assert.Equal(t, "schedule conflict", f.notifier.rejected[0].RejectionReason)

	// rejection is terminal
	_, err = f.service.Cancel(context.Background(), draft.ID, customerPrincipal)
	assert.ErrorIs(t, err, contract.ErrInvalidTransition)
}

func TestCancel_FromDraftFails(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)

	_, err := f.service.Cancel(context.Background(), draft.ID, staffPrincipal)
	assert.ErrorIs(t, err, contract.ErrInvalidTransition)
}

func TestPricingSnapshotFrozen(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)

	// an admin doubles every tariff after the contract is created
	cfg := model.DefaultPricingConfig()
	for class := range cfg.PricePerKm {
		cfg.PricePerKm[class] *= 2
		cfg.MinTripFee[class] *= 2
	}
	require.NoError(t, f.pricing.Save(context.Background(), cfg))

	issued, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(490000), issued.Pricing.Total)
	assert.Equal(t, draft.Pricing, issued.Pricing)
}

func TestConcurrentTransitions_OneWinner(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	draft := f.createDraft(t)
	_, err := f.service.Issue(context.Background(), draft.ID, staffPrincipal)
	require.NoError(t, err)

	// accept and cancel race on the same issued contract
	var wg sync.WaitGroup
	results := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, results[0] = f.service.Accept(context.Background(), draft.ID, customerPrincipal)
	}()
	go func() {
		defer wg.Done()
		_, results[1] = f.service.Cancel(context.Background(), draft.ID, staffPrincipal)
	}()
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		// the loser may observe the stale read or the new state, both map
		// to an invalid transition (accepted -> cancelled stays legal, so a
		// losing cancel can also legitimately succeed in sequence)
		assert.ErrorIs(t, err, contract.ErrInvalidTransition)
	}
	assert.GreaterOrEqual(t, successes, 1)

	final, err := f.contracts.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Contains(t, []model.ContractStatus{model.ContractStatusAccepted, model.ContractStatusCancelled}, final.Status)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	f := newContractFixture()
	_, err := f.service.Get(context.Background(), uuid.New(), staffPrincipal)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
