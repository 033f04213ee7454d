package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/pricing"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/service"
)

func newRequestService() (*service.RequestService, *fakeRequestStore) {
	requests := newFakeRequestStore()
	svc := service.NewRequestService(requests, newFakeCustomerStore(), newFakePricingSource())
	return svc, requests
}

func TestSubmitRequest(t *testing.T) {
	t.Parallel()

	svc, _ := newRequestService()

	saved, err := svc.Submit(context.Background(), approvedRequest())
	require.NoError(t, err)

	assert.Equal(t, model.RequestStatusPending, saved.Status)
	assert.NotEqual(t, saved.CustomerID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestSubmitRequest_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newRequestService()

	tests := []struct {
		name    string
		mutate  func(*model.MoveRequest)
		wantErr error
	}{
		{"missing name", func(r *model.MoveRequest) { r.CustomerName = " " }, service.ErrInvalidInput},
		{"missing addresses", func(r *model.MoveRequest) { r.PickupAddress = "" }, service.ErrInvalidInput},
		{"unknown vehicle caught at intake", func(r *model.MoveRequest) { r.VehicleClass = "scooter" }, pricing.ErrUnknownVehicleClass},
		{"negative distance caught at intake", func(r *model.MoveRequest) { r.DistanceKm = -3 }, pricing.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := approvedRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApproveRequest(t *testing.T) {
	t.Parallel()

	svc, requests := newRequestService()
	seeded := requests.seed(approvedRequest(), model.RequestStatusPending)

	require.NoError(t, svc.Approve(context.Background(), seeded.ID, staffPrincipal))

	stored, err := requests.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusApproved, stored.Status)

	// a second decision on the same request is refused
	err = svc.Decline(context.Background(), seeded.ID, staffPrincipal)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestApproveRequest_CustomerForbidden(t *testing.T) {
	t.Parallel()

	svc, requests := newRequestService()
	seeded := requests.seed(approvedRequest(), model.RequestStatusPending)

	err := svc.Approve(context.Background(), seeded.ID, customerPrincipal)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
}

func TestGetRequest_OwnershipCheck(t *testing.T) {
	t.Parallel()

	svc, requests := newRequestService()
	seeded := requests.seed(approvedRequest(), model.RequestStatusPending)

	_, err := svc.Get(context.Background(), seeded.ID, customerPrincipal)
	require.NoError(t, err)

	stranger := model.Principal{Email: "other@example.com", Role: model.RoleCustomer}
	_, err = svc.Get(context.Background(), seeded.ID, stranger)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
}
