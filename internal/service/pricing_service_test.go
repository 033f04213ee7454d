package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/service"
)

var adminPrincipal = model.Principal{Email: "admin@g5moving.vn", Role: model.RoleAdmin}

func TestQuoteUsesCurrentConfig(t *testing.T) {
	t.Parallel()

	source := newFakePricingSource()
	svc := service.NewPricingService(source)

	quote, err := svc.Quote(context.Background(), approvedRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(490000), quote.Total)

	cfg := model.DefaultPricingConfig()
	cfg.PackingFee[model.PackingStandard] = 80000
	require.NoError(t, source.Save(context.Background(), cfg))

	quote, err = svc.Quote(context.Background(), approvedRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(520000), quote.Total)
}

func TestUpdateConfig_AdminOnly(t *testing.T) {
	t.Parallel()

	svc := service.NewPricingService(newFakePricingSource())

	err := svc.UpdateConfig(context.Background(), model.DefaultPricingConfig(), staffPrincipal)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)

	err = svc.UpdateConfig(context.Background(), model.DefaultPricingConfig(), adminPrincipal)
	assert.NoError(t, err)
}

func TestUpdateConfig_Validation(t *testing.T) {
	t.Parallel()

	svc := service.NewPricingService(newFakePricingSource())

	tests := []struct {
		name   string
		mutate func(*model.PricingConfig)
	}{
		{"negative rate", func(c *model.PricingConfig) { c.PricePerKm[model.VehicleTruck750] = -1 }},
		{"negative packing fee", func(c *model.PricingConfig) { c.PackingFee[model.PackingPremium] = -500 }},
		{"multiplier below one", func(c *model.PricingConfig) { c.SpeedMultiplier[model.SpeedExpress] = 0.8 }},
		{"negative labor", func(c *model.PricingConfig) { c.LaborHourly = -90000 }},
		{"night hour out of range", func(c *model.PricingConfig) { c.NightStartHour = 25 }},
		{"no vehicle classes", func(c *model.PricingConfig) { c.PricePerKm = map[model.VehicleClass]int64{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultPricingConfig()
			tt.mutate(&cfg)

			err := svc.UpdateConfig(context.Background(), cfg, adminPrincipal)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestGetConfig_Permissions(t *testing.T) {
	t.Parallel()

	svc := service.NewPricingService(newFakePricingSource())

	_, err := svc.GetConfig(context.Background(), customerPrincipal)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)

	cfg, err := svc.GetConfig(context.Background(), staffPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), cfg.PricePerKm[model.VehicleTruck750])
}
