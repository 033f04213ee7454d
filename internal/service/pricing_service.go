package service

import (
	"context"
	"fmt"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/pricing"
)

// PricingService serves quotes and the tariff sheet. The calculator itself
// is pure; this layer only supplies the current config snapshot.
type PricingService struct {
	source PricingSource
}

func NewPricingService(source PricingSource) *PricingService {
	return &PricingService{source: source}
}

func (s *PricingService) Quote(ctx context.Context, req model.MoveRequest) (*model.Quote, error) {
	cfg, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.ComputeQuote(req, *cfg)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *PricingService) GetConfig(ctx context.Context, principal model.Principal) (*model.PricingConfig, error) {
	if !principal.IsAdmin() && !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	return s.source.Load(ctx)
}

func (s *PricingService) UpdateConfig(ctx context.Context, cfg model.PricingConfig, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return s.source.Save(ctx, cfg)
}

func validateConfig(cfg model.PricingConfig) error {
	if len(cfg.PricePerKm) == 0 {
		return fmt.Errorf("%w: at least one vehicle class is required", ErrInvalidInput)
	}
	for class, rate := range cfg.PricePerKm {
		if rate < 0 {
			return fmt.Errorf("%w: negative price per km for %s", ErrInvalidInput, class)
		}
		if cfg.MinTripFee[class] < 0 {
			return fmt.Errorf("%w: negative minimum trip fee for %s", ErrInvalidInput, class)
		}
	}
	for tier, fee := range cfg.PackingFee {
		if fee < 0 {
			return fmt.Errorf("%w: negative packing fee for %s", ErrInvalidInput, tier)
		}
	}
	for tier, multiplier := range cfg.SpeedMultiplier {
		if multiplier < 1 {
			return fmt.Errorf("%w: speed multiplier below 1 for %s", ErrInvalidInput, tier)
		}
	}
	if cfg.LaborHourly < 0 || cfg.LoadingMinPerItem < 0 || cfg.StairsFeePerFloor < 0 {
		return fmt.Errorf("%w: labor rates must not be negative", ErrInvalidInput)
	}
	if cfg.NightSurchargeRate < 0 {
		return fmt.Errorf("%w: night surcharge rate must not be negative", ErrInvalidInput)
	}
	if cfg.NightStartHour < 0 || cfg.NightStartHour > 23 || cfg.NightEndHour < 0 || cfg.NightEndHour > 23 {
		return fmt.Errorf("%w: night window hours must be within 0-23", ErrInvalidInput)
	}
	return nil
}
