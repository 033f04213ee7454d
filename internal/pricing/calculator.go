package pricing

import (
	"fmt"
	"math"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

const currency = "VND"

// ComputeQuote maps a move request and the current tariff sheet to an
// itemized quote. It is a pure function: no clock, no I/O, identical inputs
// give an identical quote. The minimum trip fee is a floor on the distance
// fee, not an addend, and the speed multiplier applies after the floor.
func ComputeQuote(req model.MoveRequest, cfg model.PricingConfig) (model.Quote, error) {
	if err := validate(req); err != nil {
		return model.Quote{}, err
	}

	ratePerKm, ok := cfg.PricePerKm[req.VehicleClass]
	if !ok {
		return model.Quote{}, fmt.Errorf("%w: %s", ErrUnknownVehicleClass, req.VehicleClass)
	}
	minTripFee := cfg.MinTripFee[req.VehicleClass]

	packingFee, ok := cfg.PackingFee[req.PackingTier]
	if !ok {
		return model.Quote{}, fmt.Errorf("%w: %s", ErrUnknownPackingTier, req.PackingTier)
	}

	multiplier, ok := cfg.SpeedMultiplier[req.SpeedTier]
	if !ok {
		return model.Quote{}, fmt.Errorf("%w: unknown speed tier %s", ErrInvalidRequest, req.SpeedTier)
	}

	distanceFee := roundHalfUp(req.DistanceKm * float64(ratePerKm))
	baseFee := distanceFee
	minimumApplied := false
	if baseFee < minTripFee {
		baseFee = minTripFee
		minimumApplied = true
	}

	loadingHours := math.Ceil(float64(req.ItemCount) * cfg.LoadingMinPerItem / 60)
	laborFee := roundHalfUp(loadingHours * float64(cfg.LaborHourly))

	extraFloors := req.PickupFloors + req.DropoffFloors
	stairsFee := cfg.StairsFeePerFloor * int64(extraFloors)

	subtotal := roundHalfUp(float64(baseFee+laborFee+packingFee+stairsFee) * multiplier)

	total := subtotal
	nightApplied := inNightWindow(req.ScheduledAt.Hour(), cfg.NightStartHour, cfg.NightEndHour) && cfg.NightSurchargeRate > 0
	if nightApplied {
		total = roundHalfUp(float64(subtotal) * (1 + cfg.NightSurchargeRate))
	}

	return model.Quote{
		DistanceFee:        distanceFee,
		MinimumApplied:     minimumApplied,
		BaseFee:            baseFee,
		LaborFee:           laborFee,
		PackingFee:         packingFee,
		StairsFee:          stairsFee,
		SpeedMultiplier:    multiplier,
		Subtotal:           subtotal,
		NightApplied:       nightApplied,
		NightSurchargeRate: cfg.NightSurchargeRate,
		Total:              total,
		Currency:           currency,
	}, nil
}

func validate(req model.MoveRequest) error {
	switch {
	case req.DistanceKm < 0:
		return fmt.Errorf("%w: distance must not be negative", ErrInvalidRequest)
	case req.DurationMin < 0:
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidRequest)
	case req.ItemCount < 0:
		return fmt.Errorf("%w: item count must not be negative", ErrInvalidRequest)
	case req.PickupFloors < 0 || req.DropoffFloors < 0:
		return fmt.Errorf("%w: floor count must not be negative", ErrInvalidRequest)
	case req.ScheduledAt.IsZero():
		return fmt.Errorf("%w: scheduled time is required", ErrInvalidRequest)
	}
	return nil
}

// inNightWindow treats the window as [start, end) hours and supports windows
// that wrap past midnight, e.g. 22 -> 6.
func inNightWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
