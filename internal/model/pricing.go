package model

import "time"

type VehicleClass string

const (
	VehicleTruck500  VehicleClass = "truck_500kg"
	VehicleTruck750  VehicleClass = "truck_750kg"
	VehicleTruck1250 VehicleClass = "truck_1250kg"
	VehicleTruck2000 VehicleClass = "truck_2000kg"
)

type PackingTier string

const (
	PackingNone     PackingTier = "none"
	PackingStandard PackingTier = "standard_pack"
	PackingPremium  PackingTier = "premium_pack"
)

type SpeedTier string

const (
	SpeedStandard SpeedTier = "standard"
	SpeedExpress  SpeedTier = "express"
)

// PricingConfig is the tariff sheet used by the quote calculator.
// All monetary amounts are VND. Admin updates replace the whole set;
// a quote always reads one consistent snapshot.
type PricingConfig struct {
	PricePerKm      map[VehicleClass]int64
	MinTripFee      map[VehicleClass]int64
	PackingFee      map[PackingTier]int64
	SpeedMultiplier map[SpeedTier]float64

	LaborHourly       int64
	LoadingMinPerItem float64
	StairsFeePerFloor int64

	NightSurchargeRate float64
	NightStartHour     int // inclusive, 0-23
	NightEndHour       int // exclusive, 0-23

	UpdatedAt time.Time
}

// DefaultPricingConfig is the tariff sheet seeded on first start.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		PricePerKm: map[VehicleClass]int64{
			VehicleTruck500:  10000,
			VehicleTruck750:  12000,
			VehicleTruck1250: 15000,
			VehicleTruck2000: 20000,
		},
		MinTripFee: map[VehicleClass]int64{
			VehicleTruck500:  250000,
			VehicleTruck750:  350000,
			VehicleTruck1250: 450000,
			VehicleTruck2000: 600000,
		},
		PackingFee: map[PackingTier]int64{
			PackingNone:     0,
			PackingStandard: 50000,
			PackingPremium:  150000,
		},
		SpeedMultiplier: map[SpeedTier]float64{
			SpeedStandard: 1.0,
			SpeedExpress:  1.3,
		},
		LaborHourly:        90000,
		LoadingMinPerItem:  6,
		StairsFeePerFloor:  20000,
		NightSurchargeRate: 0.2,
		NightStartHour:     22,
		NightEndHour:       6,
	}
}
