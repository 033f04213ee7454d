package repository

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

// PricingRepository loads the tariff sheet. Reads are cached for a short
// TTL so a burst of quotes does not hammer the database, while an admin
// rate change still becomes visible within one TTL.
type PricingRepository struct {
	db  *gorm.DB
	ttl time.Duration

	mu       sync.Mutex
	cached   *model.PricingConfig
	loadedAt time.Time
}

func NewPricingRepository(db *gorm.DB, ttl time.Duration) *PricingRepository {
	return &PricingRepository{db: db, ttl: ttl}
}

func (r *PricingRepository) Load(ctx context.Context) (*model.PricingConfig, error) {
	r.mu.Lock()
	if r.cached != nil && time.Since(r.loadedAt) < r.ttl {
		cfg := *r.cached
		r.mu.Unlock()
		return &cfg, nil
	}
	r.mu.Unlock()

	cfg, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cached = cfg
	r.loadedAt = time.Now()
	copied := *cfg
	r.mu.Unlock()
	return &copied, nil
}

func (r *PricingRepository) load(ctx context.Context) (*model.PricingConfig, error) {
	var tariffs []struct {
		VehicleClass string
		PricePerKm   int64
		MinTripFee   int64
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT vehicle_class, price_per_km, min_trip_fee FROM vehicle_tariffs
	`).Scan(&tariffs).Error; err != nil {
		return nil, err
	}

	var packing []struct {
		PackingTier string
		Fee         int64
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT packing_tier, fee FROM packing_fees
	`).Scan(&packing).Error; err != nil {
		return nil, err
	}

	var speeds []struct {
		SpeedTier  string
		Multiplier float64
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT speed_tier, multiplier FROM speed_multipliers
	`).Scan(&speeds).Error; err != nil {
		return nil, err
	}

	var settings struct {
		LaborHourly        int64
		LoadingMinPerItem  float64
		StairsFeePerFloor  int64
		NightSurchargeRate float64
		NightStartHour     int
		NightEndHour       int
		UpdatedAt          time.Time
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			labor_hourly,
			loading_min_per_item,
			stairs_fee_per_floor,
			night_surcharge_rate,
			night_start_hour,
			night_end_hour,
			updated_at
		FROM pricing_settings
		WHERE id = 1
	`).Scan(&settings).Error; err != nil {
		return nil, err
	}

	cfg := &model.PricingConfig{
		PricePerKm:         make(map[model.VehicleClass]int64, len(tariffs)),
		MinTripFee:         make(map[model.VehicleClass]int64, len(tariffs)),
		PackingFee:         make(map[model.PackingTier]int64, len(packing)),
		SpeedMultiplier:    make(map[model.SpeedTier]float64, len(speeds)),
		LaborHourly:        settings.LaborHourly,
		LoadingMinPerItem:  settings.LoadingMinPerItem,
		StairsFeePerFloor:  settings.StairsFeePerFloor,
		NightSurchargeRate: settings.NightSurchargeRate,
		NightStartHour:     settings.NightStartHour,
		NightEndHour:       settings.NightEndHour,
		UpdatedAt:          settings.UpdatedAt,
	}
	for _, t := range tariffs {
		cfg.PricePerKm[model.VehicleClass(t.VehicleClass)] = t.PricePerKm
		cfg.MinTripFee[model.VehicleClass(t.VehicleClass)] = t.MinTripFee
	}
	for _, p := range packing {
		cfg.PackingFee[model.PackingTier(p.PackingTier)] = p.Fee
	}
	for _, s := range speeds {
		cfg.SpeedMultiplier[model.SpeedTier(s.SpeedTier)] = s.Multiplier
	}
	return cfg, nil
}

// Save replaces the whole tariff sheet in one transaction and drops the
// cache so the next quote sees the new rates.
func (r *PricingRepository) Save(ctx context.Context, cfg model.PricingConfig) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM vehicle_tariffs`).Error; err != nil {
			return err
		}
		for class, rate := range cfg.PricePerKm {
			if err := tx.Exec(`
				INSERT INTO vehicle_tariffs (vehicle_class, price_per_km, min_trip_fee)
				VALUES (?, ?, ?)
			`, string(class), rate, cfg.MinTripFee[class]).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec(`DELETE FROM packing_fees`).Error; err != nil {
			return err
		}
		for tier, fee := range cfg.PackingFee {
			if err := tx.Exec(`
				INSERT INTO packing_fees (packing_tier, fee) VALUES (?, ?)
			`, string(tier), fee).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec(`DELETE FROM speed_multipliers`).Error; err != nil {
			return err
		}
		for tier, multiplier := range cfg.SpeedMultiplier {
			if err := tx.Exec(`
				INSERT INTO speed_multipliers (speed_tier, multiplier) VALUES (?, ?)
			`, string(tier), multiplier).Error; err != nil {
				return err
			}
		}

		return tx.Exec(`
			UPDATE pricing_settings
			SET
				labor_hourly = ?,
				loading_min_per_item = ?,
				stairs_fee_per_floor = ?,
				night_surcharge_rate = ?,
				night_start_hour = ?,
				night_end_hour = ?,
				updated_at = NOW()
			WHERE id = 1
		`, cfg.LaborHourly, cfg.LoadingMinPerItem, cfg.StairsFeePerFloor,
			cfg.NightSurchargeRate, cfg.NightStartHour, cfg.NightEndHour).Error
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
	return nil
}
