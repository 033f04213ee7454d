package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'request_status') THEN
			CREATE TYPE request_status AS ENUM ('PENDING', 'APPROVED', 'DECLINED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_status') THEN
			CREATE TYPE contract_status AS ENUM ('DRAFT', 'ISSUED', 'ACCEPTED', 'REJECTED', 'CANCELLED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'complaint_status') THEN
			CREATE TYPE complaint_status AS ENUM ('OPEN', 'IN_PROGRESS', 'RESOLVED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32),
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS move_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES customers(id),
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(32),
		pickup_address TEXT NOT NULL,
		dropoff_address TEXT NOT NULL,
		distance_km NUMERIC(10,3) NOT NULL CHECK (distance_km >= 0),
		duration_min NUMERIC(10,2) NOT NULL CHECK (duration_min >= 0),
		vehicle_class VARCHAR(32) NOT NULL,
		packing_tier VARCHAR(32) NOT NULL,
		speed_tier VARCHAR(32) NOT NULL,
		item_count INT NOT NULL CHECK (item_count >= 0),
		pickup_floors INT NOT NULL DEFAULT 0 CHECK (pickup_floors >= 0),
		dropoff_floors INT NOT NULL DEFAULT 0 CHECK (dropoff_floors >= 0),
		scheduled_at TIMESTAMPTZ NOT NULL,
		status request_status NOT NULL DEFAULT 'PENDING',
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_move_requests_customer_id ON move_requests (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_move_requests_status ON move_requests (status);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_number VARCHAR(64) NOT NULL,
		request_id UUID NOT NULL REFERENCES move_requests(id),
		customer_id UUID NOT NULL REFERENCES customers(id),
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		status contract_status NOT NULL DEFAULT 'DRAFT',
		distance_fee BIGINT NOT NULL,
		minimum_applied BOOLEAN NOT NULL,
		base_fee BIGINT NOT NULL,
		labor_fee BIGINT NOT NULL,
		packing_fee BIGINT NOT NULL,
		stairs_fee BIGINT NOT NULL,
		speed_multiplier NUMERIC(6,3) NOT NULL,
		subtotal BIGINT NOT NULL,
		night_applied BOOLEAN NOT NULL,
		night_surcharge_rate NUMERIC(6,4) NOT NULL,
		total BIGINT NOT NULL,
		currency VARCHAR(8) NOT NULL DEFAULT 'VND',
		rejection_reason TEXT,
		issued_at TIMESTAMPTZ,
		accepted_at TIMESTAMPTZ,
		rejected_at TIMESTAMPTZ,
		cancelled_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_number ON contracts (contract_number);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_request_id ON contracts (request_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_customer_id ON contracts (customer_id);`,
	`CREATE TABLE IF NOT EXISTS vehicle_tariffs (
		vehicle_class VARCHAR(32) PRIMARY KEY,
		price_per_km BIGINT NOT NULL CHECK (price_per_km >= 0),
		min_trip_fee BIGINT NOT NULL CHECK (min_trip_fee >= 0)
	);`,
	`CREATE TABLE IF NOT EXISTS packing_fees (
		packing_tier VARCHAR(32) PRIMARY KEY,
		fee BIGINT NOT NULL CHECK (fee >= 0)
	);`,
	`CREATE TABLE IF NOT EXISTS speed_multipliers (
		speed_tier VARCHAR(32) PRIMARY KEY,
		multiplier NUMERIC(6,3) NOT NULL CHECK (multiplier >= 1)
	);`,
	`CREATE TABLE IF NOT EXISTS pricing_settings (
		id SMALLINT PRIMARY KEY CHECK (id = 1),
		labor_hourly BIGINT NOT NULL CHECK (labor_hourly >= 0),
		loading_min_per_item NUMERIC(6,2) NOT NULL CHECK (loading_min_per_item >= 0),
		stairs_fee_per_floor BIGINT NOT NULL CHECK (stairs_fee_per_floor >= 0),
		night_surcharge_rate NUMERIC(6,4) NOT NULL CHECK (night_surcharge_rate >= 0),
		night_start_hour INT NOT NULL CHECK (night_start_hour BETWEEN 0 AND 23),
		night_end_hour INT NOT NULL CHECK (night_end_hour BETWEEN 0 AND 23),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES customers(id),
		customer_name VARCHAR(255) NOT NULL,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT,
		published BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES customers(id),
		contract_id UUID REFERENCES contracts(id),
		subject VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		status complaint_status NOT NULL DEFAULT 'OPEN',
		resolution TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		resolved_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints (status);`,
}

// seedStatements install the default tariff sheet on a fresh database.
var seedStatements = []string{
	`INSERT INTO vehicle_tariffs (vehicle_class, price_per_km, min_trip_fee) VALUES
		('truck_500kg', 10000, 250000),
		('truck_750kg', 12000, 350000),
		('truck_1250kg', 15000, 450000),
		('truck_2000kg', 20000, 600000)
	ON CONFLICT (vehicle_class) DO NOTHING;`,
	`INSERT INTO packing_fees (packing_tier, fee) VALUES
		('none', 0),
		('standard_pack', 50000),
		('premium_pack', 150000)
	ON CONFLICT (packing_tier) DO NOTHING;`,
	`INSERT INTO speed_multipliers (speed_tier, multiplier) VALUES
		('standard', 1.0),
		('express', 1.3)
	ON CONFLICT (speed_tier) DO NOTHING;`,
	`INSERT INTO pricing_settings (id, labor_hourly, loading_min_per_item, stairs_fee_per_floor, night_surcharge_rate, night_start_hour, night_end_hour)
	VALUES (1, 90000, 6, 20000, 0.2, 22, 6)
	ON CONFLICT (id) DO NOTHING;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	for i, stmt := range seedStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("seed %d failed: %w", i+1, err)
		}
	}
	return nil
}
