package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `
	id,
	customer_id,
	customer_name,
	customer_email,
	customer_phone,
	pickup_address,
	dropoff_address,
	distance_km,
	duration_min,
	vehicle_class,
	packing_tier,
	speed_tier,
	item_count,
	pickup_floors,
	dropoff_floors,
	scheduled_at,
	status,
	note,
	created_at
`

func (r *RequestRepository) Create(ctx context.Context, req model.MoveRequest) (*model.MoveRequest, error) {
	var saved model.MoveRequest
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO move_requests (
			customer_id,
			customer_name,
			customer_email,
			customer_phone,
			pickup_address,
			dropoff_address,
			distance_km,
			duration_min,
			vehicle_class,
			packing_tier,
			speed_tier,
			item_count,
			pickup_floors,
			dropoff_floors,
			scheduled_at,
			status,
			note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+requestColumns,
		req.CustomerID,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.PickupAddress,
		req.DropoffAddress,
		req.DistanceKm,
		req.DurationMin,
		req.VehicleClass,
		req.PackingTier,
		req.SpeedTier,
		req.ItemCount,
		req.PickupFloors,
		req.DropoffFloors,
		req.ScheduledAt,
		model.RequestStatusPending,
		req.Note,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MoveRequest, error) {
	var req model.MoveRequest
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM move_requests
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&req).Error
	if err != nil {
		return nil, err
	}
	if req.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (r *RequestRepository) List(ctx context.Context, status *model.RequestStatus) ([]model.MoveRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM move_requests`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	var requests []model.MoveRequest
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.MoveRequest, error) {
	var requests []model.MoveRequest
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM move_requests
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, customerID).Scan(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// SetStatus moves a request out of PENDING. The status guard keeps an
// already-decided request from being flipped by a second reviewer.
func (r *RequestRepository) SetStatus(ctx context.Context, id uuid.UUID, from, to model.RequestStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE move_requests
		SET status = ?
		WHERE id = ? AND status = ?
	`, to, id, from)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}
