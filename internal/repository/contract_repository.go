package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// contractRow is the flat scan target; the quote snapshot lives in separate
// columns on the contracts table.
type contractRow struct {
	ID                 uuid.UUID
	ContractNumber     string
	RequestID          uuid.UUID
	CustomerID         uuid.UUID
	CustomerName       string
	CustomerEmail      string
	Status             model.ContractStatus
	DistanceFee        int64
	MinimumApplied     bool
	BaseFee            int64
	LaborFee           int64
	PackingFee         int64
	StairsFee          int64
	SpeedMultiplier    float64
	Subtotal           int64
	NightApplied       bool
	NightSurchargeRate float64
	Total              int64
	Currency           string
	RejectionReason    *string
	IssuedAt           *time.Time
	AcceptedAt         *time.Time
	RejectedAt         *time.Time
	CancelledAt        *time.Time
	CreatedAt          time.Time
}

const contractColumns = `
	id,
	contract_number,
	request_id,
	customer_id,
	customer_name,
	customer_email,
	status,
	distance_fee,
	minimum_applied,
	base_fee,
	labor_fee,
	packing_fee,
	stairs_fee,
	speed_multiplier,
	subtotal,
	night_applied,
	night_surcharge_rate,
	total,
	currency,
	rejection_reason,
	issued_at,
	accepted_at,
	rejected_at,
	cancelled_at,
	created_at
`

func (row contractRow) toModel() *model.Contract {
	return &model.Contract{
		ID:             row.ID,
		ContractNumber: row.ContractNumber,
		RequestID:      row.RequestID,
		CustomerID:     row.CustomerID,
		CustomerName:   row.CustomerName,
		CustomerEmail:  row.CustomerEmail,
		Status:         row.Status,
		Pricing: model.Quote{
			DistanceFee:        row.DistanceFee,
			MinimumApplied:     row.MinimumApplied,
			BaseFee:            row.BaseFee,
			LaborFee:           row.LaborFee,
			PackingFee:         row.PackingFee,
			StairsFee:          row.StairsFee,
			SpeedMultiplier:    row.SpeedMultiplier,
			Subtotal:           row.Subtotal,
			NightApplied:       row.NightApplied,
			NightSurchargeRate: row.NightSurchargeRate,
			Total:              row.Total,
			Currency:           row.Currency,
		},
		RejectionReason: row.RejectionReason,
		IssuedAt:        row.IssuedAt,
		AcceptedAt:      row.AcceptedAt,
		RejectedAt:      row.RejectedAt,
		CancelledAt:     row.CancelledAt,
		CreatedAt:       row.CreatedAt,
	}
}

func (r *ContractRepository) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (
			contract_number,
			request_id,
			customer_id,
			customer_name,
			customer_email,
			status,
			distance_fee,
			minimum_applied,
			base_fee,
			labor_fee,
			packing_fee,
			stairs_fee,
			speed_multiplier,
			subtotal,
			night_applied,
			night_surcharge_rate,
			total,
			currency
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+contractColumns,
		contract.ContractNumber,
		contract.RequestID,
		contract.CustomerID,
		contract.CustomerName,
		contract.CustomerEmail,
		model.ContractStatusDraft,
		contract.Pricing.DistanceFee,
		contract.Pricing.MinimumApplied,
		contract.Pricing.BaseFee,
		contract.Pricing.LaborFee,
		contract.Pricing.PackingFee,
		contract.Pricing.StairsFee,
		contract.Pricing.SpeedMultiplier,
		contract.Pricing.Subtotal,
		contract.Pricing.NightApplied,
		contract.Pricing.NightSurchargeRate,
		contract.Pricing.Total,
		contract.Pricing.Currency,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toModel(), nil
}

func (r *ContractRepository) List(ctx context.Context, status *model.ContractStatus, from, to *time.Time) ([]model.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE 1=1`
	args := []interface{}{}
	if status != nil {
		query += ` AND status = ?`
		args = append(args, *status)
	}
	if from != nil {
		query += ` AND created_at >= ?`
		args = append(args, *from)
	}
	if to != nil {
		query += ` AND created_at < ?`
		args = append(args, *to)
	}
	query += ` ORDER BY created_at DESC`

	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	contracts := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, *row.toModel())
	}
	return contracts, nil
}

// UpdateStatus performs the compare-and-set transition write. The WHERE
// clause on the current status makes two racing transitions resolve to one
// winner; the loser gets ErrStaleStatus. The pricing snapshot columns are
// never touched here.
func (r *ContractRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to model.ContractStatus,
	rejectionReason *string,
) (*model.Contract, error) {
	var timestampColumn string
	switch to {
	case model.ContractStatusIssued:
		timestampColumn = "issued_at"
	case model.ContractStatusAccepted:
		timestampColumn = "accepted_at"
	case model.ContractStatusRejected:
		timestampColumn = "rejected_at"
	case model.ContractStatusCancelled:
		timestampColumn = "cancelled_at"
	default:
		return nil, fmt.Errorf("unsupported target status %s", to)
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET status = ?, rejection_reason = COALESCE(?, rejection_reason), `+timestampColumn+` = NOW()
		WHERE id = ? AND status = ?
	`, to, rejectionReason, id, from)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrStaleStatus
	}

	return r.GetByID(ctx, id)
}
