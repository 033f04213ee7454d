package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

const complaintColumns = `id, customer_id, contract_id, subject, body, status, resolution, created_at, resolved_at`

func (r *ComplaintRepository) Create(ctx context.Context, complaint model.Complaint) (*model.Complaint, error) {
	var saved model.Complaint
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO complaints (customer_id, contract_id, subject, body, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+complaintColumns,
		complaint.CustomerID, complaint.ContractID, complaint.Subject, complaint.Body,
		model.ComplaintStatusOpen,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Complaint, error) {
	var complaint model.Complaint
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+complaintColumns+`
		FROM complaints
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&complaint).Error
	if err != nil {
		return nil, err
	}
	if complaint.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &complaint, nil
}

func (r *ComplaintRepository) List(ctx context.Context, status *model.ComplaintStatus) ([]model.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	var complaints []model.Complaint
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.ComplaintStatus, resolution *string) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE complaints
		SET
			status = ?,
			resolution = COALESCE(?, resolution),
			resolved_at = CASE WHEN ?::complaint_status = 'RESOLVED' THEN NOW() ELSE resolved_at END
		WHERE id = ?
	`, status, resolution, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
