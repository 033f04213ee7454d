package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, full_name, email, phone, address, created_at`

// GetOrCreateByEmail upserts the customer record from the checkout form.
// Name, phone and address follow the latest submission.
func (r *CustomerRepository) GetOrCreateByEmail(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	var saved model.Customer
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO customers (full_name, email, phone, address)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address
		RETURNING `+customerColumns,
		customer.FullName, customer.Email, customer.Phone, customer.Address,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &customer, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC
	`).Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
