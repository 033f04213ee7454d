package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, customer_id, customer_name, rating, comment, published, created_at`

func (r *ReviewRepository) Create(ctx context.Context, review model.Review) (*model.Review, error) {
	var saved model.Review
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO reviews (customer_id, customer_name, rating, comment, published)
		VALUES (?, ?, ?, ?, FALSE)
		RETURNING `+reviewColumns,
		review.CustomerID, review.CustomerName, review.Rating, review.Comment,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ReviewRepository) List(ctx context.Context, publishedOnly bool) ([]model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	var reviews []model.Review
	if err := r.db.WithContext(ctx).Raw(query).Scan(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE reviews SET published = ? WHERE id = ?
	`, published, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM reviews WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
