package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/repository"
)

// ReviewService covers the public reviews page and admin moderation.
// New reviews stay unpublished until a moderator approves them.
type ReviewService struct {
	reviews   *repository.ReviewRepository
	customers CustomerStore
}

func NewReviewService(reviews *repository.ReviewRepository, customers CustomerStore) *ReviewService {
	return &ReviewService{reviews: reviews, customers: customers}
}

type SubmitReviewInput struct {
	CustomerName  string
	CustomerEmail string
	Rating        int
	Comment       string
}

func (s *ReviewService) Submit(ctx context.Context, input SubmitReviewInput) (*model.Review, error) {
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	customer, err := s.customers.GetOrCreateByEmail(ctx, model.Customer{
		FullName: input.CustomerName,
		Email:    input.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}

	return s.reviews.Create(ctx, model.Review{
		CustomerID:   customer.ID,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
	})
}

func (s *ReviewService) ListPublished(ctx context.Context) ([]model.Review, error) {
	return s.reviews.List(ctx, true)
}

func (s *ReviewService) ListAll(ctx context.Context, principal model.Principal) ([]model.Review, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	return s.reviews.List(ctx, false)
}

func (s *ReviewService) SetPublished(ctx context.Context, id uuid.UUID, published bool, principal model.Principal) error {
	if principal.IsCustomer() {
		return ErrPermissionDenied
	}
	err := s.reviews.SetPublished(ctx, id, published)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	err := s.reviews.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
