package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
)

// RatingSummary aggregates the approved reviews of a product
type RatingSummary struct {
	Average float64
	Count   int
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// FindByID finds a review by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)

	// FindByProduct finds reviews for a product, approved ones only
	// when approvedOnly is set, newest first
	FindByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool, filter shared.Filter) ([]Review, error)

	// FindByUser finds all reviews written by a user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Review, error)

	// ExistsByProductAndUser reports whether the user already reviewed the product
	ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error)

	// Save creates or updates a review
	Save(ctx context.Context, review *Review) error

	// Delete deletes a review
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByProduct counts reviews for a product, approved only when set
	CountByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) (int64, error)

	// SummarizeApproved computes the mean rating and count over a
	// product's approved reviews. Zero values when there are none.
	SummarizeApproved(ctx context.Context, productID uuid.UUID) (RatingSummary, error)
}
