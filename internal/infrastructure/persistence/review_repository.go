package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/review"
	"github.com/techzone/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReviewRepository implements review.ReviewRepository
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

var _ review.ReviewRepository = (*GormReviewRepository)(nil)

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var rev review.Review
	err := dbFrom(ctx, r.db).First(&rev, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// FindByProduct finds reviews for a product, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool, filter shared.Filter) ([]review.Review, error) {
	var reviews []review.Review
	query := dbFrom(ctx, r.db).Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByUser finds all reviews written by a user
func (r *GormReviewRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]review.Review, error) {
	var reviews []review.Review
	err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ExistsByProductAndUser reports whether the user already reviewed the product
func (r *GormReviewRepository) ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&review.Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, rev *review.Review) error {
	return dbFrom(ctx, r.db).Save(rev).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Delete(&review.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByProduct counts reviews for a product
func (r *GormReviewRepository) CountByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) (int64, error) {
	var count int64
	query := dbFrom(ctx, r.db).Model(&review.Review{}).Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SummarizeApproved computes the mean rating and count over approved
// reviews. COALESCE keeps the zero-review case at 0/0.
func (r *GormReviewRepository) SummarizeApproved(ctx context.Context, productID uuid.UUID) (review.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int
	}
	err := dbFrom(ctx, r.db).Model(&review.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&row).Error
	if err != nil {
		return review.RatingSummary{}, err
	}
	return review.RatingSummary{Average: row.Average, Count: row.Count}, nil
}
