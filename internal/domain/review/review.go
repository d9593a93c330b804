package review

import (
	"time"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
)

// Review is a customer's rating of a product. Reviews start unapproved
// and only count toward the product rating once an admin approves them.
type Review struct {
	shared.BaseAggregateRoot
	ProductID          uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_product_user,unique"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_product_user,unique"`
	Rating             int       `gorm:"not null"`
	Comment            string    `gorm:"type:text"`
	IsApproved         bool      `gorm:"not null;default:false"`
	IsVerifiedPurchase bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates an unapproved review. The verified-purchase flag is
// derived from the user's order history at creation time and never
// revisited afterwards.
func NewReview(productID, userID uuid.UUID, rating int, comment string, verifiedPurchase bool) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	if len(comment) > 2000 {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Comment cannot exceed 2000 characters")
	}

	return &Review{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		ProductID:          productID,
		UserID:             userID,
		Rating:             rating,
		Comment:            comment,
		IsVerifiedPurchase: verifiedPurchase,
	}, nil
}

// Approve makes the review visible and countable
func (r *Review) Approve() error {
	if r.IsApproved {
		return shared.ErrInvalidState
	}
	r.IsApproved = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}
