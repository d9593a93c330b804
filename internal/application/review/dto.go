package review

import (
	"time"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/review"
)

// CreateReviewRequest represents a request to review a product
type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=2000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID                 uuid.UUID `json:"id"`
	ProductID          uuid.UUID `json:"product_id"`
	UserID             uuid.UUID `json:"user_id"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	IsApproved         bool      `json:"is_approved"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
}

func toReviewResponse(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:                 r.ID,
		ProductID:          r.ProductID,
		UserID:             r.UserID,
		Rating:             r.Rating,
		Comment:            r.Comment,
		IsApproved:         r.IsApproved,
		IsVerifiedPurchase: r.IsVerifiedPurchase,
		CreatedAt:          r.CreatedAt,
	}
}

func toReviewResponses(reviews []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for idx := range reviews {
		out = append(out, *toReviewResponse(&reviews[idx]))
	}
	return out
}
