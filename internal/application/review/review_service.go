package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/order"
	"github.com/techzone/backend/internal/domain/review"
	"github.com/techzone/backend/internal/domain/shared"
)

// ReviewService handles product reviews and rating aggregation
type ReviewService struct {
	reviewRepo  review.ReviewRepository
	productRepo catalog.ProductRepository
	orderRepo   order.OrderRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo review.ReviewRepository,
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Create stores an unapproved review. A user may review a product once;
// the verified-purchase flag is derived from their order history here
// and never re-evaluated.
func (s *ReviewService) Create(ctx context.Context, userID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsByProductAndUser(ctx, req.ProductID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicateReview
	}

	verified, err := s.orderRepo.ExistsByUserAndProduct(ctx, userID, req.ProductID)
	if err != nil {
		return nil, err
	}

	r, err := review.NewReview(req.ProductID, userID, req.Rating, req.Comment, verified)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	if err := s.recomputeRating(ctx, req.ProductID); err != nil {
		return nil, err
	}

	return toReviewResponse(r), nil
}

// ListByProduct returns a product's approved reviews, newest first
func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[ReviewResponse], error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID, true, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.reviewRepo.CountByProduct(ctx, productID, true)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(toReviewResponses(reviews), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Approve makes a review count toward the product rating
func (s *ReviewService) Approve(ctx context.Context, id uuid.UUID) (*ReviewResponse, error) {
	r, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.Approve(); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	if err := s.recomputeRating(ctx, r.ProductID); err != nil {
		return nil, err
	}

	return toReviewResponse(r), nil
}

// Delete removes a review and recomputes the product rating
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	r, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.recomputeRating(ctx, r.ProductID)
}

func (s *ReviewService) recomputeRating(ctx context.Context, productID uuid.UUID) error {
	summary, err := s.reviewRepo.SummarizeApproved(ctx, productID)
	if err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	average := decimal.NewFromFloat(summary.Average).Round(2)
	product.SetRating(average, summary.Count)
	return s.productRepo.Save(ctx, product)
}
