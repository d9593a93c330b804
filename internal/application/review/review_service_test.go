package review

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/order"
	"github.com/techzone/backend/internal/domain/review"
	"github.com/techzone/backend/internal/domain/shared"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *mockReviewRepo) FindByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool, filter shared.Filter) ([]review.Review, error) {
	args := m.Called(ctx, productID, approvedOnly, filter)
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *mockReviewRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]review.Review, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *mockReviewRepo) ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) Save(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepo) CountByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) (int64, error) {
	args := m.Called(ctx, productID, approvedOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepo) SummarizeApproved(ctx context.Context, productID uuid.UUID) (review.RatingSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(review.RatingSummary), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *mockProductRepo) RestoreStock(ctx context.Context, id uuid.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderRepo) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) ExistsByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("verified purchase review", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		productRepo := new(mockProductRepo)
		orderRepo := new(mockOrderRepo)
		svc := NewReviewService(reviewRepo, productRepo, orderRepo)

		product, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(25), 5, uuid.New())
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		reviewRepo.On("ExistsByProductAndUser", ctx, product.ID, userID).Return(false, nil)
		orderRepo.On("ExistsByUserAndProduct", ctx, userID, product.ID).Return(true, nil)
		reviewRepo.On("Save", ctx, mock.AnythingOfType("*review.Review")).Return(nil)
		reviewRepo.On("SummarizeApproved", ctx, product.ID).Return(review.RatingSummary{}, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := svc.Create(ctx, userID, CreateReviewRequest{ProductID: product.ID, Rating: 4, Comment: "Good"})

		assert.NoError(t, err)
		assert.True(t, resp.IsVerifiedPurchase)
		assert.False(t, resp.IsApproved, "new reviews start unapproved")
	})

	t.Run("duplicate review rejected", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		productRepo := new(mockProductRepo)
		svc := NewReviewService(reviewRepo, productRepo, new(mockOrderRepo))

		product, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(25), 5, uuid.New())
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		reviewRepo.On("ExistsByProductAndUser", ctx, product.ID, userID).Return(true, nil)

		_, err := svc.Create(ctx, userID, CreateReviewRequest{ProductID: product.ID, Rating: 4})
		assert.ErrorIs(t, err, shared.ErrDuplicateReview)
	})

	t.Run("missing product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		svc := NewReviewService(new(mockReviewRepo), productRepo, new(mockOrderRepo))

		id := uuid.New()
		productRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, userID, CreateReviewRequest{ProductID: id, Rating: 4})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestReviewService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approval recomputes the product rating", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		productRepo := new(mockProductRepo)
		svc := NewReviewService(reviewRepo, productRepo, new(mockOrderRepo))

		product, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(25), 5, uuid.New())
		r, _ := review.NewReview(product.ID, uuid.New(), 4, "", false)

		reviewRepo.On("FindByID", ctx, r.ID).Return(r, nil)
		reviewRepo.On("Save", ctx, r).Return(nil)
		// ratings 4 and 2 approved -> mean 3.0, count 2
		reviewRepo.On("SummarizeApproved", ctx, product.ID).Return(review.RatingSummary{Average: 3.0, Count: 2}, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := svc.Approve(ctx, r.ID)

		assert.NoError(t, err)
		assert.True(t, resp.IsApproved)
		assert.True(t, product.AverageRating.Equal(decimal.NewFromFloat(3.0)))
		assert.Equal(t, 2, product.ReviewCount)
	})

	t.Run("double approval rejected", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		svc := NewReviewService(reviewRepo, new(mockProductRepo), new(mockOrderRepo))

		r, _ := review.NewReview(uuid.New(), uuid.New(), 4, "", false)
		assert.NoError(t, r.Approve())
		reviewRepo.On("FindByID", ctx, r.ID).Return(r, nil)

		_, err := svc.Approve(ctx, r.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	reviewRepo := new(mockReviewRepo)
	productRepo := new(mockProductRepo)
	svc := NewReviewService(reviewRepo, productRepo, new(mockOrderRepo))

	product, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(25), 5, uuid.New())
	product.SetRating(decimal.NewFromFloat(4.0), 1)
	r, _ := review.NewReview(product.ID, uuid.New(), 4, "", false)

	reviewRepo.On("FindByID", ctx, r.ID).Return(r, nil)
	reviewRepo.On("Delete", ctx, r.ID).Return(nil)
	reviewRepo.On("SummarizeApproved", ctx, product.ID).Return(review.RatingSummary{}, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("Save", ctx, product).Return(nil)

	assert.NoError(t, svc.Delete(ctx, r.ID))
	assert.True(t, product.AverageRating.IsZero(), "no approved reviews resets to zero")
	assert.Equal(t, 0, product.ReviewCount)
}
