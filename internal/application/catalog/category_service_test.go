package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/shared"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("root category", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		svc := NewCategoryService(categoryRepo, new(mockProductRepo))

		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := svc.Create(ctx, CreateCategoryRequest{Name: "Laptops"})
		assert.NoError(t, err)
		assert.Equal(t, "Laptops", resp.Name)
		assert.Nil(t, resp.ParentID)
	})

	t.Run("missing parent", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		svc := NewCategoryService(categoryRepo, new(mockProductRepo))

		parentID := uuid.New()
		categoryRepo.On("FindByID", ctx, parentID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateCategoryRequest{Name: "Gaming", ParentID: &parentID})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PARENT", domainErr.Code)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	category, _ := catalog.NewCategory("Laptops", "", nil)

	t.Run("blocked when products exist", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		productRepo := new(mockProductRepo)
		svc := NewCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		productRepo.On("CountByCategory", ctx, category.ID).Return(int64(3), nil)

		err := svc.Delete(ctx, category.ID)
		assert.ErrorIs(t, err, shared.ErrCategoryInUse)
		categoryRepo.AssertNotCalled(t, "Delete", ctx, category.ID)
	})

	t.Run("blocked when children exist", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		productRepo := new(mockProductRepo)
		svc := NewCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		productRepo.On("CountByCategory", ctx, category.ID).Return(int64(0), nil)
		categoryRepo.On("HasChildren", ctx, category.ID).Return(true, nil)

		err := svc.Delete(ctx, category.ID)
		assert.ErrorIs(t, err, shared.ErrCategoryInUse)
	})

	t.Run("success when empty", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		productRepo := new(mockProductRepo)
		svc := NewCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		productRepo.On("CountByCategory", ctx, category.ID).Return(int64(0), nil)
		categoryRepo.On("HasChildren", ctx, category.ID).Return(false, nil)
		categoryRepo.On("Delete", ctx, category.ID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, category.ID))
		categoryRepo.AssertExpectations(t)
	})
}
