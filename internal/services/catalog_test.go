package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	cacheMocks "github.com/storefront-labs/storefront-api/internal/cache/mocks"
	appErrors "github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	"github.com/storefront-labs/storefront-api/internal/repositories/mocks"
	service "github.com/storefront-labs/storefront-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCatalogService(t *testing.T) (*mocks.CatalogRepository, *cacheMocks.Cache, service.CatalogService) {
	t.Helper()

	repo := mocks.NewCatalogRepository(t)
	cacheStore := cacheMocks.NewCache(t)
	svc := service.NewCatalogService(repo, cacheStore, 30*time.Minute)

	return repo, cacheStore, svc
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Cache Miss Reads The Store", func(t *testing.T) {
		// Arrange
		repo, cacheStore, svc := setupCatalogService(t)

		categories := []models.Category{
			{ID: 1, Title: "Shirts", Slug: "shirts", Active: true},
			{ID: 2, Title: "Shoes", Slug: "shoes", Active: true},
		}

		cacheStore.On("Get", mock.Anything, "categories:all", mock.Anything).Return(false, nil).Once()
		repo.On("ListCategories", mock.Anything).Return(categories, nil).Once()
		cacheStore.On("Set", mock.Anything, "categories:all", categories, 30*time.Minute).Return(nil).Once()

		// Act
		got, err := svc.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Success - Cache Hit", func(t *testing.T) {
		// Arrange
		repo, cacheStore, svc := setupCatalogService(t)

		cacheStore.On("Get", mock.Anything, "categories:all", mock.Anything).
			Run(func(args mock.Arguments) {
				cached := args.Get(2).(*[]models.Category)
				*cached = []models.Category{{ID: 1, Title: "Shirts", Slug: "shirts"}}
			}).Return(true, nil).Once()

		// Act
		got, err := svc.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, got, 1)
		repo.AssertNotCalled(t, "ListCategories", mock.Anything)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		repo, cacheStore, svc := setupCatalogService(t)

		cacheStore.On("Get", mock.Anything, "categories:all", mock.Anything).Return(false, nil).Once()
		repo.On("ListCategories", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		// Act
		_, err := svc.ListCategories(ctx)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Pagination Passed Through", func(t *testing.T) {
		// Arrange
		repo, _, svc := setupCatalogService(t)

		products := []*models.Product{publishedProduct(1, 7), publishedProduct(2, 7)}
		repo.On("ListProducts", mock.Anything, 2, 20).Return(products, 57, nil).Once()

		// Act
		got, total, err := svc.ListProducts(ctx, 2, 20)

		// Assert
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 57, total, "total is the full catalog count, not the page size")
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		repo, _, svc := setupCatalogService(t)

		repo.On("ListProducts", mock.Anything, 1, 10).Return(nil, 0, errors.New("timeout")).Once()

		// Act
		_, _, err := svc.ListProducts(ctx, 1, 10)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestGetProductBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		repo, cacheStore, svc := setupCatalogService(t)

		product := publishedProduct(1, 7)

		cacheStore.On("Get", mock.Anything, "product:linen-shirt", mock.Anything).Return(false, nil).Once()
		repo.On("GetProductBySlug", mock.Anything, "linen-shirt").Return(product, nil).Once()
		cacheStore.On("Set", mock.Anything, "product:linen-shirt", product, 30*time.Minute).Return(nil).Once()

		// Act
		got, err := svc.GetProductBySlug(ctx, "linen-shirt")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "linen-shirt", got.Slug)
	})

	t.Run("Failure - Unknown Slug", func(t *testing.T) {
		// Arrange
		repo, cacheStore, svc := setupCatalogService(t)

		cacheStore.On("Get", mock.Anything, "product:nope", mock.Anything).Return(false, nil).Once()
		repo.On("GetProductBySlug", mock.Anything, "nope").Return(nil, sql.ErrNoRows).Once()

		// Act
		got, err := svc.GetProductBySlug(ctx, "nope")

		// Assert
		assert.Nil(t, got)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.Equal(t, "Product not found", appErr.Message)
	})
}
