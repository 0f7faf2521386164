package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront-labs/storefront-api/internal/api/handlers"
	appErrors "github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	"github.com/storefront-labs/storefront-api/internal/services/mocks"
	"github.com/storefront-labs/storefront-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCatalogHandler(t *testing.T) (*mocks.CatalogService, *handlers.CatalogHandler) {
	t.Helper()

	mockService := mocks.NewCatalogService(t)
	handler := handlers.NewCatalogHandler(mockService)

	return mockService, handler
}

func TestListCategoriesHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/categories", nil, nil)
		recorder := httptest.NewRecorder()

		categories := []models.Category{
			{ID: 1, Title: "Shirts", Slug: "shirts", Active: true},
			{ID: 2, Title: "Shoes", Slug: "shoes", Active: true},
		}
		mockService.On("ListCategories", mock.Anything).Return(categories, nil).Once()

		// Act
		handler.ListCategories()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)

		data, ok := resp.Data.([]any)
		require.True(t, ok)
		assert.Len(t, data, 2)
	})

	t.Run("Failure - Database Error Returns 500", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/categories", nil, nil)
		recorder := httptest.NewRecorder()

		mockService.On("ListCategories", mock.Anything).
			Return(nil, appErrors.DatabaseError("Failed to fetch categories")).Once()

		// Act
		handler.ListCategories()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Success - Defaults Applied", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/products", nil, nil)
		recorder := httptest.NewRecorder()

		products := []*models.Product{{ID: 1, Slug: "linen-shirt", Price: decimal.RequireFromString("19.99")}}
		mockService.On("ListProducts", mock.Anything, 1, 10).Return(products, 57, nil).Once()

		// Act
		handler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 57, data["total"], 0)
		assert.InDelta(t, 1, data["page"], 0)
		assert.InDelta(t, 10, data["pageSize"], 0)
	})

	t.Run("Success - Explicit Pagination", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/products?page=3&pageSize=25", nil, nil)
		recorder := httptest.NewRecorder()

		mockService.On("ListProducts", mock.Anything, 3, 25).Return([]*models.Product{}, 57, nil).Once()

		// Act
		handler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Success - Out Of Range Values Fall Back", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/products?page=-1&pageSize=5000", nil, nil)
		recorder := httptest.NewRecorder()

		mockService.On("ListProducts", mock.Anything, 1, 10).Return([]*models.Product{}, 0, nil).Once()

		// Act
		handler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestGetProductHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/products/linen-shirt", nil,
			map[string]string{"slug": "linen-shirt"})
		recorder := httptest.NewRecorder()

		product := &models.Product{
			ID:     1,
			Title:  "Linen Shirt",
			Slug:   "linen-shirt",
			Price:  decimal.RequireFromString("19.99"),
			Status: models.ProductStatusPublished,
		}
		mockService.On("GetProductBySlug", mock.Anything, "linen-shirt").Return(product, nil).Once()

		// Act
		handler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "linen-shirt", data["slug"])
		assert.Equal(t, "19.99", data["price"])
	})

	t.Run("Failure - Unknown Slug Returns 404", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/products/nope", nil,
			map[string]string{"slug": "nope"})
		recorder := httptest.NewRecorder()

		mockService.On("GetProductBySlug", mock.Anything, "nope").
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		handler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Failure - Missing Slug Returns 400", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCatalogHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/products/", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "GetProductBySlug", mock.Anything, mock.Anything)
	})
}
