package handlers_test

import (
	"bytes"
	"encoding/json"
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

func setupOrderHandler(t *testing.T) (*mocks.OrderService, *handlers.OrderHandler) {
	t.Helper()

	mockService := mocks.NewOrderService(t)
	handler := handlers.NewOrderHandler(mockService)

	return mockService, handler
}

func placeOrderBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(models.PlaceOrderRequest{
		FullName: "Asha Pillai",
		Email:    "asha@example.com",
		Mobile:   "+91-9000000000",
		Address:  "14 Lake Road",
		City:     "Pune",
		State:    "MH",
		Country:  "India",
		CartID:   "cart-abc",
		UserID:   "0",
	})
	require.NoError(t, err)

	return body
}

func TestPlaceOrderHandler(t *testing.T) {
	t.Run("Success - Returns 201 With OID", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)
		req := testutils.CreateTestRequest("POST", "/api/v1/orders", bytes.NewReader(placeOrderBody(t)), nil)
		recorder := httptest.NewRecorder()

		order := &models.Order{
			OID:           "qwertyuiop",
			PaymentStatus: models.PaymentStatusProcessing,
			Total:         decimal.RequireFromString("32.175"),
		}
		mockService.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*models.PlaceOrderRequest")).
			Return(order, nil).Once()

		// Act
		handler.PlaceOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Order Created Successfully", data["message"])
		assert.Equal(t, "qwertyuiop", data["order_oid"])
	})

	t.Run("Failure - Missing Contact Fields Returns 400", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)

		body, err := json.Marshal(models.PlaceOrderRequest{CartID: "cart-abc", UserID: "0"})
		require.NoError(t, err)

		req := testutils.CreateTestRequest("POST", "/api/v1/orders", bytes.NewReader(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.PlaceOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid User ID Returns 400", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)
		req := testutils.CreateTestRequest("POST", "/api/v1/orders", bytes.NewReader(placeOrderBody(t)), nil)
		recorder := httptest.NewRecorder()

		mockService.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*models.PlaceOrderRequest")).
			Return(nil, appErrors.ValidationError("Invalid User ID")).Once()

		// Act
		handler.PlaceOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Invalid User ID", resp.Error.Message)
	})

	t.Run("Failure - Unknown Buyer Returns 404", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)
		req := testutils.CreateTestRequest("POST", "/api/v1/orders", bytes.NewReader(placeOrderBody(t)), nil)
		recorder := httptest.NewRecorder()

		mockService.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*models.PlaceOrderRequest")).
			Return(nil, appErrors.NotFoundError("User not found")).Once()

		// Act
		handler.PlaceOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/checkout/qwertyuiop", nil,
			map[string]string{"order_oid": "qwertyuiop"})
		recorder := httptest.NewRecorder()

		order := &models.Order{
			OID:           "qwertyuiop",
			PaymentStatus: models.PaymentStatusProcessing,
			FullName:      "Asha Pillai",
			Total:         decimal.RequireFromString("32.175"),
			VendorIDs:     []int64{7, 8},
		}
		mockService.On("GetCheckout", mock.Anything, "qwertyuiop").Return(order, nil).Once()

		// Act
		handler.Checkout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "qwertyuiop", data["oid"])
		assert.Equal(t, "processing", data["payment_status"])
		assert.NotContains(t, data, "id", "the internal id never leaves the service")
	})

	t.Run("Failure - Unknown OID Returns 404", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/checkout/nosuchoid0", nil,
			map[string]string{"order_oid": "nosuchoid0"})
		recorder := httptest.NewRecorder()

		mockService.On("GetCheckout", mock.Anything, "nosuchoid0").
			Return(nil, appErrors.NotFoundError("Order not found")).Once()

		// Act
		handler.Checkout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("Failure - Missing OID Returns 400", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderHandler(t)
		req := testutils.CreateTestRequest("GET", "/api/v1/checkout/", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.Checkout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "GetCheckout", mock.Anything, mock.Anything)
	})
}
