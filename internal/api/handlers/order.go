package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/storefront-labs/storefront-api/internal/api/middleware"
	"github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	service "github.com/storefront-labs/storefront-api/internal/services"
	"github.com/storefront-labs/storefront-api/internal/utils"
	"github.com/storefront-labs/storefront-api/internal/utils/response"
)

const orderCreatedMessage = "Order Created Successfully"

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// PlaceOrder godoc
//	@Summary		Place an order from a cart
//	@Description	Snapshots every line of the cart into an immutable order inside one transaction and returns the external order id.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	true	"Shipping/contact details plus cart_id and user_id"
//	@Success		201	{object}	response.APIResponse{data=models.PlaceOrderResponse}
//	@Failure		400	{object}	response.ErrorResponse	"Invalid user id"
//	@Failure		404	{object}	response.ErrorResponse	"Unknown user or product"
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/orders [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid place order input")
			return
		}

		logger = logger.With(slog.String("cartId", req.CartID))

		order, err := h.orderService.PlaceOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully", slog.String("orderOid", order.OID))
		response.Success(w, http.StatusCreated, models.PlaceOrderResponse{
			Message:  orderCreatedMessage,
			OrderOID: order.OID,
		})
	}
}

// Checkout godoc
//	@Summary		Get a placed order
//	@Description	Retrieves an order by its external id for checkout confirmation.
//	@Tags			Orders
//	@Produce		json
//	@Param			order_oid	path		string	true	"External order ID"
//	@Success		200	{object}	response.APIResponse{data=models.Order}
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Router			/checkout/{order_oid} [get]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		oid := r.PathValue("order_oid")
		if oid == "" {
			response.Error(w, errors.BadRequestError("Order ID is required"))
			return
		}

		order, err := h.orderService.GetCheckout(r.Context(), oid)
		if err != nil {
			logger.Error("Failed to get order", slog.String("orderOid", oid), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order retrieved successfully", slog.String("orderOid", oid))
		response.Success(w, http.StatusOK, order)
	}
}
