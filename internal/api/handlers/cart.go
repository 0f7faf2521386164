package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/storefront-labs/storefront-api/internal/api/middleware"
	"github.com/storefront-labs/storefront-api/internal/models"
	service "github.com/storefront-labs/storefront-api/internal/services"
	"github.com/storefront-labs/storefront-api/internal/utils"
	"github.com/storefront-labs/storefront-api/internal/utils/response"
)

const (
	cartCreatedMessage = "Product added to cart successfully!"
	cartUpdatedMessage = "Cart updated successfully!"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// AddToCart godoc
//	@Summary		Add a product to a cart
//	@Description	Creates a cart line for (cart_id, product) or updates it in place when the pair already exists.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			line	body		models.AddToCartRequest	true	"Cart line payload"
//	@Success		200	{object}	response.APIResponse{data=models.AddToCartResponse}	"Existing line updated"
//	@Success		201	{object}	response.APIResponse{data=models.AddToCartResponse}	"New line created"
//	@Failure		400	{object}	response.ErrorResponse	"Non-numeric qty/price or missing fields"
//	@Failure		404	{object}	response.ErrorResponse	"Product missing/unpublished or user unknown"
//	@Router			/cart [post]
func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		logger = logger.With(slog.String("cartId", req.CartID), slog.String("productId", req.ProductID))

		line, created, err := h.cartService.AddToCart(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to add product to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if created {
			logger.Info("Cart line created", slog.Int64("lineId", line.ID))
			response.Success(w, http.StatusCreated, models.AddToCartResponse{Message: cartCreatedMessage})
			return
		}

		logger.Info("Cart line updated", slog.Int64("lineId", line.ID))
		response.Success(w, http.StatusOK, models.AddToCartResponse{Message: cartUpdatedMessage})
	}
}

// ListCart godoc
//	@Summary		List cart lines
//	@Description	Returns the lines of a cart, optionally scoped to a user.
//	@Tags			Cart
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart ID"
//	@Param			user_id	path		string	false	"User ID"
//	@Success		200	{object}	response.APIResponse{data=[]models.CartLine}
//	@Failure		404	{object}	response.ErrorResponse	"Unknown user"
//	@Router			/cart/{cart_id} [get]
func (h *CartHandler) ListCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID := r.PathValue("cart_id")
		userID := r.PathValue("user_id")

		lines, err := h.cartService.ListLines(r.Context(), cartID, userID)
		if err != nil {
			logger.Error("Failed to list cart", slog.String("cartId", cartID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, lines)
	}
}

// CartTotals godoc
//	@Summary		Aggregate cart totals
//	@Description	Sums shipping, tax, service fee, subtotal and total across the cart. An empty cart returns zeros.
//	@Tags			Cart
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart ID"
//	@Param			user_id	path		string	false	"User ID"
//	@Success		200	{object}	response.APIResponse{data=models.CartTotals}
//	@Router			/cart/{cart_id}/total [get]
func (h *CartHandler) CartTotals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID := r.PathValue("cart_id")
		userID := r.PathValue("user_id")

		totals, err := h.cartService.Totals(r.Context(), cartID, userID)
		if err != nil {
			logger.Error("Failed to sum cart totals", slog.String("cartId", cartID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, totals)
	}
}

// DeleteItem godoc
//	@Summary		Delete a cart line
//	@Description	Removes one line from the cart by its id.
//	@Tags			Cart
//	@Param			cart_id	path	string	true	"Cart ID"
//	@Param			item_id	path	string	true	"Cart line ID"
//	@Param			user_id	path	string	false	"User ID"
//	@Success		204	"Line deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Line not found"
//	@Router			/cart/{cart_id}/{item_id} [delete]
func (h *CartHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID := r.PathValue("cart_id")
		itemID := r.PathValue("item_id")
		userID := r.PathValue("user_id")

		if err := h.cartService.DeleteLine(r.Context(), cartID, itemID, userID); err != nil {
			logger.Error("Failed to delete cart item",
				slog.String("cartId", cartID),
				slog.String("itemId", itemID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item deleted", slog.String("cartId", cartID), slog.String("itemId", itemID))
		w.WriteHeader(http.StatusNoContent)
	}
}
