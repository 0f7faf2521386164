package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/storefront-labs/storefront-api/internal/api/middleware"
	"github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	service "github.com/storefront-labs/storefront-api/internal/services"
	"github.com/storefront-labs/storefront-api/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories godoc
//	@Summary		List categories
//	@Description	Returns every catalog category.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.Category}
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// ListProducts godoc
//	@Summary		List products with pagination
//	@Description	Returns a paginated product listing in the read shape.
//	@Tags			Catalog
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default: 1)"
//	@Param			pageSize	query		int	false	"Items per page (default: 10, max: 100)"
//	@Success		200	{object}	response.APIResponse{data=models.PaginatedResponse}
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		products, total, err := h.catalogService.ListProducts(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed successfully", slog.Int("count", len(products)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// GetProduct godoc
//	@Summary		Get a product by slug
//	@Description	Returns a single product in the read shape.
//	@Tags			Catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Product slug"
//	@Success		200	{object}	response.APIResponse{data=models.Product}
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/products/{slug} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, errors.BadRequestError("Product slug is required"))
			return
		}

		product, err := h.catalogService.GetProductBySlug(r.Context(), slug)
		if err != nil {
			logger.Error("Failed to get product", slog.String("slug", slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
