package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/storefront-labs/storefront-api/internal/cache"
	appErrors "github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	repository "github.com/storefront-labs/storefront-api/internal/repositories"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type catalogService struct {
	repo       repository.CatalogRepository
	cache      cache.Cache
	catalogTTL time.Duration
}

func NewCatalogService(repo repository.CatalogRepository, cacheStore cache.Cache, catalogTTL time.Duration) CatalogService {
	return &catalogService{repo: repo, cache: cacheStore, catalogTTL: catalogTTL}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	cacheKey := cache.Key(cache.CategoryKeyPrefix, "all")

	var cached []models.Category

	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, categories, s.catalogTTL); err != nil {
		slog.Warn("Failed to cache categories", slog.String("error", err.Error()))
	}

	return categories, nil
}

// page means "page number requested"
// pageSize means "number of products to be displayed per page"
func (s *catalogService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {

	products, total, err := s.repo.ListProducts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, slug)

	var cached models.Product

	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, product, s.catalogTTL); err != nil {
		slog.Warn("Failed to cache product", slog.String("slug", slug), slog.String("error", err.Error()))
	}

	return product, nil
}
