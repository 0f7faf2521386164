package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/storefront-labs/storefront-api/internal/models"
	"github.com/storefront-labs/storefront-api/internal/utils"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetTaxByCountry(ctx context.Context, country string) (*models.Tax, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, title, slug, active, created_at, updated_at
		FROM categories
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		var category models.Category

		err := rows.Scan(&category.ID, &category.Title, &category.Slug, &category.Active, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products`

	err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT p.id, p.title, p.slug, p.description, p.price,
		p.status, p.featured, p.image_url, p.vendor_id, p.category_id, p.created_at, p.updated_at,
		c.id, c.title, c.slug, c.active, c.created_at, c.updated_at
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}
		category := &models.Category{}

		err := rows.Scan(&product.ID, &product.Title, &product.Slug, &product.Description, &product.Price,
			&product.Status, &product.Featured, &product.ImageURL, &product.VendorID, &product.CategoryID, &product.CreatedAt, &product.UpdatedAt,
			&category.ID, &category.Title, &category.Slug, &category.Active, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}

		product.Category = category
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *catalogRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, title, slug, description, price, status, featured, image_url, vendor_id, category_id, created_at, updated_at
		FROM products
		WHERE slug = $1
	`

	product := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, query, slug).Scan(&product.ID, &product.Title, &product.Slug, &product.Description,
		&product.Price, &product.Status, &product.Featured, &product.ImageURL, &product.VendorID, &product.CategoryID,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, title, slug, description, price, status, featured, image_url, vendor_id, category_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Title, &product.Slug, &product.Description,
		&product.Price, &product.Status, &product.Featured, &product.ImageURL, &product.VendorID, &product.CategoryID,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) GetTaxByCountry(ctx context.Context, country string) (*models.Tax, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, country, rate, active
		FROM taxes
		WHERE country = $1 AND active = TRUE
	`

	tax := &models.Tax{}

	err := r.DB.QueryRowContext(dbCtx, query, country).Scan(&tax.ID, &tax.Country, &tax.Rate, &tax.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return tax, nil
}
