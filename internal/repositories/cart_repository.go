package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/storefront-labs/storefront-api/internal/models"
	"github.com/storefront-labs/storefront-api/internal/utils"
)

type CartRepository interface {
	GetLine(ctx context.Context, cartID string, productID int64) (*models.CartLine, error)
	CreateLine(ctx context.Context, line *models.CartLine) error
	UpdateLine(ctx context.Context, line *models.CartLine) error
	ListByCartID(ctx context.Context, cartID string, userID *int64) ([]models.CartLine, error)
	Totals(ctx context.Context, cartID string, userID *int64) (*models.CartTotals, error)
	DeleteLine(ctx context.Context, cartID string, itemID int64, userID *int64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) GetLine(ctx context.Context, cartID string, productID int64) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cart_id, product_id, user_id, qty, price, sub_total, shipping_amount, tax_fee, service_fee, total, country, size, color, created_at, updated_at
		FROM cart_lines
		WHERE cart_id = $1 AND product_id = $2
	`

	line := &models.CartLine{}

	err := r.DB.QueryRowContext(dbCtx, query, cartID, productID).Scan(&line.ID, &line.CartID, &line.ProductID, &line.UserID,
		&line.Qty, &line.Price, &line.SubTotal, &line.ShippingAmount, &line.TaxFee, &line.ServiceFee, &line.Total,
		&line.Country, &line.Size, &line.Color, &line.CreatedAt, &line.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return line, nil
}

func (r *cartRepository) CreateLine(ctx context.Context, line *models.CartLine) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_lines (cart_id, product_id, user_id, qty, price, sub_total, shipping_amount, tax_fee, service_fee, total, country, size, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, line.CartID, line.ProductID, line.UserID, line.Qty, line.Price,
		line.SubTotal, line.ShippingAmount, line.TaxFee, line.ServiceFee, line.Total,
		line.Country, line.Size, line.Color).Scan(&line.ID, &line.CreatedAt, &line.UpdatedAt)
}

func (r *cartRepository) UpdateLine(ctx context.Context, line *models.CartLine) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_lines
		SET user_id = $1, qty = $2, price = $3, sub_total = $4, shipping_amount = $5, tax_fee = $6, service_fee = $7, total = $8, country = $9, size = $10, color = $11, updated_at = NOW()
		WHERE cart_id = $12 AND product_id = $13
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, line.UserID, line.Qty, line.Price, line.SubTotal, line.ShippingAmount,
		line.TaxFee, line.ServiceFee, line.Total, line.Country, line.Size, line.Color,
		line.CartID, line.ProductID).Scan(&line.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to update the cart line: %w", err)
	}

	return nil
}

func (r *cartRepository) ListByCartID(ctx context.Context, cartID string, userID *int64) ([]models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cart_id, product_id, user_id, qty, price, sub_total, shipping_amount, tax_fee, service_fee, total, country, size, color, created_at, updated_at
		FROM cart_lines
		WHERE cart_id = $1 AND ($2::bigint IS NULL OR user_id = $2)
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	defer rows.Close()

	var lines []models.CartLine

	for rows.Next() {
		var line models.CartLine

		err := rows.Scan(&line.ID, &line.CartID, &line.ProductID, &line.UserID, &line.Qty, &line.Price,
			&line.SubTotal, &line.ShippingAmount, &line.TaxFee, &line.ServiceFee, &line.Total,
			&line.Country, &line.Size, &line.Color, &line.CreatedAt, &line.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Totals pushes the aggregation down to SQL. An empty or unknown cart_id sums
// to zero on every column rather than erroring.
func (r *cartRepository) Totals(ctx context.Context, cartID string, userID *int64) (*models.CartTotals, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COALESCE(SUM(shipping_amount), 0), COALESCE(SUM(tax_fee), 0), COALESCE(SUM(service_fee), 0), COALESCE(SUM(sub_total), 0), COALESCE(SUM(total), 0)
		FROM cart_lines
		WHERE cart_id = $1 AND ($2::bigint IS NULL OR user_id = $2)
	`

	totals := &models.CartTotals{}

	err := r.DB.QueryRowContext(dbCtx, query, cartID, userID).Scan(&totals.Shipping, &totals.Tax, &totals.ServiceFee, &totals.SubTotal, &totals.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to sum cart totals: %w", err)
	}

	return totals, nil
}

func (r *cartRepository) DeleteLine(ctx context.Context, cartID string, itemID int64, userID *int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		DELETE FROM cart_lines
		WHERE id = $1 AND cart_id = $2 AND ($3::bigint IS NULL OR user_id = $3)
	`

	result, err := r.DB.ExecContext(dbCtx, query, itemID, cartID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
