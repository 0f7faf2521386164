package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/storefront-labs/storefront-api/internal/models"
	"github.com/storefront-labs/storefront-api/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByOID(ctx context.Context, oid string) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder persists the order, its items, its vendor set and the aggregate
// columns inside one transaction. Either everything commits or nothing does.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	// Order shell first, to obtain the internal id. Aggregates are written in a
	// second pass once every item is in, mirroring how they are accumulated.
	query := `
		INSERT INTO orders (oid, buyer_id, payment_status, full_name, email, mobile, address, city, state, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.OID, order.BuyerID, order.PaymentStatus, order.FullName, order.Email,
		order.Mobile, order.Address, order.City, order.State, order.Country).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, vendor_id, qty, color, size, price, sub_total, shipping_amount, tax_fee, service_fee, total, initial_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id, created_at
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err := tx.QueryRowContext(dbCtx, itemQuery, order.ID, item.ProductID, item.VendorID, item.Qty, item.Color,
			item.Size, item.Price, item.SubTotal, item.ShippingAmount, item.TaxFee, item.ServiceFee,
			item.Total, item.InitialTotal).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	// Vendor membership is a set: a vendor contributing several lines joins once.
	vendorQuery := `
		INSERT INTO order_vendors (order_id, vendor_id)
		VALUES ($1, $2)
		ON CONFLICT (order_id, vendor_id) DO NOTHING
	`

	for _, vendorID := range order.VendorIDs {
		if _, err := tx.ExecContext(dbCtx, vendorQuery, order.ID, vendorID); err != nil {
			return fmt.Errorf("failed to insert order vendor: %w", err)
		}
	}

	aggregateQuery := `
		UPDATE orders
		SET sub_total = $1, shipping_amount = $2, tax_fee = $3, service_fee = $4, initial_total = $5, total = $6, updated_at = NOW()
		WHERE id = $7
	`

	if _, err := tx.ExecContext(dbCtx, aggregateQuery, order.SubTotal, order.ShippingAmount, order.TaxFee,
		order.ServiceFee, order.InitialTotal, order.Total, order.ID); err != nil {
		return fmt.Errorf("failed to write order aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByOID(ctx context.Context, oid string) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT id, oid, buyer_id, payment_status, full_name, email, mobile, address, city, state, country, sub_total, shipping_amount, tax_fee, service_fee, initial_total, total, created_at, updated_at
		FROM orders
		WHERE oid = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, oid).Scan(&order.ID, &order.OID, &order.BuyerID, &order.PaymentStatus,
		&order.FullName, &order.Email, &order.Mobile, &order.Address, &order.City, &order.State, &order.Country,
		&order.SubTotal, &order.ShippingAmount, &order.TaxFee, &order.ServiceFee, &order.InitialTotal, &order.Total,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	itemQuery := `
		SELECT id, product_id, vendor_id, qty, color, size, price, sub_total, shipping_amount, tax_fee, service_fee, total, initial_total, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, itemQuery, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {
		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.VendorID, &item.Qty, &item.Color, &item.Size, &item.Price,
			&item.SubTotal, &item.ShippingAmount, &item.TaxFee, &item.ServiceFee, &item.Total, &item.InitialTotal, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = order.ID

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	order.Items = items

	vendorQuery := `
		SELECT vendor_id
		FROM order_vendors
		WHERE order_id = $1
		ORDER BY vendor_id
	`

	vendorRows, err := r.DB.QueryContext(dbCtx, vendorQuery, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order vendors: %w", err)
	}

	defer vendorRows.Close()

	for vendorRows.Next() {
		var vendorID int64

		if err := vendorRows.Scan(&vendorID); err != nil {
			return nil, fmt.Errorf("failed to scan order vendor: %w", err)
		}

		order.VendorIDs = append(order.VendorIDs, vendorID)
	}

	if err := vendorRows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}
