package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one (cart_id, product) pair. A cart never holds two lines for
// the same pair; a repeated add overwrites the existing line.
type CartLine struct {
	ID             int64           `json:"id"`
	CartID         string          `json:"cart_id"`
	ProductID      int64           `json:"product_id"`
	UserID         *int64          `json:"user_id,omitempty"`
	Qty            int             `json:"qty"`
	Price          decimal.Decimal `json:"price"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	TaxFee         decimal.Decimal `json:"tax_fee"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	Total          decimal.Decimal `json:"total"`
	Country        string          `json:"country"`
	Size           string          `json:"size"`
	Color          string          `json:"color"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AddToCartRequest carries the raw client payload. Numeric fields arrive as
// strings and are coerced by the cart service; a non-numeric value is a
// validation failure, not a silent zero.
type AddToCartRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	UserID         string `json:"user_id"`
	Qty            string `json:"qty" validate:"required"`
	Price          string `json:"price" validate:"required"`
	ShippingAmount string `json:"shipping_amount" validate:"required"`
	Country        string `json:"country"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	CartID         string `json:"cart_id" validate:"required"`
}

type AddToCartResponse struct {
	Message string `json:"message"`
}

// CartTotals aggregates the derived fields across every line in a cart.
type CartTotals struct {
	Shipping   decimal.Decimal `json:"shipping"`
	Tax        decimal.Decimal `json:"tax"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	SubTotal   decimal.Decimal `json:"sub_total"`
	Total      decimal.Decimal `json:"total"`
}

func ZeroCartTotals() *CartTotals {
	return &CartTotals{
		Shipping:   decimal.Zero,
		Tax:        decimal.Zero,
		ServiceFee: decimal.Zero,
		SubTotal:   decimal.Zero,
		Total:      decimal.Zero,
	}
}
