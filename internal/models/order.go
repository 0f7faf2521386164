package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// OrderItem freezes a cart line inside an order. Total and InitialTotal are
// equal at creation; only later adjustments outside this service make them
// diverge.
type OrderItem struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"order_id"`
	ProductID      int64           `json:"product_id"`
	VendorID       int64           `json:"vendor_id"`
	Qty            int             `json:"qty"`
	Color          string          `json:"color"`
	Size           string          `json:"size"`
	Price          decimal.Decimal `json:"price"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	TaxFee         decimal.Decimal `json:"tax_fee"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	Total          decimal.Decimal `json:"total"`
	InitialTotal   decimal.Decimal `json:"initial_total"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Order is immutable once created, except for payment status transitions
// driven elsewhere. OID is the external-facing identifier; ID stays internal.
type Order struct {
	ID             int64           `json:"-"`
	OID            string          `json:"oid"`
	BuyerID        *int64          `json:"buyer_id,omitempty"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Mobile         string          `json:"mobile"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Country        string          `json:"country"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	TaxFee         decimal.Decimal `json:"tax_fee"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	InitialTotal   decimal.Decimal `json:"initial_total"`
	Total          decimal.Decimal `json:"total"`
	Items          []OrderItem     `json:"items"`
	VendorIDs      []int64         `json:"vendor_ids"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PlaceOrderRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Country  string `json:"country" validate:"required"`
	CartID   string `json:"cart_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
}

type PlaceOrderResponse struct {
	Message  string `json:"message"`
	OrderOID string `json:"order_oid"`
}
