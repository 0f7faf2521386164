package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusPublished   ProductStatus = "published"
	ProductStatusUnpublished ProductStatus = "unpublished"
	ProductStatusDraft       ProductStatus = "draft"
	ProductStatusDisabled    ProductStatus = "disabled"
)

type Category struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Vendor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      ProductStatus   `json:"status"`
	Featured    bool            `json:"featured"`
	ImageURL    string          `json:"image_url"`
	VendorID    int64           `json:"vendor_id"`
	CategoryID  int64           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Category    *Category       `json:"category,omitempty"`
}

// Tax maps a country name to a percentage rate, e.g. 7.5 meaning 7.5%.
type Tax struct {
	ID      int64           `json:"id"`
	Country string          `json:"country"`
	Rate    decimal.Decimal `json:"rate"`
	Active  bool            `json:"active"`
}
