package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	appErrors "github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	repository "github.com/storefront-labs/storefront-api/internal/repositories"
)

// Fixed 10% surcharge on the subtotal. Not configurable.
var serviceFeeRate = decimal.New(10, -2)

var oneHundred = decimal.NewFromInt(100)

const anonymousUserSentinel = "undefined"

type CartService interface {
	AddToCart(ctx context.Context, req *models.AddToCartRequest) (*models.CartLine, bool, error)
	ListLines(ctx context.Context, cartID, userID string) ([]models.CartLine, error)
	Totals(ctx context.Context, cartID, userID string) (*models.CartTotals, error)
	DeleteLine(ctx context.Context, cartID, itemID, userID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
}

func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository, userRepo repository.UserRepository) CartService {
	return &cartService{cartRepo: cartRepo, catalogRepo: catalogRepo, userRepo: userRepo}
}

// AddToCart upserts one line keyed by (cart_id, product). The returned bool is
// true when a new line was created, false when an existing one was updated.
func (s *cartService) AddToCart(ctx context.Context, req *models.AddToCartRequest) (*models.CartLine, bool, error) {

	productID, err := strconv.ParseInt(req.ProductID, 10, 64)
	if err != nil {
		return nil, false, appErrors.AddValidationError("product_id", "must be an integer").WithError(err)
	}

	qty, err := strconv.Atoi(req.Qty)
	if err != nil {
		return nil, false, appErrors.AddValidationError("qty", "must be an integer").WithError(err)
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, false, appErrors.AddValidationError("price", "must be a decimal number").WithError(err)
	}

	shipping, err := decimal.NewFromString(req.ShippingAmount)
	if err != nil {
		return nil, false, appErrors.AddValidationError("shipping_amount", "must be a decimal number").WithError(err)
	}

	product, err := s.catalogRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.NotFoundError("Product not found or not published yet").WithError(err)
		}
		return nil, false, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.Status != models.ProductStatusPublished {
		return nil, false, appErrors.NotFoundError("Product not found or not published yet")
	}

	userID, err := s.resolveCartUser(ctx, req.UserID)
	if err != nil {
		return nil, false, err
	}

	taxRate, err := s.taxRateForCountry(ctx, req.Country)
	if err != nil {
		return nil, false, err
	}

	line := &models.CartLine{
		CartID:    req.CartID,
		ProductID: product.ID,
		UserID:    userID,
		Qty:       qty,
		Price:     price,
		Country:   req.Country,
		Size:      req.Size,
		Color:     req.Color,
	}
	computeLineTotals(line, shipping, taxRate)

	existing, err := s.cartRepo.GetLine(ctx, req.CartID, product.ID)

	switch {
	case err == nil:
		line.ID = existing.ID
		line.CreatedAt = existing.CreatedAt

		if err := s.cartRepo.UpdateLine(ctx, line); err != nil {
			return nil, false, appErrors.DatabaseError("Failed to update cart").WithError(err)
		}

		return line, false, nil

	case errors.Is(err, sql.ErrNoRows):
		if err := s.cartRepo.CreateLine(ctx, line); err != nil {
			return nil, false, appErrors.DatabaseError("Failed to add product to cart").WithError(err)
		}

		return line, true, nil

	default:
		return nil, false, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}
}

func (s *cartService) ListLines(ctx context.Context, cartID, userID string) ([]models.CartLine, error) {

	scope, err := s.resolveScopeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListByCartID(ctx, cartID, scope)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return lines, nil
}

// Totals sums the five derived fields across the cart. An unknown cart id is
// not an error; every aggregate is zero.
func (s *cartService) Totals(ctx context.Context, cartID, userID string) (*models.CartTotals, error) {

	scope, err := s.resolveScopeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.cartRepo.Totals(ctx, cartID, scope)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to sum cart totals").WithError(err)
	}

	return totals, nil
}

func (s *cartService) DeleteLine(ctx context.Context, cartID, itemID, userID string) error {

	id, err := strconv.ParseInt(itemID, 10, 64)
	if err != nil {
		return appErrors.AddValidationError("item_id", "must be an integer").WithError(err)
	}

	scope, err := s.resolveScopeUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.cartRepo.DeleteLine(ctx, cartID, id, scope); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Cart item not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to delete cart item").WithError(err)
	}

	return nil
}

// resolveCartUser maps the cart-add user_id payload to an owner. Empty and the
// client's literal "undefined" both mean anonymous; anything else has to
// resolve against the identity directory.
func (s *cartService) resolveCartUser(ctx context.Context, raw string) (*int64, error) {

	if raw == "" || raw == anonymousUserSentinel {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, appErrors.NotFoundError("User not found").WithError(err)
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return &user.ID, nil
}

// resolveScopeUser handles the optional {user_id} path segment on cart reads
// and deletes. Empty means unscoped; a present id must exist.
func (s *cartService) resolveScopeUser(ctx context.Context, raw string) (*int64, error) {

	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, appErrors.AddValidationError("user_id", "must be an integer").WithError(err)
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return &user.ID, nil
}

func (s *cartService) taxRateForCountry(ctx context.Context, country string) (decimal.Decimal, error) {

	tax, err := s.catalogRepo.GetTaxByCountry(ctx, country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, appErrors.DatabaseError("Failed to fetch tax rate").WithError(err)
	}

	return tax.Rate.Div(oneHundred), nil
}

// computeLineTotals fills the five derived fields. shipping is the per-unit
// amount from the payload; taxRate the fractional rate (percentage / 100).
//
//	sub_total       = price * qty
//	shipping_amount = shipping * qty
//	tax_fee         = qty * taxRate
//	service_fee     = sub_total * 10%
//	total           = sum of the above four
func computeLineTotals(line *models.CartLine, shipping, taxRate decimal.Decimal) {

	qty := decimal.NewFromInt(int64(line.Qty))

	line.SubTotal = line.Price.Mul(qty)
	line.ShippingAmount = shipping.Mul(qty)
	line.TaxFee = qty.Mul(taxRate)
	line.ServiceFee = line.SubTotal.Mul(serviceFeeRate)
	line.Total = line.SubTotal.Add(line.ShippingAmount).Add(line.TaxFee).Add(line.ServiceFee)
}
