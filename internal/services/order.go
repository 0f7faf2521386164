package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"github.com/storefront-labs/storefront-api/internal/cache"
	appErrors "github.com/storefront-labs/storefront-api/internal/errors"
	"github.com/storefront-labs/storefront-api/internal/models"
	repository "github.com/storefront-labs/storefront-api/internal/repositories"
)

const anonymousBuyerSentinel = "0"

const oidAlphabet = "abcdefghijklmnopqrstuvwxyz"

const oidLength = 10

type OrderService interface {
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.Order, error)
	GetCheckout(ctx context.Context, oid string) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	cache       cache.Cache
	checkoutTTL time.Duration
	sanitizer   *bluemonday.Policy
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, cacheStore cache.Cache, checkoutTTL time.Duration) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		cache:       cacheStore,
		checkoutTTL: checkoutTTL,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// PlaceOrder snapshots every cart line sharing req.CartID into an immutable
// order. The scoping key here is the cart id alone; lines submitted by other
// users under the same cart id are swept in on purpose. Cart lines survive
// placement.
func (s *orderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.Order, error) {

	buyerID, err := s.resolveBuyer(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListByCartID(ctx, req.CartID, nil)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	order := &models.Order{
		OID:           newOrderOID(),
		BuyerID:       buyerID,
		PaymentStatus: models.PaymentStatusProcessing,
		FullName:      s.sanitizer.Sanitize(req.FullName),
		Email:         s.sanitizer.Sanitize(req.Email),
		Mobile:        s.sanitizer.Sanitize(req.Mobile),
		Address:       s.sanitizer.Sanitize(req.Address),
		City:          s.sanitizer.Sanitize(req.City),
		State:         s.sanitizer.Sanitize(req.State),
		Country:       s.sanitizer.Sanitize(req.Country),
	}

	totalShipping := decimal.Zero
	totalTax := decimal.Zero
	totalServiceFee := decimal.Zero
	totalSubTotal := decimal.Zero
	totalInitial := decimal.Zero
	totalTotal := decimal.Zero

	seenVendors := make(map[int64]struct{})

	for _, line := range lines {

		product, err := s.catalogRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError("Product not found: " + strconv.FormatInt(line.ProductID, 10)).WithError(err)
			}
			return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID:      line.ProductID,
			VendorID:       product.VendorID,
			Qty:            line.Qty,
			Color:          line.Color,
			Size:           line.Size,
			Price:          line.Price,
			SubTotal:       line.SubTotal,
			ShippingAmount: line.ShippingAmount,
			TaxFee:         line.TaxFee,
			ServiceFee:     line.ServiceFee,
			Total:          line.Total,
			InitialTotal:   line.Total,
		})

		totalShipping = totalShipping.Add(line.ShippingAmount)
		totalTax = totalTax.Add(line.TaxFee)
		totalServiceFee = totalServiceFee.Add(line.ServiceFee)
		totalSubTotal = totalSubTotal.Add(line.SubTotal)
		totalInitial = totalInitial.Add(line.Total)
		totalTotal = totalTotal.Add(line.Total)

		if _, ok := seenVendors[product.VendorID]; !ok {
			seenVendors[product.VendorID] = struct{}{}
			order.VendorIDs = append(order.VendorIDs, product.VendorID)
		}
	}

	order.SubTotal = totalSubTotal
	order.ShippingAmount = totalShipping
	order.TaxFee = totalTax
	order.ServiceFee = totalServiceFee
	order.InitialTotal = totalInitial
	order.Total = totalTotal

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetCheckout(ctx context.Context, oid string) (*models.Order, error) {

	cacheKey := cache.Key(cache.CheckoutKeyPrefix, oid)

	var cached models.Order

	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	order, err := s.orderRepo.GetOrderByOID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	// Orders never change after placement within this service, so a stale
	// entry cannot disagree with the store.
	if err := s.cache.Set(ctx, cacheKey, order, s.checkoutTTL); err != nil {
		slog.Warn("Failed to cache checkout order", slog.String("oid", oid), slog.String("error", err.Error()))
	}

	return order, nil
}

// resolveBuyer parses the order payload's user_id. "0" means anonymous; a
// non-integer value is a client error, an unknown id is not found.
func (s *orderService) resolveBuyer(ctx context.Context, raw string) (*int64, error) {

	if raw == anonymousBuyerSentinel {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, appErrors.ValidationError("Invalid User ID").WithError(err)
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

// newOrderOID generates the external-facing order identifier: ten lowercase
// letters derived from fresh UUID entropy.
func newOrderOID() string {

	id := uuid.New()

	b := make([]byte, oidLength)
	for i := range b {
		b[i] = oidAlphabet[int(id[i])%len(oidAlphabet)]
	}

	return string(b)
}
