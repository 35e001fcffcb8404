package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/antonio25x/pet-cheap/internal/model"
	"github.com/antonio25x/pet-cheap/internal/storage"
	"github.com/antonio25x/pet-cheap/internal/validation"
)

// amountTolerance is the currency rounding slack allowed between the
// client-claimed total and the recomputed one.
var amountTolerance = decimal.NewFromFloat(0.01)

var minorUnits = decimal.NewFromInt(100)

// CheckoutResult is returned to the client so it can complete the payment
// with the processor's client SDK.
type CheckoutResult struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

// CheckoutService is the single place where monetary correctness is
// enforced: totals are recomputed from authoritative catalog prices and a
// deviation beyond tolerance rejects the whole request before any write.
type CheckoutService interface {
	CreatePaymentIntent(ctx context.Context, req validation.CreatePaymentIntent, userID string) (*CheckoutResult, error)
}

type checkoutService struct {
	store    storage.Storage
	payments PaymentProvider
	currency string
}

func NewCheckoutService(store storage.Storage, payments PaymentProvider, currency string) CheckoutService {
	return &checkoutService{store: store, payments: payments, currency: currency}
}

func (s *checkoutService) CreatePaymentIntent(ctx context.Context, req validation.CreatePaymentIntent, userID string) (*CheckoutResult, error) {
	if errs := validation.Validate(req); errs != nil {
		return nil, &ValidationError{Errors: errs}
	}

	// Recompute the total from stored prices. Per-item prices are never
	// client-supplied; only the aggregate amount is, and it is not trusted.
	claimed := decimal.NewFromFloat(req.Amount)
	total := decimal.Zero
	products := make(map[string]*model.Product, len(req.Items))
	for _, item := range req.Items {
		p, err := s.store.GetProduct(item.ID)
		if err != nil {
			return nil, fmt.Errorf("look up product %s: %w", item.ID, err)
		}
		if p == nil {
			return nil, &ProductNotFoundError{ID: item.ID}
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s has malformed price %q: %w", p.ID, p.Price, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		products[item.ID] = p
	}

	if total.Sub(claimed).Abs().GreaterThan(amountTolerance) {
		return nil, ErrAmountMismatch
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}
	addressJSON, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return nil, err
	}

	// The order id is generated before the processor call and doubles as
	// the idempotency key, so a crash between intent creation and order
	// persistence stays reconcilable from the intent metadata.
	orderID := uuid.NewString()
	intent, err := s.payments.CreateIntent(ctx,
		claimed.Mul(minorUnits).Round(0).IntPart(),
		s.currency,
		map[string]string{
			"orderId":         orderID,
			"items":           string(itemsJSON),
			"shippingAddress": string(addressJSON),
		},
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	order := &model.Order{
		ID:                    orderID,
		UserID:                userID,
		Total:                 claimed.StringFixed(2),
		Status:                model.OrderStatusPending,
		StripePaymentIntentID: intent.ID,
		ShippingAddress:       string(addressJSON),
	}
	if err := s.store.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	for _, item := range req.Items {
		oi := &model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     products[item.ID].Price,
		}
		if err := s.store.CreateOrderItem(oi); err != nil {
			return nil, fmt.Errorf("create order item: %w", err)
		}
	}

	return &CheckoutResult{ClientSecret: intent.ClientSecret, OrderID: order.ID}, nil
}
