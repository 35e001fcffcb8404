package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonio25x/pet-cheap/internal/model"
	"github.com/antonio25x/pet-cheap/internal/storage"
	"github.com/antonio25x/pet-cheap/internal/validation"
)

type fakePayments struct {
	calls        int
	lastAmount   int64
	lastCurrency string
	lastMetadata map[string]string
	lastKey      string
	err          error
}

func (f *fakePayments) CreateIntent(_ context.Context, amountMinor int64, currency string, metadata map[string]string, idempotencyKey string) (*PaymentIntent, error) {
	f.calls++
	f.lastAmount = amountMinor
	f.lastCurrency = currency
	f.lastMetadata = metadata
	f.lastKey = idempotencyKey
	if f.err != nil {
		return nil, f.err
	}
	return &PaymentIntent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret"}, nil
}

func newCheckoutFixture(t *testing.T) (CheckoutService, *storage.MemoryStore, *fakePayments) {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.CreateProduct(&model.Product{
		ID: "premium-dog-food", Name: "Premium Dog Food", Price: "29.99", InStock: 50,
	}))
	require.NoError(t, store.CreateProduct(&model.Product{
		ID: "cat-toy-set", Name: "Interactive Cat Toy Set", Price: "19.99", InStock: 30,
	}))
	payments := &fakePayments{}
	return NewCheckoutService(store, payments, "usd"), store, payments
}

func checkoutRequest(amount float64, items ...validation.CartItemInput) validation.CreatePaymentIntent {
	return validation.CreatePaymentIntent{
		Amount: amount,
		Items:  items,
		ShippingAddress: validation.ShippingAddress{
			FirstName: "John", LastName: "Doe", Address: "123 St",
			City: "City", State: "State", ZipCode: "12345",
		},
	}
}

func TestCreatePaymentIntentSuccess(t *testing.T) {
	svc, store, payments := newCheckoutFixture(t)

	req := checkoutRequest(59.98, validation.CartItemInput{ID: "premium-dog-food", Quantity: 2})
	res, err := svc.CreatePaymentIntent(context.Background(), req, "")
	require.NoError(t, err)

	assert.Equal(t, "pi_test_123_secret", res.ClientSecret)
	require.NotEmpty(t, res.OrderID)

	order, err := store.GetOrder(res.OrderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "59.98", order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "pi_test_123", order.StripePaymentIntentID)
	assert.Empty(t, order.UserID)
	assert.Contains(t, order.ShippingAddress, `"zipCode":"12345"`)

	items, err := store.GetOrderItems(res.OrderID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "premium-dog-food", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "29.99", items[0].Price)

	assert.Equal(t, 1, payments.calls)
	assert.Equal(t, int64(5998), payments.lastAmount)
	assert.Equal(t, "usd", payments.lastCurrency)
	assert.Equal(t, res.OrderID, payments.lastKey)
	assert.Equal(t, res.OrderID, payments.lastMetadata["orderId"])
}

func TestCreatePaymentIntentWithinTolerance(t *testing.T) {
	svc, _, _ := newCheckoutFixture(t)

	// one cent of rounding slack is accepted
	req := checkoutRequest(59.99, validation.CartItemInput{ID: "premium-dog-food", Quantity: 2})
	res, err := svc.CreatePaymentIntent(context.Background(), req, "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.OrderID)
}

func TestCreatePaymentIntentAmountMismatch(t *testing.T) {
	svc, store, payments := newCheckoutFixture(t)

	// computed total is 59.98; a claimed 50.00 is tampering
	req := checkoutRequest(50.00, validation.CartItemInput{ID: "premium-dog-food", Quantity: 2})
	_, err := svc.CreatePaymentIntent(context.Background(), req, "")
	require.ErrorIs(t, err, ErrAmountMismatch)

	// nothing was charged and nothing was written
	assert.Equal(t, 0, payments.calls)
	order, err := store.GetOrderByPaymentIntentID("pi_test_123")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestCreatePaymentIntentMultipleItems(t *testing.T) {
	svc, store, _ := newCheckoutFixture(t)

	// 29.99*1 + 19.99*3 = 89.96
	req := checkoutRequest(89.96,
		validation.CartItemInput{ID: "premium-dog-food", Quantity: 1},
		validation.CartItemInput{ID: "cat-toy-set", Quantity: 3},
	)
	res, err := svc.CreatePaymentIntent(context.Background(), req, "user-1")
	require.NoError(t, err)

	order, err := store.GetOrder(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)

	items, err := store.GetOrderItems(res.OrderID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreatePaymentIntentUnknownProduct(t *testing.T) {
	svc, _, payments := newCheckoutFixture(t)

	req := checkoutRequest(10.00, validation.CartItemInput{ID: "no-such-product", Quantity: 1})
	_, err := svc.CreatePaymentIntent(context.Background(), req, "")

	var pnf *ProductNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Equal(t, "no-such-product", pnf.ID)
	assert.Equal(t, "Product no-such-product not found", pnf.Error())
	assert.Equal(t, 0, payments.calls)
}

func TestCreatePaymentIntentInvalidPayload(t *testing.T) {
	svc, _, payments := newCheckoutFixture(t)

	tests := []struct {
		name string
		req  validation.CreatePaymentIntent
	}{
		{"negative amount", checkoutRequest(-10, validation.CartItemInput{ID: "premium-dog-food", Quantity: 1})},
		{"no items", checkoutRequest(10)},
		{"zero quantity", checkoutRequest(29.99, validation.CartItemInput{ID: "premium-dog-food", Quantity: 0})},
		{"missing address field", func() validation.CreatePaymentIntent {
			r := checkoutRequest(29.99, validation.CartItemInput{ID: "premium-dog-food", Quantity: 1})
			r.ShippingAddress.City = ""
			return r
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePaymentIntent(context.Background(), tt.req, "")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
		})
	}
	assert.Equal(t, 0, payments.calls)
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	svc, store, payments := newCheckoutFixture(t)
	payments.err = errors.New("stripe is down")

	req := checkoutRequest(59.98, validation.CartItemInput{ID: "premium-dog-food", Quantity: 2})
	_, err := svc.CreatePaymentIntent(context.Background(), req, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe is down")

	// order id was pre-generated but no order row exists without an intent
	require.NotEmpty(t, payments.lastKey)
	order, err := store.GetOrder(payments.lastKey)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderItemPriceIsSnapshotted(t *testing.T) {
	svc, store, _ := newCheckoutFixture(t)

	req := checkoutRequest(29.99, validation.CartItemInput{ID: "premium-dog-food", Quantity: 1})
	res, err := svc.CreatePaymentIntent(context.Background(), req, "")
	require.NoError(t, err)

	// a later catalog edit must not rewrite order history
	p, err := store.GetProduct("premium-dog-food")
	require.NoError(t, err)
	p.Price = "99.99"
	require.NoError(t, store.UpdateProduct(p))

	items, err := store.GetOrderItems(res.OrderID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "29.99", items[0].Price)
}
