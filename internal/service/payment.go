package service

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// PaymentIntent is the processor's record of an intended charge. The
// client secret completes authorization in the browser.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProvider creates payment intents with the external processor.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string, idempotencyKey string) (*PaymentIntent, error)
}

type stripeProvider struct {
	api *client.API
}

// NewStripeProvider builds the Stripe-backed provider. The HTTP client
// carries a bounded timeout so a processor hang cannot stall a checkout
// indefinitely.
func NewStripeProvider(secretKey string) PaymentProvider {
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			HTTPClient: &http.Client{Timeout: 15 * time.Second},
		}),
	})
	return &stripeProvider{api: api}
}

func (p *stripeProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string, idempotencyKey string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
