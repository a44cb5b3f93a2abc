// Package stripe provides the Stripe integration for donations. It creates
// hosted checkout sessions and validates the webhook events that confirm a
// completed payment.
package stripe

import (
	"encoding/json"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v81"
	stripecheckoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	stripewebhook "github.com/stripe/stripe-go/v81/webhook"
)

// DefaultCurrency is the currency used for donations when the configuration
// does not set one.
const DefaultCurrency = "bdt"

// Config holds the Stripe API credentials and the redirect URLs of the
// hosted checkout flow.
type Config struct {
	APIKey        string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
	MinimumAmount int64
}

// Client wraps the Stripe API for the donation flow.
type Client struct {
	config *Config
}

// New creates a new Stripe client with the given configuration and sets the
// global API key.
func New(config *Config) *Client {
	stripeapi.Key = config.APIKey
	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	return &Client{config: config}
}

// MinimumAmount returns the minimum accepted donation amount in the smallest
// currency unit.
func (c *Client) MinimumAmount() int64 {
	return c.config.MinimumAmount
}

// CreateDonationCheckout creates a hosted checkout session for a one-time
// donation of the given amount, expressed in the smallest currency unit. The
// donor name travels in the session metadata so the webhook can recover it.
func (c *Client) CreateDonationCheckout(name, email string, amount int64) (*stripeapi.CheckoutSession, error) {
	if amount < c.config.MinimumAmount {
		return nil, fmt.Errorf("donation amount below the minimum")
	}
	params := &stripeapi.CheckoutSessionParams{
		Mode: stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{{
			PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripeapi.String(c.config.Currency),
				UnitAmount: stripeapi.Int64(amount),
				ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripeapi.String("Donation to the Bishnupur Union Society"),
				},
			},
			Quantity: stripeapi.Int64(1),
		}},
		SuccessURL: stripeapi.String(c.config.SuccessURL),
		CancelURL:  stripeapi.String(c.config.CancelURL),
		Metadata:   map[string]string{"donorName": name},
	}
	if email != "" {
		params.CustomerEmail = stripeapi.String(email)
	}
	session, err := stripecheckoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("could not create checkout session: %w", err)
	}
	return session, nil
}

// ValidateWebhookEvent validates the webhook payload signature and parses the
// event.
func (c *Client) ValidateWebhookEvent(payload []byte, signatureHeader string) (*stripeapi.Event, error) {
	event, err := stripewebhook.ConstructEvent(payload, signatureHeader, c.config.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature validation failed: %w", err)
	}
	return &event, nil
}

// DecodeCheckoutSession extracts the checkout session carried by a
// checkout.session.completed event.
func DecodeCheckoutSession(event *stripeapi.Event) (*stripeapi.CheckoutSession, error) {
	if event.Type != stripeapi.EventTypeCheckoutSessionCompleted {
		return nil, fmt.Errorf("unexpected event type %s", event.Type)
	}
	session := &stripeapi.CheckoutSession{}
	if err := json.Unmarshal(event.Data.Raw, session); err != nil {
		return nil, fmt.Errorf("could not decode checkout session: %w", err)
	}
	return session, nil
}
