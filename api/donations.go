package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/bishnupur-union/society-backend/stripe"
	stripeapi "github.com/stripe/stripe-go/v81"
	"go.vocdoni.io/dvote/log"
)

// donationCheckoutHandler creates a Stripe hosted checkout session for a
// one-time donation and returns its URL.
func (a *API) donationCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if a.stripe == nil {
		errors.ErrStripeError.With("donations not configured").Write(w)
		return
	}
	checkoutRequest := &apicommon.DonationCheckoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(checkoutRequest); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if checkoutRequest.Amount <= 0 {
		errors.ErrInvalidDonationData.With("amount must be positive").Write(w)
		return
	}
	session, err := a.stripe.CreateDonationCheckout(checkoutRequest.Name, checkoutRequest.Email, checkoutRequest.Amount)
	if err != nil {
		if checkoutRequest.Amount < a.stripe.MinimumAmount() {
			errors.ErrInvalidDonationData.With("amount below the minimum").Write(w)
			return
		}
		errors.ErrStripeError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.DonationCheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// donationWebhookHandler receives the Stripe webhook events and records a
// Donation document when a checkout session completes. Webhook retries for
// an already recorded session are acknowledged without duplicating it.
func (a *API) donationWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if a.stripe == nil {
		errors.ErrStripeError.With("donations not configured").Write(w)
		return
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	event, err := a.stripe.ValidateWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		errors.ErrUnauthorized.Withf("invalid webhook signature: %v", err).Write(w)
		return
	}
	// only completed checkout sessions are relevant, acknowledge the rest
	if event.Type != stripeapi.EventTypeCheckoutSessionCompleted {
		apicommon.HTTPWriteOK(w)
		return
	}
	session, err := stripe.DecodeCheckoutSession(event)
	if err != nil {
		errors.ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	donation := &db.Donation{
		SessionID: session.ID,
		Name:      session.Metadata["donorName"],
		Amount:    session.AmountTotal,
		Currency:  string(session.Currency),
	}
	if session.CustomerDetails != nil {
		donation.Email = session.CustomerDetails.Email
	}
	if _, err := a.db.SetDonation(donation); err != nil {
		if err == db.ErrAlreadyExists {
			// webhook retry, already recorded
			apicommon.HTTPWriteOK(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	log.Infow("donation recorded", "session", session.ID, "amount", session.AmountTotal)
	apicommon.HTTPWriteOK(w)
}

// donationsListHandler returns every recorded donation, newest first.
func (a *API) donationsListHandler(w http.ResponseWriter, _ *http.Request) {
	donations, err := a.db.Donations()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, donations)
}
