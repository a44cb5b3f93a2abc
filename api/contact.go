package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/bishnupur-union/society-backend/internal"
	"github.com/bishnupur-union/society-backend/notifications/mailtemplates"
)

// contactHandler relays a contact form submission to the association inbox.
// The sender address goes in the Reply-To header so the inbox can answer
// directly.
func (a *API) contactHandler(w http.ResponseWriter, r *http.Request) {
	if a.mail == nil || a.contactAddress == "" {
		errors.ErrMailServiceFailure.With("contact relay not configured").Write(w)
		return
	}
	contactRequest := &apicommon.ContactRequest{}
	if err := json.NewDecoder(r.Body).Decode(contactRequest); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if !internal.ValidEmail(contactRequest.Email) {
		errors.ErrEmailMalformed.Write(w)
		return
	}
	if contactRequest.Name == "" || contactRequest.Message == "" {
		errors.ErrInvalidContentData.With("name and message are required").Write(w)
		return
	}
	notification, err := mailtemplates.ContactRelayNotification.ExecTemplate(contactRequest)
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	notification.ToAddress = a.contactAddress
	notification.ReplyTo = contactRequest.Email
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	if err := a.mail.SendNotification(ctx, notification); err != nil {
		errors.ErrMailServiceFailure.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}
