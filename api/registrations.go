package api

import (
	"encoding/json"
	"net/http"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createRegistrationHandler creates an iftar event registration. The
// workflow state is forced to pending regardless of the request body.
func (a *API) createRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	registration := &db.EventRegistration{}
	if err := json.NewDecoder(r.Body).Decode(registration); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if registration.Name == "" || registration.Phone == "" {
		errors.ErrInvalidContentData.With("name and phone are required").Write(w)
		return
	}
	if !a.validator.ValidPhone(registration.Phone) {
		errors.ErrInvalidContentData.With("invalid phone number").Write(w)
		return
	}
	registrationID, err := a.db.CreateRegistration(registration)
	if err != nil {
		if err == db.ErrInvalidData {
			errors.ErrInvalidContentData.With("invalid payment method").Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.ContentCreatedResponse{ID: registrationID})
}

// registrationsListHandler returns every registration, newest first.
func (a *API) registrationsListHandler(w http.ResponseWriter, _ *http.Request) {
	registrations, err := a.db.Registrations()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, registrations)
}

// updateRegistrationStatusHandler performs a status-only update on a
// registration. Setting the same status again is a no-op, and any state can
// be overwritten by any other valid state.
func (a *API) updateRegistrationStatusHandler(w http.ResponseWriter, r *http.Request) {
	registrationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "registrationID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	statusRequest := &apicommon.UpdateStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(statusRequest); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if !db.IsValidRegistrationStatus(statusRequest.Status) {
		errors.ErrInvalidStatus.Write(w)
		return
	}
	if err := a.db.SetRegistrationStatus(registrationID, statusRequest.Status); err != nil {
		if err == db.ErrNotFound {
			errors.ErrRegistrationNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// deleteRegistrationHandler deletes a registration from any workflow state.
func (a *API) deleteRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	registrationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "registrationID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if err := a.db.DelRegistration(registrationID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrRegistrationNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}
