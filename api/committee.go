package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/bishnupur-union/society-backend/objectstorage"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// committeeListHandler returns the managing committee, orderIndex ascending.
func (a *API) committeeListHandler(w http.ResponseWriter, _ *http.Request) {
	members, err := a.db.CommitteeMembers()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, members)
}

// committeeMemberFromRequest decodes a committee member from the request. It
// accepts a JSON body or a multipart form with name, designation, imageUrl
// and orderIndex fields plus an optional image file that takes precedence
// over the submitted imageUrl.
func (a *API) committeeMemberFromRequest(r *http.Request) (*db.CommitteeMember, error) {
	member := &db.CommitteeMember{}
	if !isMultipartForm(r) {
		if err := json.NewDecoder(r.Body).Decode(member); err != nil {
			return nil, errors.ErrMalformedBody
		}
		return member, nil
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, errors.ErrMalformedBody.Withf("could not parse form: %v", err)
	}
	member.Name = r.FormValue("name")
	member.Designation = r.FormValue("designation")
	member.ImageURL = r.FormValue("imageUrl")
	if rawOrder := r.FormValue("orderIndex"); rawOrder != "" {
		order, err := strconv.Atoi(rawOrder)
		if err != nil {
			return nil, errors.ErrInvalidContentData.With("invalid orderIndex")
		}
		member.OrderIndex = order
	}
	requester, _ := apicommon.MemberFromContext(r.Context())
	imageURL, err := a.storedImageURL(r, requester.Email)
	if err != nil {
		if objectstorage.IsPermissionError(err) {
			return nil, errors.ErrStoragePermission.WithErr(err)
		}
		return nil, errors.ErrInternalStorageError.WithErr(err)
	}
	if imageURL != "" {
		member.ImageURL = imageURL
	}
	return member, nil
}

// createCommitteeMemberHandler creates a committee member from a JSON body
// or a multipart form.
func (a *API) createCommitteeMemberHandler(w http.ResponseWriter, r *http.Request) {
	member, err := a.committeeMemberFromRequest(r)
	if err != nil {
		errors.WriteAs(err, w)
		return
	}
	if member.Name == "" {
		errors.ErrInvalidContentData.With("name is required").Write(w)
		return
	}
	member.ID = primitive.NilObjectID
	committeeID, err := a.db.SetCommitteeMember(member)
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.ContentCreatedResponse{ID: committeeID})
}

// updateCommitteeMemberHandler fully overwrites a committee member.
func (a *API) updateCommitteeMemberHandler(w http.ResponseWriter, r *http.Request) {
	committeeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "committeeID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if _, err := a.db.CommitteeMember(committeeID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrCommitteeNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	member, err := a.committeeMemberFromRequest(r)
	if err != nil {
		errors.WriteAs(err, w)
		return
	}
	if member.Name == "" {
		errors.ErrInvalidContentData.With("name is required").Write(w)
		return
	}
	member.ID = committeeID
	if _, err := a.db.SetCommitteeMember(member); err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// deleteCommitteeMemberHandler deletes a committee member.
func (a *API) deleteCommitteeMemberHandler(w http.ResponseWriter, r *http.Request) {
	committeeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "committeeID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if err := a.db.DelCommitteeMember(committeeID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrCommitteeNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// migrateCommitteeHandler moves the whole managing committee to the ad-hoc
// committee. The operation is idempotent, so it can be retried safely after
// a partial failure.
func (a *API) migrateCommitteeHandler(w http.ResponseWriter, _ *http.Request) {
	migrated, err := a.db.MigrateCommitteeToAdhoc()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.MigrationResponse{Migrated: migrated})
}

// adhocCommitteeListHandler returns the ad-hoc committee, orderIndex
// ascending.
func (a *API) adhocCommitteeListHandler(w http.ResponseWriter, _ *http.Request) {
	members, err := a.db.AdhocCommitteeMembers()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, members)
}

// adhocCommitteeMemberFromRequest decodes an ad-hoc committee member from the
// request, accepting the same shapes as committeeMemberFromRequest plus a
// phone field.
func (a *API) adhocCommitteeMemberFromRequest(r *http.Request) (*db.AdhocCommitteeMember, error) {
	member := &db.AdhocCommitteeMember{}
	if !isMultipartForm(r) {
		if err := json.NewDecoder(r.Body).Decode(member); err != nil {
			return nil, errors.ErrMalformedBody
		}
		return member, nil
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, errors.ErrMalformedBody.Withf("could not parse form: %v", err)
	}
	member.Name = r.FormValue("name")
	member.Designation = r.FormValue("designation")
	member.Phone = r.FormValue("phone")
	member.ImageURL = r.FormValue("imageUrl")
	if rawOrder := r.FormValue("orderIndex"); rawOrder != "" {
		order, err := strconv.Atoi(rawOrder)
		if err != nil {
			return nil, errors.ErrInvalidContentData.With("invalid orderIndex")
		}
		member.OrderIndex = order
	}
	requester, _ := apicommon.MemberFromContext(r.Context())
	imageURL, err := a.storedImageURL(r, requester.Email)
	if err != nil {
		if objectstorage.IsPermissionError(err) {
			return nil, errors.ErrStoragePermission.WithErr(err)
		}
		return nil, errors.ErrInternalStorageError.WithErr(err)
	}
	if imageURL != "" {
		member.ImageURL = imageURL
	}
	return member, nil
}

// createAdhocCommitteeMemberHandler creates an ad-hoc committee member.
func (a *API) createAdhocCommitteeMemberHandler(w http.ResponseWriter, r *http.Request) {
	member, err := a.adhocCommitteeMemberFromRequest(r)
	if err != nil {
		errors.WriteAs(err, w)
		return
	}
	if member.Name == "" {
		errors.ErrInvalidContentData.With("name is required").Write(w)
		return
	}
	member.ID = primitive.NilObjectID
	adhocID, err := a.db.SetAdhocCommitteeMember(member)
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.ContentCreatedResponse{ID: adhocID})
}

// updateAdhocCommitteeMemberHandler fully overwrites an ad-hoc committee
// member.
func (a *API) updateAdhocCommitteeMemberHandler(w http.ResponseWriter, r *http.Request) {
	adhocID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "adhocID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if _, err := a.db.AdhocCommitteeMember(adhocID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrCommitteeNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	member, err := a.adhocCommitteeMemberFromRequest(r)
	if err != nil {
		errors.WriteAs(err, w)
		return
	}
	if member.Name == "" {
		errors.ErrInvalidContentData.With("name is required").Write(w)
		return
	}
	member.ID = adhocID
	if _, err := a.db.SetAdhocCommitteeMember(member); err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// deleteAdhocCommitteeMemberHandler deletes an ad-hoc committee member.
func (a *API) deleteAdhocCommitteeMemberHandler(w http.ResponseWriter, r *http.Request) {
	adhocID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "adhocID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if err := a.db.DelAdhocCommitteeMember(adhocID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrCommitteeNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}
