package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/bishnupur-union/society-backend/internal"
	"github.com/bishnupur-union/society-backend/notifications/mailtemplates"
	"github.com/go-chi/chi/v5"
	"go.vocdoni.io/dvote/log"
)

// registerMemberHandler registers a new member with the regular role. The
// password is stored only as a bcrypt hash. A duplicate email returns a 409.
func (a *API) registerMemberHandler(w http.ResponseWriter, r *http.Request) {
	memberInfo := &apicommon.MemberInfo{}
	if err := json.NewDecoder(r.Body).Decode(memberInfo); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if !internal.ValidEmail(memberInfo.Email) {
		errors.ErrEmailMalformed.Write(w)
		return
	}
	if len(memberInfo.Password) < minPasswordLength {
		errors.ErrPasswordTooShort.Write(w)
		return
	}
	if memberInfo.Name == "" {
		errors.ErrInvalidMemberData.With("name is required").Write(w)
		return
	}
	if !a.validator.ValidPhone(memberInfo.Phone) {
		errors.ErrInvalidMemberData.With("invalid phone number").Write(w)
		return
	}
	hashed, err := internal.HashPassword(memberInfo.Password)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	memberID, err := a.db.SetMember(&db.Member{
		Name:     memberInfo.Name,
		Email:    memberInfo.Email,
		Password: hashed,
		Phone:    memberInfo.Phone,
		Address:  memberInfo.Address,
		Role:     db.RegularRole,
	})
	if err != nil {
		if err == db.ErrAlreadyExists {
			errors.ErrDuplicateEmail.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	// send the welcome email, the registration succeeds even if it fails
	if a.mail != nil {
		if err := a.sendWelcomeEmail(r.Context(), memberInfo.Name, memberInfo.Email); err != nil {
			log.Warnw("could not send welcome email", "error", err, "email", memberInfo.Email)
		}
	}
	apicommon.HTTPWriteJSON(w, &apicommon.MemberCreatedResponse{ID: memberID})
}

// sendWelcomeEmail renders the welcome template and delivers it to the new
// member.
func (a *API) sendWelcomeEmail(ctx context.Context, name, email string) error {
	notification, err := mailtemplates.WelcomeNotification.ExecTemplate(struct {
		Name string
	}{name})
	if err != nil {
		return err
	}
	notification.ToName = name
	notification.ToAddress = email
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return a.mail.SendNotification(ctx, notification)
}

// memberInfoHandler returns the information of the authenticated member.
func (a *API) memberInfoHandler(w http.ResponseWriter, r *http.Request) {
	member, ok := apicommon.MemberFromContext(r.Context())
	if !ok {
		errors.ErrUnauthorized.Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, member)
}

// membersListHandler returns every member, newest first.
func (a *API) membersListHandler(w http.ResponseWriter, _ *http.Request) {
	members, err := a.db.Members()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, members)
}

// updateMemberRoleHandler performs a role-only update on a member. No other
// field of the member document can be changed through this endpoint.
func (a *API) updateMemberRoleHandler(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFromRequest(r)
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	roleRequest := &apicommon.UpdateRoleRequest{}
	if err := json.NewDecoder(r.Body).Decode(roleRequest); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if !db.IsValidMemberRole(roleRequest.Role) {
		errors.ErrInvalidRole.Write(w)
		return
	}
	if err := a.db.SetMemberRole(memberID, roleRequest.Role); err != nil {
		if err == db.ErrNotFound {
			errors.ErrMemberNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// deleteMemberHandler removes a member from the database.
func (a *API) deleteMemberHandler(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFromRequest(r)
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if err := a.db.DelMember(memberID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrMemberNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// memberIDFromRequest extracts the numeric member ID from the URL parameters.
func memberIDFromRequest(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "memberID"), 10, 64)
}
