package api

import (
	"encoding/json"
	"net/http"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/bishnupur-union/society-backend/internal"
)

// authLoginHandler authenticates a member by email and password and returns
// a JWT token. A wrong email and a wrong password are indistinguishable to
// the caller.
func (a *API) authLoginHandler(w http.ResponseWriter, r *http.Request) {
	loginInfo := &apicommon.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(loginInfo); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	// get the member information from the database by email
	member, err := a.db.MemberByEmail(loginInfo.Email)
	if err != nil {
		if err == db.ErrNotFound {
			errors.ErrInvalidCredentials.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	// check the password against the stored hash
	if !internal.CheckPassword(member.Password, loginInfo.Password) {
		errors.ErrInvalidCredentials.Write(w)
		return
	}
	// generate a new token with the member email as the subject
	res, err := a.buildLoginResponse(member.Email)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, res)
}

// refreshTokenHandler reissues a JWT token for an authenticated member.
func (a *API) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	member, ok := apicommon.MemberFromContext(r.Context())
	if !ok {
		errors.ErrUnauthorized.Write(w)
		return
	}
	res, err := a.buildLoginResponse(member.Email)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, res)
}
