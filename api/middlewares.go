package api

import (
	"context"
	"net/http"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// authenticator is a middleware that authenticates the member from the JWT
// token of the request. It validates the token, including its expiration,
// decodes the member identifier (its email) from the claims and gets the
// member information from the database, then adds the member data to the
// request context and passes it to the next handler.
func (a *API) authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			errors.ErrUnauthorized.Write(w)
			return
		}
		if token == nil || jwt.Validate(token, jwt.WithRequiredClaim("memberId")) != nil {
			errors.ErrUnauthorized.Withf("invalid or expired JWT token").Write(w)
			return
		}
		memberEmail, ok := claims["memberId"].(string)
		if !ok {
			errors.ErrUnauthorized.Withf("memberId claim not found in JWT token").Write(w)
			return
		}
		member, err := a.db.MemberByEmail(memberEmail)
		if err != nil {
			if err == db.ErrNotFound {
				errors.ErrUnauthorized.Withf("member not found").Write(w)
				return
			}
			errors.ErrGenericInternalServerError.Withf("could not retrieve member from database: %v", err).Write(w)
			return
		}
		// add the member to the context
		ctx := context.WithValue(r.Context(), apicommon.MemberMetadataKey, *member)
		// token is authenticated, pass it through with the new context with
		// the member information
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly is a middleware that requires the authenticated member to hold
// the admin role. It must run after the authenticator middleware.
func (a *API) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		member, ok := apicommon.MemberFromContext(r.Context())
		if !ok {
			errors.ErrUnauthorized.Write(w)
			return
		}
		if member.Role != db.AdminRole {
			errors.ErrAdminOnly.Write(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
