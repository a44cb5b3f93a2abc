package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/objectstorage"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// buildLoginResponse creates a JWT token for the given member identifier.
// The token is signed with the API secret, following the JWT specification.
// The token is valid for the period specified on jwtExpiration constant.
func (a *API) buildLoginResponse(id string) (*apicommon.LoginResponse, error) {
	j := jwt.New()
	if err := j.Set("memberId", id); err != nil {
		return nil, err
	}
	expirity := time.Now().Add(jwtExpiration)
	if err := j.Set(jwt.ExpirationKey, expirity); err != nil {
		return nil, err
	}
	lr := apicommon.LoginResponse{Expirity: expirity}
	jmap, err := j.AsMap(context.Background())
	if err != nil {
		return nil, err
	}
	if _, lr.Token, err = a.auth.Encode(jmap); err != nil {
		return nil, err
	}
	return &lr, nil
}

// isMultipartForm reports whether the request carries a multipart form, used
// by the content handlers that accept both JSON and form posts.
func isMultipartForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// storedImageURL stores the image file of a parsed multipart form, if any,
// and returns its public URL. When the form has no image file it returns an
// empty string, so the caller can fall back to the submitted imageUrl field.
// The uploaded file takes precedence over any submitted URL.
func (a *API) storedImageURL(r *http.Request, user string) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()
	storedFileID, err := a.objectStorage.Put(file, header.Size, user)
	if err != nil {
		return "", err
	}
	return objectstorage.ObjectURL(a.serverURL, storedFileID), nil
}
