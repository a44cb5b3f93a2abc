package apicommon

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"go.vocdoni.io/dvote/log"
)

// MemberFromContext retrieves the member from the context provided, expected
// to be the context of a request handled by the authenticator middleware.
func MemberFromContext(ctx context.Context) (*db.Member, bool) {
	rawMember, ok := ctx.Value(MemberMetadataKey).(db.Member)
	if ok {
		return &rawMember, ok
	}
	return nil, false
}

// HTTPWriteJSON helper function allows to write a JSON response. The payload
// is marshaled before any header is written, so an encoding failure still
// produces a proper error response.
func HTTPWriteJSON(w http.ResponseWriter, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		errors.ErrMarshalingServerJSONFailed.WithErr(err).Write(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}

// HTTPWriteOK helper function allows to write an OK response.
func HTTPWriteOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("\n")); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}
