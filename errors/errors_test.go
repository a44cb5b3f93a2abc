package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestErrorMarshalJSON(t *testing.T) {
	c := qt.New(t)
	data, err := json.Marshal(ErrNewsNotFound)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `{"error":"news item not found","code":40402}`)
}

func TestErrorWith(t *testing.T) {
	c := qt.New(t)
	e := ErrMalformedBody.With("missing title")
	c.Assert(e.Error(), qt.Equals, "invalid JSON request body: missing title")
	c.Assert(e.Code, qt.Equals, ErrMalformedBody.Code)
	c.Assert(e.HTTPstatus, qt.Equals, ErrMalformedBody.HTTPstatus)

	e = ErrMalformedBody.Withf("field %q is empty", "name")
	c.Assert(e.Error(), qt.Equals, `invalid JSON request body: field "name" is empty`)

	e = ErrInternalStorageError.WithErr(fmt.Errorf("connection refused"))
	c.Assert(e.Error(), qt.Equals, "server error: storage operation failed: connection refused")
}

func TestErrorWrite(t *testing.T) {
	c := qt.New(t)
	rec := httptest.NewRecorder()
	ErrDuplicateEmail.Write(rec)
	c.Assert(rec.Code, qt.Equals, http.StatusConflict)
	c.Assert(rec.Header().Get("Content-Type"), qt.Equals, "application/json")

	var body map[string]any
	c.Assert(json.Unmarshal(rec.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body["code"], qt.Equals, float64(40901))
	c.Assert(body["error"], qt.Equals, "a member with this email already exists")
}
