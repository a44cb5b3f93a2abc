package apicommon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHTTPWriteJSON(t *testing.T) {
	c := qt.New(t)
	rec := httptest.NewRecorder()
	HTTPWriteJSON(rec, map[string]string{"status": "ok"})
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Header().Get("Content-Type"), qt.Equals, "application/json")
	var decoded map[string]string
	c.Assert(json.Unmarshal(rec.Body.Bytes(), &decoded), qt.IsNil)
	c.Assert(decoded["status"], qt.Equals, "ok")
}

func TestHTTPWriteJSONMarshalFailure(t *testing.T) {
	c := qt.New(t)
	rec := httptest.NewRecorder()
	// channels cannot be marshaled, forcing the encode-failure branch
	HTTPWriteJSON(rec, map[string]any{"ch": make(chan int)})
	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(rec.Body.String(), qt.Contains, `"code":50001`)
}
