// Package errors provides the custom error types and definitions used by the
// HTTP API.
//
//nolint:lll
package errors

import (
	"fmt"
	"net/http"
)

// Error codes in the 40001-49999 range are the caller's fault and map to an
// HTTP 4xx status. Codes 50001-59999 are the server's fault and map to 5xx.
// Never change or reuse a code once it has been published, only append.
var (
	// Authentication errors (401)
	ErrUnauthorized       = Error{Code: 40001, HTTPstatus: http.StatusUnauthorized, Err: fmt.Errorf("authentication required"), LogLevel: "info"}
	ErrInvalidCredentials = Error{Code: 40002, HTTPstatus: http.StatusUnauthorized, Err: fmt.Errorf("invalid email or password"), LogLevel: "info"}
	ErrAdminOnly          = Error{Code: 40003, HTTPstatus: http.StatusForbidden, Err: fmt.Errorf("admin privileges required"), LogLevel: "info"}

	// Validation errors (400)
	ErrMalformedBody        = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid JSON request body")}
	ErrEmailMalformed       = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid email format")}
	ErrPasswordTooShort     = Error{Code: 40006, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("password must be at least 8 characters")}
	ErrMalformedURLParam    = Error{Code: 40007, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid URL parameter")}
	ErrInvalidMemberData    = Error{Code: 40008, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid member information provided")}
	ErrInvalidContentData   = Error{Code: 40009, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid content information provided")}
	ErrInvalidStatus        = Error{Code: 40010, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid registration status")}
	ErrInvalidRole          = Error{Code: 40011, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid member role")}
	ErrStorageInvalidObject = Error{Code: 40012, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid storage object or parameters")}
	ErrInvalidDonationData  = Error{Code: 40013, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid donation information provided")}

	// Not found errors (404)
	ErrMemberNotFound       = Error{Code: 40401, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("member not found")}
	ErrNewsNotFound         = Error{Code: 40402, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("news item not found")}
	ErrCommitteeNotFound    = Error{Code: 40403, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("committee member not found")}
	ErrRegistrationNotFound = Error{Code: 40404, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("registration not found")}

	// Conflict errors (409)
	ErrDuplicateEmail  = Error{Code: 40901, HTTPstatus: http.StatusConflict, Err: fmt.Errorf("a member with this email already exists")}
	ErrVersionConflict = Error{Code: 40902, HTTPstatus: http.StatusConflict, Err: fmt.Errorf("the document was modified by someone else, reload and retry")}

	// Server errors (500) - only for true internal failures
	ErrMarshalingServerJSONFailed = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: failed to process response"), LogLevel: "error"}
	ErrGenericInternalServerError = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: operation failed"), LogLevel: "error"}
	ErrInternalStorageError       = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: storage operation failed"), LogLevel: "error"}
	// ErrStoragePermission is kept distinct from the generic storage error so
	// upload failures point the operator at the bucket/collection permissions.
	ErrStoragePermission = Error{Code: 50004, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: storage permission denied, check the storage credentials and bucket policy"), LogLevel: "error"}
	ErrMailServiceFailure = Error{Code: 50005, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: could not deliver the message"), LogLevel: "error"}
	ErrStripeError        = Error{Code: 50006, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: payment processing failed"), LogLevel: "error"}
)
