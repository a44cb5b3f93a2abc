package api

import "time"

const (
	// jwtExpiration is the validity period of the session tokens. Expiration
	// is enforced on every authenticated request.
	jwtExpiration = 72 * time.Hour // 3 days
	// minPasswordLength is the minimum length of a member password.
	minPasswordLength = 8
)
