package db

import "fmt"

var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrAlreadyExists = fmt.Errorf("already exists")
	ErrInvalidData   = fmt.Errorf("invalid data provided")
	ErrConflict      = fmt.Errorf("document version mismatch")
)
