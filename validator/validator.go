// Package validator wraps the go-playground/validator package with the custom
// rules used by the API request payloads.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneRegex matches international phone numbers in E.164-like form, with an
// optional separator between digit groups.
var phoneRegex = regexp.MustCompile(`^\+[0-9\s\(\)\-]{6,20}$`)

// Validator is a wrapper around the go-playground/validator package.
type Validator struct {
	validator *validator.Validate
}

// New creates a new Validator instance with the custom rules registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("phone", validatePhone)
	return &Validator{validator: v}
}

// Validate validates a struct using its validate tags.
func (v *Validator) Validate(s any) error {
	return v.validator.Struct(s)
}

// ValidPhone reports whether the given phone number is acceptable. An empty
// phone is valid, required-ness is the caller's decision.
func (v *Validator) ValidPhone(phone string) bool {
	return v.validator.Var(phone, "omitempty,phone") == nil
}

// validatePhone validates a phone number field. An empty field is valid, use
// the required tag when the field is mandatory.
func validatePhone(fl validator.FieldLevel) bool {
	if fl.Field().String() == "" {
		return true
	}
	return phoneRegex.MatchString(fl.Field().String())
}
