package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^(\+91)?\d{10}$`)
	letterPattern  = regexp.MustCompile(`[A-Za-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[@$!%*?&]`)
)

// passwordValid enforces the platform password policy: 8-10 characters with
// at least one letter, one digit and one special character (@$!%*?&).
func passwordValid(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 10 {
		return false
	}
	return letterPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		specialPattern.MatchString(password)
}

// phoneValid accepts a 10-digit phone number with an optional +91 prefix.
func phoneValid(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// RegisterValidations attaches the custom validators used by the binding
// tags in this package to gin's validator engine. Must be called once before
// the engine serves requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("passwd", passwordValid); err != nil {
		return err
	}
	return v.RegisterValidation("phone10", phoneValid)
}
