package handlers

import (
	"errors"
	"strings"

	"github.com/artfeed/backend/internal/dto"
	"github.com/go-playground/validator/v10"
)

// validatorMessages maps validation tags to the user-facing messages the
// platform has always returned.
var validatorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "is too short",
	"max":      "is too long",
	"url":      "must be a valid URL",
	"passwd":   "must be 8-10 characters with a letter, a number and a special character (@$!%*?&)",
	"phone10":  "must be a 10-digit phone number",
}

// toValidationResponse converts a binding error into a field-path to message
// list. Non-validator errors (malformed JSON) collapse into a single entry.
func toValidationResponse(err error) dto.ValidationErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dto.ValidationErrorResponse{
			Errors: []dto.FieldError{{Path: "body", Message: "invalid request body"}},
		}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := validatorMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		out = append(out, dto.FieldError{
			Path:    lowerFirst(fe.Field()),
			Message: fe.Field() + " " + msg,
		})
	}
	return dto.ValidationErrorResponse{Errors: out}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
