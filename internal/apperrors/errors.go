package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials covers both an unknown identifier and a wrong
// password so the two cases cannot be told apart from the response.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not act on the
// target resource.
var ErrForbidden = errors.New("forbidden")

// ErrTokenExpired indicates a correctly signed token past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a malformed token or a signature mismatch.
var ErrTokenInvalid = errors.New("invalid token")
