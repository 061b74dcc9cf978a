package dto

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	FirstName          string   `json:"firstName" binding:"required,min=2,max=20"`
	LastName           string   `json:"lastName" binding:"required,min=2,max=20"`
	Phone              string   `json:"phone" binding:"required,phone10"`
	Email              string   `json:"email" binding:"required,email"`
	DOB                string   `json:"dob" binding:"required"`
	Password           string   `json:"password" binding:"required,passwd"`
	ArticlePreferences []string `json:"articlePreferences" binding:"required,min=1"`
}

// LoginRequest carries the login credentials. Identifier is an email address
// or a 10-digit phone number; the lookup tries both.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login. The refresh token travels
// only in the HTTP-only cookie, never in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// RefreshResponse is returned by the refresh-token endpoint.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse is a generic success message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes a single field validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries field-level validation failures.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
