package domain

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the fixed payload carried by both access and refresh
// tokens. Keeping it a closed struct (rather than an open claims map)
// prevents shape drift between issuer and verifier.
type TokenClaims struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	jwt.RegisteredClaims
}
