package service

import "github.com/golang-jwt/jwt/v5"

// TokenService defines the interface for validating access tokens issued by
// the external auth system (phone/OTP login lives outside this core).
type TokenService interface {
	// ValidateToken parses and verifies a signed token string with the given secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
