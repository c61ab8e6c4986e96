package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminClaims are the claims carried by administrative access tokens.
type AdminClaims struct {
	AdminID uuid.UUID `json:"-"` // Parsed from the registered "sub" claim.
	Roles   []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates administrative bearer tokens.
// Device credentials are not JWTs; see TokenIssuer.
type TokenService interface {
	// GenerateAdminToken creates a signed access token for an operator.
	GenerateAdminToken(subject uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*AdminClaims, error)
}
