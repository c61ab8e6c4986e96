// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"

	"ipay4u/internal/domain/service"
)

// tokenBytes is the amount of entropy in a device token (256 bits).
const tokenBytes = 32

type randomTokenIssuer struct{}

// NewTokenIssuer returns a TokenIssuer drawing from crypto/rand.
func NewTokenIssuer() service.TokenIssuer {
	return randomTokenIssuer{}
}

// Issue returns 64 lowercase hex characters.
func (randomTokenIssuer) Issue() string {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}

	return hex.EncodeToString(buf)
}
