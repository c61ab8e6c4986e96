package usecase

import (
	"context"

	"ipay4u/internal/domain/entity"
)

// SignedRequest holds the security headers of a device request and the exact
// body bytes they were computed over
type SignedRequest struct {
	Token     string
	Timestamp string
	Nonce     string
	Signature string
	Body      []byte
}

// RequestAuthenticator validates a signed device request
type RequestAuthenticator interface {
	// Authenticate runs presence, timestamp window, device lookup, nonce
	// consumption and signature checks in that order, stopping at the first
	// failure. A consumed nonce stays consumed even if the signature is wrong.
	Authenticate(ctx context.Context, req *SignedRequest) (*entity.Device, error)
}

// ReplayGuard records nonces so each one authenticates at most one request
type ReplayGuard interface {
	// CheckAndRecord stores the nonce, or fails with ReplayDetected if it was seen before
	CheckAndRecord(ctx context.Context, nonce, deviceID string) error

	// Prune forgets nonces older than the retention window and reports how many were removed
	Prune(ctx context.Context) (int64, error)
}
