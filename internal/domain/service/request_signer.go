package service

// RequestSigner computes and verifies the per-request device signature.
// The signed message is rawBody || timestamp || nonce, keyed by the device token.
type RequestSigner interface {
	// Sign returns the hex-encoded signature.
	Sign(key string, rawBody []byte, timestamp, nonce string) string

	// Verify reports whether signature matches, comparing in constant time.
	Verify(key string, rawBody []byte, timestamp, nonce, signature string) bool
}
