package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"ipay4u/internal/domain/service"
)

type hmacSigner struct{}

// NewHMACSigner returns the HMAC-SHA256 RequestSigner.
func NewHMACSigner() service.RequestSigner {
	return hmacSigner{}
}

// Sign computes HMAC-SHA256(key, rawBody || timestamp || nonce) with no delimiters.
func (hmacSigner) Sign(key string, rawBody []byte, timestamp, nonce string) string {
	return hex.EncodeToString(mac(key, rawBody, timestamp, nonce))
}

// Verify decodes the hex signature and compares it with hmac.Equal.
func (hmacSigner) Verify(key string, rawBody []byte, timestamp, nonce, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}

	return hmac.Equal(mac(key, rawBody, timestamp, nonce), got)
}

func mac(key string, rawBody []byte, timestamp, nonce string) []byte {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(rawBody)
	h.Write([]byte(timestamp))
	h.Write([]byte(nonce))

	return h.Sum(nil)
}
