package service

// TokenIssuer generates device credentials.
type TokenIssuer interface {
	// Issue returns a fresh high-entropy token. It never fails; a broken
	// random source is fatal to the process.
	Issue() string
}
