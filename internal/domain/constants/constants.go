// Package constants holds string constants shared between config and wiring code.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Nonce store backends selectable through config.
const (
	NonceStorePostgres = "postgres"
	NonceStoreRedis    = "redis"
)

// Registration gate modes.
const (
	RegistrationModeSecret      = "secret"
	RegistrationModeFingerprint = "fingerprint"
)

// RoleAdmin is the JWT role required by the administrative API.
const RoleAdmin = "admin"
