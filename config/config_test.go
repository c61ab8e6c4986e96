package config

import (
	"testing"
	"time"

	"ipay4u/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 120*time.Second, cfg.Auth.TimestampSkew)
	assert.Equal(t, 240*time.Second, cfg.Nonce.Retention)
	assert.Equal(t, constants.NonceStorePostgres, cfg.Nonce.Store)
	assert.Equal(t, constants.RegistrationModeSecret, cfg.Auth.Registration.Mode)
	assert.Equal(t, time.Minute, cfg.Nonce.PruneInterval)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 3001, cfg.Worker.Port)
}

func TestApplyDefaults_RetentionFollowsSkew(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.TimestampSkew = 30 * time.Second
	applyDefaults(cfg)

	assert.Equal(t, 60*time.Second, cfg.Nonce.Retention)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Auth.Registration.Secret = "s3cret"
		applyDefaults(cfg)

		return cfg
	}

	t.Run("valid secret mode", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("secret mode without secret", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.Registration.Secret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("fingerprint mode needs no secret", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.Registration.Secret = ""
		cfg.Auth.Registration.Mode = constants.RegistrationModeFingerprint
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown registration mode", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.Registration.Mode = "header"
		assert.Error(t, cfg.Validate())
	})

	t.Run("redis store without address", func(t *testing.T) {
		cfg := valid()
		cfg.Nonce.Store = constants.NonceStoreRedis
		assert.Error(t, cfg.Validate())

		cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("retention shorter than skew", func(t *testing.T) {
		cfg := valid()
		cfg.Nonce.Retention = time.Minute
		assert.Error(t, cfg.Validate())
	})

	t.Run("retention must cover both sides of the window", func(t *testing.T) {
		cfg := valid()
		cfg.Nonce.Retention = cfg.Auth.TimestampSkew
		assert.Error(t, cfg.Validate())

		cfg.Nonce.Retention = 2*cfg.Auth.TimestampSkew - time.Second
		assert.Error(t, cfg.Validate())

		cfg.Nonce.Retention = 2 * cfg.Auth.TimestampSkew
		assert.NoError(t, cfg.Validate())
	})
}
