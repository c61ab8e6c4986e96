package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"ipay4u/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTimestampSkew      = 120 * time.Second
	defaultPruneInterval      = time.Minute
	defaultAdminTokenTTL      = time.Hour
	defaultMetricsPath        = "/metrics"
	defaultWorkerPort         = 3001
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicURL is the base URL devices use to reach this server; embedded in provisioning QR codes.
		PublicURL string `json:"publicUrl" yaml:"publicUrl"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	// Redis is only required when nonce.store is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	Nonce NonceConfig `json:"nonce" yaml:"nonce"`

	Ingest IngestConfig `json:"ingest" yaml:"ingest"`

	// PubSub configuration for payment event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for payment alerts sent by the notify worker
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for device provisioning QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker configures the notify worker binary
	Worker WorkerConfig `json:"worker" yaml:"worker"`
}

// WorkerConfig defines the notify worker's push endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// DatabaseConfig defines schema management for the Postgres connection
type DatabaseConfig struct {
	// AutoMigrate creates or updates the devices, nonces and payment_events tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RedisConfig defines the Redis connection used by the Redis nonce store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// AuthConfig defines device authentication and registration settings
type AuthConfig struct {
	// TimestampSkew is the maximum accepted |now - X-Timestamp|
	TimestampSkew time.Duration      `json:"timestampSkew" yaml:"timestampSkew"`
	Registration  RegistrationConfig `json:"registration" yaml:"registration"`
	Admin         AdminConfig        `json:"admin" yaml:"admin"`
}

// RegistrationConfig defines the coarse gate in front of /register
type RegistrationConfig struct {
	// Mode is "secret" (X-Registration-Secret) or "fingerprint" (X-Device-Fingerprint presence)
	Mode string `json:"mode" yaml:"mode"`
	// Secret is compared in constant time; SecretHash (bcrypt) takes precedence when set
	Secret     string          `json:"secret" yaml:"secret"`
	SecretHash string          `json:"secretHash" yaml:"secretHash"`
	RateLimit  RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig defines a per-client token bucket
type RateLimitConfig struct {
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// AdminConfig defines the JWT settings of the administrative API
type AdminConfig struct {
	Secret   string        `json:"secret" yaml:"secret"`
	Issuer   string        `json:"issuer" yaml:"issuer"`
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// NonceConfig defines where consumed nonces are stored and how long they are kept
type NonceConfig struct {
	// Store is "postgres" (default) or "redis"
	Store string `json:"store" yaml:"store"`
	// Retention defaults to twice the timestamp skew; older nonces cannot pass the window check anyway
	Retention     time.Duration `json:"retention" yaml:"retention"`
	PruneInterval time.Duration `json:"pruneInterval" yaml:"pruneInterval"`
}

// IngestConfig defines payload validation for /notify
type IngestConfig struct {
	AllowNonPositiveAmount bool `json:"allowNonPositiveAmount" yaml:"allowNonPositiveAmount"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// AlertTopic is the FCM topic that receives payment alerts
	AlertTopic string `json:"alertTopic" yaml:"alertTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the expected audience of push OIDC tokens (worker side, google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth.TimestampSkew <= 0 {
		cfg.Auth.TimestampSkew = defaultTimestampSkew
	}
	if cfg.Auth.Registration.Mode == "" {
		cfg.Auth.Registration.Mode = constants.RegistrationModeSecret
	}
	if cfg.Auth.Admin.TokenTTL <= 0 {
		cfg.Auth.Admin.TokenTTL = defaultAdminTokenTTL
	}
	if cfg.Nonce.Store == "" {
		cfg.Nonce.Store = constants.NonceStorePostgres
	}
	if cfg.Nonce.Retention <= 0 {
		cfg.Nonce.Retention = 2 * cfg.Auth.TimestampSkew
	}
	if cfg.Nonce.PruneInterval <= 0 {
		cfg.Nonce.PruneInterval = defaultPruneInterval
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}

// Validate rejects combinations that would silently weaken authentication.
func (c *Config) Validate() error {
	switch c.Auth.Registration.Mode {
	case constants.RegistrationModeSecret:
		if c.Auth.Registration.Secret == "" && c.Auth.Registration.SecretHash == "" {
			return errors.New("auth.registration.secret or auth.registration.secretHash is required in secret mode")
		}
	case constants.RegistrationModeFingerprint:
	default:
		return errors.Errorf("unknown registration mode: %s", c.Auth.Registration.Mode)
	}

	switch c.Nonce.Store {
	case constants.NonceStorePostgres:
	case constants.NonceStoreRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			return errors.New("redis.addr is required when nonce.store is redis")
		}
	default:
		return errors.Errorf("unknown nonce store: %s", c.Nonce.Store)
	}

	// A timestamp may lead or trail the clock by skew, so one request stays
	// acceptable for 2*skew after its nonce is recorded.
	if minRetention := 2 * c.Auth.TimestampSkew; c.Nonce.Retention < minRetention {
		return errors.Errorf("nonce.retention (%s) must be at least twice auth.timestampSkew (%s)", c.Nonce.Retention, minRetention)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
