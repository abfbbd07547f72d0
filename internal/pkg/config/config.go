package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server         ServerConfig
	DB             DBConfig
	CORS           CORSConfig
	Log            LogConfig
	JWT            JWTConfig
	Gateway        GatewayConfig
	Reconciliation ReconciliationConfig
	Outbox         OutboxConfig
	Tracing        TracingConfig
	Ops            OpsConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" required:"true"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// StoreTimeout bounds every transaction; exceeding it is reported as store unavailable.
	StoreTimeout time.Duration `envconfig:"DB_STORE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// GatewayConfig holds the payment gateway credentials. KeySecret signs checkout
// proofs; WebhookSecret signs pushed events and must differ from it.
type GatewayConfig struct {
	KeyID         string        `envconfig:"GATEWAY_KEY_ID"`
	KeySecret     string        `envconfig:"GATEWAY_KEY_SECRET"`
	WebhookSecret string        `envconfig:"GATEWAY_WEBHOOK_SECRET"`
	Currency      string        `envconfig:"GATEWAY_CURRENCY" default:"INR"`
	Timeout       time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

func (c GatewayConfig) HasCredentials() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

type ReconciliationConfig struct {
	Interval  time.Duration `envconfig:"RECONCILE_INTERVAL" default:"5m"`
	BatchSize int32         `envconfig:"RECONCILE_BATCH_SIZE" default:"100"`
}

type OutboxConfig struct {
	Brokers   []string      `envconfig:"KAFKA_BROKERS"`
	Topic     string        `envconfig:"KAFKA_TOPIC" default:"booking-events"`
	Interval  time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"5s"`
	BatchSize int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"coliving-payments"`
}

type OpsConfig struct {
	// bcrypt hash of the key accepted in X-Ops-Key; empty disables admin routes
	APIKeyHash string `envconfig:"OPS_API_KEY_HASH"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Gateway.WebhookSecret != "" && cfg.Gateway.WebhookSecret == cfg.Gateway.KeySecret {
		return Config{}, fmt.Errorf("GATEWAY_WEBHOOK_SECRET must differ from GATEWAY_KEY_SECRET")
	}
	if cfg.Reconciliation.Interval <= 0 {
		return Config{}, fmt.Errorf("RECONCILE_INTERVAL must be positive, got %s", cfg.Reconciliation.Interval)
	}
	if cfg.Outbox.Interval <= 0 {
		return Config{}, fmt.Errorf("OUTBOX_RELAY_INTERVAL must be positive, got %s", cfg.Outbox.Interval)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8889", // Test port
			RequestTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "Asia/Kolkata",
			MaxConns:     10,
			StoreTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Gateway: GatewayConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "rzp_test_secret",
			WebhookSecret: "rzp_test_webhook_secret",
			Currency:      "INR",
			Timeout:       2 * time.Second,
		},
		Reconciliation: ReconciliationConfig{
			Interval:  time.Minute,
			BatchSize: 10,
		},
		Outbox: OutboxConfig{
			Topic:     "booking-events",
			Interval:  time.Second,
			BatchSize: 10,
		},
	}
}
