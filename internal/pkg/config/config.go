package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, backend URL), security settings
// - default: Values common across all environments (timeouts, offer policy, tick interval), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Backend   BackendConfig
	Offer     OfferConfig
	Upload    UploadConfig
	Countdown CountdownConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the secret shared with the Brrow backend, which issues the
// tokens this service only validates.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"BACKEND_REQUEST_TIMEOUT" default:"15s"`
}

type OfferConfig struct {
	DurationDays   int           `envconfig:"OFFER_DURATION_DAYS" default:"1"`
	InitialRatio   string        `envconfig:"OFFER_INITIAL_RATIO" default:"0.8"`
	SubmitTimeout  time.Duration `envconfig:"OFFER_SUBMIT_TIMEOUT" default:"30s"`
	PaymentTimeout time.Duration `envconfig:"OFFER_PAYMENT_TIMEOUT" default:"15m"`
}

type UploadConfig struct {
	Endpoint         string        `envconfig:"UPLOAD_ENDPOINT" default:"/api/upload"`
	EntityType       string        `envconfig:"UPLOAD_ENTITY_TYPE" default:"listing"`
	PreserveMetadata bool          `envconfig:"UPLOAD_PRESERVE_METADATA" default:"false"`
	MaxConcurrent    int           `envconfig:"UPLOAD_MAX_CONCURRENT" default:"3"`
	MaxRetries       uint64        `envconfig:"UPLOAD_MAX_RETRIES" default:"3"`
	RetryBaseDelay   time.Duration `envconfig:"UPLOAD_RETRY_BASE_DELAY" default:"1s"`
	Timeout          time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"60s"`
	MaxAssetBytes    int64         `envconfig:"UPLOAD_MAX_ASSET_BYTES" default:"10485760"`
}

type CountdownConfig struct {
	TickInterval time.Duration `envconfig:"COUNTDOWN_TICK_INTERVAL" default:"1s"`
}

// SessionConfig bounds how long an untouched session keeps its engine.
type SessionConfig struct {
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Backend: BackendConfig{
			BaseURL:        "http://localhost:9999",
			RequestTimeout: 2 * time.Second,
		},
		Offer: OfferConfig{
			DurationDays:   1,
			InitialRatio:   "0.8",
			SubmitTimeout:  2 * time.Second,
			PaymentTimeout: 15 * time.Minute,
		},
		Upload: UploadConfig{
			Endpoint:       "/api/upload",
			EntityType:     "listing",
			MaxConcurrent:  2,
			MaxRetries:     2,
			RetryBaseDelay: time.Millisecond,
			Timeout:        2 * time.Second,
			MaxAssetBytes:  1 << 20,
		},
		Countdown: CountdownConfig{
			TickInterval: time.Second,
		},
		Session: SessionConfig{
			TTL:           time.Hour,
			SweepInterval: time.Minute,
		},
	}
}
