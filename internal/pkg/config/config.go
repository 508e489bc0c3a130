package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, store connection, admin credentials)
// - default: Values common across all environments (debounce interval, poll interval, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Admin    AdminConfig
	Schedule ScheduleConfig
	Geocode  GeocodeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects and configures the key-value store backend.
// Driver is one of "postgres", "redis", "memory".
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`

	PGHost     string `envconfig:"STORE_PG_HOST" default:"localhost"`
	PGPort     string `envconfig:"STORE_PG_PORT" default:"5432"`
	PGUser     string `envconfig:"STORE_PG_USER" default:"folio"`
	PGPassword string `envconfig:"STORE_PG_PASSWORD" default:""`
	PGDBName   string `envconfig:"STORE_PG_NAME" default:"folio"`
	PGSSLMode  string `envconfig:"STORE_PG_SSL_MODE" default:"disable"`

	RedisAddr     string `envconfig:"STORE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"STORE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"STORE_REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// AdminConfig holds the single admin principal. The site has exactly one
// administrative user; guests never authenticate.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"` // bcrypt
}

type ScheduleConfig struct {
	DebounceInterval time.Duration `envconfig:"SCHEDULE_DEBOUNCE_INTERVAL" default:"600ms"`
	BusyPollInterval time.Duration `envconfig:"SCHEDULE_BUSY_POLL_INTERVAL" default:"2s"`
	SubmitCooldown   time.Duration `envconfig:"SCHEDULE_SUBMIT_COOLDOWN" default:"3m"`
}

type GeocodeConfig struct {
	BaseURL   string        `envconfig:"GEOCODE_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `envconfig:"GEOCODE_USER_AGENT" default:"folio-api/1.0"`
	Timeout   time.Duration `envconfig:"GEOCODE_TIMEOUT" default:"5s"`
}

func (c *StoreConfig) BuildPostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDBName, c.PGSSLMode,
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
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Username: "admin",
			// bcrypt of "password"
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
		Schedule: ScheduleConfig{
			DebounceInterval: 10 * time.Millisecond,
			BusyPollInterval: 50 * time.Millisecond,
			SubmitCooldown:   3 * time.Minute,
		},
	}
}
