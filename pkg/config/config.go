package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "NEXLYN"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Env var names used by tests and operational tooling.
const (
	EnvAppEnv        = "NEXLYN_APP_ENV"
	EnvPort          = "NEXLYN_APP_PORT"
	EnvDBDSN         = "NEXLYN_DB_DSN"
	EnvRedisURL      = "NEXLYN_REDIS_URL"
	EnvAdminPasscode = "NEXLYN_ADMIN_PASSCODE"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Admin        AdminConfig
	Gemini       GeminiConfig
	Cloudinary   CloudinaryConfig
	Banner       BannerConfig
	Defaults     DefaultsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NEXLYN_APP_ENV" required:"true"`
	Port         string `envconfig:"NEXLYN_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"NEXLYN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NEXLYN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"NEXLYN_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"NEXLYN_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"NEXLYN_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"NEXLYN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NEXLYN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NEXLYN_REDIS_URL" required:"true"`
	PoolSize     int           `envconfig:"NEXLYN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NEXLYN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NEXLYN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NEXLYN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NEXLYN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"NEXLYN_SESSION_COOKIE" default:"nexlyn_session"`
	TTL        time.Duration `envconfig:"NEXLYN_SESSION_TTL" default:"24h"`
}

// AdminConfig carries the shared admin passcode. A single plaintext secret
// compared verbatim is a deliberate carry-over from the storefront it
// replaces; see DESIGN.md before reaching for anything fancier.
type AdminConfig struct {
	Passcode string `envconfig:"NEXLYN_ADMIN_PASSCODE" required:"true"`
}

type GeminiConfig struct {
	APIKey  string `envconfig:"NEXLYN_GEMINI_API_KEY"`
	Model   string `envconfig:"NEXLYN_GEMINI_MODEL" default:"gemini-3-flash-preview"`
	BaseURL string `envconfig:"NEXLYN_GEMINI_BASE_URL"`
}

type CloudinaryConfig struct {
	CloudName    string `envconfig:"NEXLYN_CLOUDINARY_CLOUD_NAME" default:"demo"`
	UploadPreset string `envconfig:"NEXLYN_CLOUDINARY_UPLOAD_PRESET" default:"unsigned_upload"`
	BaseURL      string `envconfig:"NEXLYN_CLOUDINARY_BASE_URL"`
}

type BannerConfig struct {
	Interval time.Duration `envconfig:"NEXLYN_BANNER_INTERVAL" default:"7s"`
	ExitLead time.Duration `envconfig:"NEXLYN_BANNER_EXIT_LEAD" default:"700ms"`
}

// DefaultsConfig holds the compiled-in fallbacks used whenever the backing
// store has no value for a settings key.
type DefaultsConfig struct {
	Theme          string `envconfig:"NEXLYN_DEFAULT_THEME" default:"dark"`
	WhatsAppNumber string `envconfig:"NEXLYN_DEFAULT_WA_NUMBER" default:"971502474482"`
	About          string `envconfig:"NEXLYN_DEFAULT_ABOUT" default:"Nexlyn is a premier MikroTik® Master Distributor based in Dubai, serving the Middle East and Africa. We specialize in providing carrier-grade routing, high-density switching, and professional wireless deployments for internet service providers and large-scale enterprises."`
	Address        string `envconfig:"NEXLYN_DEFAULT_ADDRESS" default:"Silicon Oasis, Dubai Digital Park, UAE"`
	MapURL         string `envconfig:"NEXLYN_DEFAULT_MAP_URL" default:"https://maps.app.goo.gl/971502474482"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NEXLYN_AUTO_MIGRATE" default:"false"`
}
