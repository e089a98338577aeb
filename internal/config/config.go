package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Stripe    StripeConfig    `yaml:"stripe"`
	Email     EmailConfig     `yaml:"email"`
	Storage   StorageConfig   `yaml:"storage"`
	Speech    SpeechConfig    `yaml:"speech"`
	Narration NarrationConfig `yaml:"narration"`
	FileStore FileStoreConfig `yaml:"filestore"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	SiteURL         string        `yaml:"site_url"         env:"SERVER_SITE_URL"         env-default:"http://localhost:3000"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrationsDir   string        `yaml:"migrations_dir"     env:"DATABASE_MIGRATIONS_DIR"     env-default:"./migrations"`
}

// RedisConfig holds the Redis connection used for lockouts and caches.
// An empty URL disables Redis; in-memory fallbacks are used instead.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// AuthConfig holds session and login protection settings.
type AuthConfig struct {
	SessionSecret   string        `yaml:"session_secret"    env:"AUTH_SESSION_SECRET"    env-required:"true"`
	SessionIssuer   string        `yaml:"session_issuer"    env:"AUTH_SESSION_ISSUER"    env-default:"thronelight"`
	SessionTTL      time.Duration `yaml:"session_ttl"       env:"AUTH_SESSION_TTL"       env-default:"8h"`
	CookieName      string        `yaml:"cookie_name"       env:"AUTH_COOKIE_NAME"       env-default:"tl_session"`
	CookieSecure    bool          `yaml:"cookie_secure"     env:"AUTH_COOKIE_SECURE"     env-default:"true"`
	LockoutAttempts int           `yaml:"lockout_attempts"  env:"AUTH_LOCKOUT_ATTEMPTS"  env-default:"5"`
	LockoutWindow   time.Duration `yaml:"lockout_window"    env:"AUTH_LOCKOUT_WINDOW"    env-default:"15m"`
}

// StripeConfig holds payment processor settings.
type StripeConfig struct {
	SecretKey              string        `yaml:"secret_key"               env:"STRIPE_SECRET_KEY"`
	WebhookSecret          string        `yaml:"webhook_secret"           env:"STRIPE_WEBHOOK_SECRET"           env-required:"true"`
	WebhookTolerance       time.Duration `yaml:"webhook_tolerance"        env:"STRIPE_WEBHOOK_TOLERANCE"        env-default:"5m"`
	SuccessURL             string        `yaml:"success_url"              env:"STRIPE_SUCCESS_URL"              env-default:"http://localhost:3000/checkout/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL              string        `yaml:"cancel_url"               env:"STRIPE_CANCEL_URL"               env-default:"http://localhost:3000/checkout/cancel"`
	Currency               string        `yaml:"currency"                 env:"STRIPE_CURRENCY"                 env-default:"usd"`
	CommissionMaturityDays int           `yaml:"commission_maturity_days" env:"STRIPE_COMMISSION_MATURITY_DAYS" env-default:"30"`
	Catalog                []CatalogItem `yaml:"catalog"`
}

// CatalogItem is a purchasable book.
type CatalogItem struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	PriceCents int64  `yaml:"price_cents"`
}

// EmailConfig holds transactional email settings.
type EmailConfig struct {
	Provider    string        `yaml:"provider"     env:"EMAIL_PROVIDER"     env-default:"log"`
	APIKey      string        `yaml:"api_key"      env:"EMAIL_API_KEY"`
	From        string        `yaml:"from"         env:"EMAIL_FROM"         env-default:"Throne Light <hello@thronelight.com>"`
	AdminNotify string        `yaml:"admin_notify" env:"EMAIL_ADMIN_NOTIFY"`
	SESRegion   string        `yaml:"ses_region"   env:"EMAIL_SES_REGION"   env-default:"us-east-1"`
	SESEndpoint string        `yaml:"ses_endpoint" env:"EMAIL_SES_ENDPOINT"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"EMAIL_SEND_TIMEOUT" env-default:"10s"`
}

// StorageConfig holds S3-compatible object storage settings for audio assets.
type StorageConfig struct {
	Bucket          string `yaml:"bucket"            env:"STORAGE_BUCKET"`
	Region          string `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	PublicBaseURL   string `yaml:"public_base_url"   env:"STORAGE_PUBLIC_BASE_URL"`
}

// SpeechConfig holds the text-to-speech provider settings.
type SpeechConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"SPEECH_BASE_URL"      env-default:"https://api.openai.com/v1"`
	APIKey       string        `yaml:"api_key"       env:"SPEECH_API_KEY"`
	Model        string        `yaml:"model"         env:"SPEECH_MODEL"         env-default:"tts-1-hd"`
	DefaultVoice string        `yaml:"default_voice" env:"SPEECH_DEFAULT_VOICE" env-default:"onyx"`
	Timeout      time.Duration `yaml:"timeout"       env:"SPEECH_TIMEOUT"       env-default:"30s"`
}

// NarrationConfig holds narration segment settings.
type NarrationConfig struct {
	MaxVersion    int           `yaml:"max_version"     env:"NARRATION_MAX_VERSION"     env-default:"3"`
	MaxTextLength int           `yaml:"max_text_length" env:"NARRATION_MAX_TEXT_LENGTH" env-default:"4000"`
	CacheTTL      time.Duration `yaml:"cache_ttl"       env:"NARRATION_CACHE_TTL"       env-default:"24h"`
	// LoadTimeout bounds one shared synthesize-and-upload run.
	LoadTimeout time.Duration `yaml:"load_timeout" env:"NARRATION_LOAD_TIMEOUT" env-default:"90s"`
}

// FileStoreConfig points at the JSON-file backed content store.
type FileStoreConfig struct {
	GatheringsPath string `yaml:"gatherings_path" env:"FILESTORE_GATHERINGS_PATH" env-default:"./data/gatherings.json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds login and public form endpoints per client IP.
type RateLimitConfig struct {
	LoginPerMinute  int `yaml:"login_per_minute"  env:"RATELIMIT_LOGIN_PER_MINUTE"  env-default:"10"`
	PublicPerMinute int `yaml:"public_per_minute" env:"RATELIMIT_PUBLIC_PER_MINUTE" env-default:"30"`
	// NarrationPerMinute bounds segment requests, each of which may synthesize audio.
	NarrationPerMinute int `yaml:"narration_per_minute" env:"RATELIMIT_NARRATION_PER_MINUTE" env-default:"60"`
	// TrustedProxies lists CIDRs or addresses whose X-Forwarded-For and
	// X-Real-Ip headers are believed. Empty means the socket peer is the client.
	TrustedProxies []string `yaml:"trusted_proxies" env:"RATELIMIT_TRUSTED_PROXIES" env-separator:","`
}
