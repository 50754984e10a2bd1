package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress        = ":5000"
	DefaultStoreURL          = ""
	DefaultAdminPassword     = ""
	// Меньше base64 от файла в 100 MB (~133 MB): такие файлы упираются в лимит тела
	DefaultMaxBodyBytes      = 110 << 20
	DefaultStoreMaxRetries   = 0
	DefaultKeepAliveInterval = 10 * time.Minute
	DefaultKeepAliveFrom     = 8
	DefaultKeepAliveTo       = 22
	DefaultKeepAliveTZ       = "Asia/Kolkata"

	DefaultWebRunAddress = ":3000"
	DefaultAPIAddress    = "http://localhost:5000"
)

var (
	ErrStoreURLRequired      = errors.New("store url is required")
	ErrAdminPasswordRequired = errors.New("admin password is required")
	ErrKeepAliveHour         = errors.New("keep-alive hours must be in 0..23")
	ErrKeepAliveInterval     = errors.New("keep-alive interval must be positive")
	ErrSessionKeyRequired    = errors.New("session key is required")
)

type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS"`
	StoreURL          string        `env:"STORE_URL"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES"`
	StoreMaxRetries   int           `env:"STORE_MAX_RETRIES"`
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
	KeepAliveFrom     int           `env:"KEEPALIVE_FROM"`
	KeepAliveTo       int           `env:"KEEPALIVE_TO"`
	KeepAliveTZ       string        `env:"KEEPALIVE_TZ"`
	CORSOrigins       []string      `env:"CORS_ORIGINS" envSeparator:","`
}

type WebConfig struct {
	RunAddress   string `env:"WEB_RUN_ADDRESS"`
	APIAddress   string `env:"API_ADDRESS"`
	SessionKey   string `env:"SESSION_KEY"`
	CookieSecure bool   `env:"COOKIE_SECURE"`
}

func Read() (Config, error) {
	config := Config{
		CORSOrigins: []string{"*"},
	}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.StoreURL, "s", DefaultStoreURL, "Script store endpoint protocol://hostname/path")
	flag.StringVar(&config.AdminPassword, "p", DefaultAdminPassword, "Shared admin password")
	flag.Int64Var(&config.MaxBodyBytes, "b", DefaultMaxBodyBytes, "Max request body size in bytes")
	flag.IntVar(&config.StoreMaxRetries, "r", DefaultStoreMaxRetries, "Retries for store reads (0 - single attempt)")

	flag.DurationVar(&config.KeepAliveInterval, "i", DefaultKeepAliveInterval, "Keep-alive interval (e.g. 10m, 30s)")
	flag.IntVar(&config.KeepAliveFrom, "from", DefaultKeepAliveFrom, "Keep-alive window start hour")
	flag.IntVar(&config.KeepAliveTo, "to", DefaultKeepAliveTo, "Keep-alive window end hour")
	flag.StringVar(&config.KeepAliveTZ, "tz", DefaultKeepAliveTZ, "Keep-alive window time zone")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.StoreURL == "" {
		return ErrStoreURLRequired
	}
	if c.AdminPassword == "" {
		return ErrAdminPasswordRequired
	}
	if c.KeepAliveInterval <= 0 {
		return ErrKeepAliveInterval
	}
	if !validHour(c.KeepAliveFrom) || !validHour(c.KeepAliveTo) {
		return fmt.Errorf("%w: from=%d to=%d", ErrKeepAliveHour, c.KeepAliveFrom, c.KeepAliveTo)
	}
	return nil
}

// Location загружает зону окна keep-alive
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.KeepAliveTZ)
}

func ReadWeb() (WebConfig, error) {
	config := WebConfig{}

	flag.StringVar(&config.RunAddress, "a", DefaultWebRunAddress, "Web run address")
	flag.StringVar(&config.APIAddress, "api", DefaultAPIAddress, "Proxy server address protocol://hostname:port")
	flag.StringVar(&config.SessionKey, "k", "", "Session cookie key")
	flag.BoolVar(&config.CookieSecure, "secure", false, "Send session cookie over https only")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func (c WebConfig) Validate() error {
	if c.SessionKey == "" {
		return ErrSessionKeyRequired
	}
	return nil
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}
