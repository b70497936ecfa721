package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultServerAddr     = ":8080"
	DefaultAppBaseURL     = "http://localhost:8080"
	DefaultContactAddress = "cjrsolutionsenterprise@gmail.com"
	DefaultContactPhones  = "01-3003429,964284252"
	DefaultDelivery       = "mailto"
	DefaultSubmitDelay    = time.Second
	DefaultStatusReset    = 5 * time.Second
	DefaultSessionTTL     = 30 * time.Minute
	DefaultRateLimit      = 10
	devSessionSecret      = "cjr-development-session-secret!!"
)

// Provider exposes configuration to the rest of the application.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetCatalogPath() string
	GetCatalogWatch() bool
	GetContactDelivery() string
	GetContactAddress() string
	GetContactPhones() []string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetSubmitDelay() time.Duration
	GetStatusReset() time.Duration
	GetContactSessionTTL() time.Duration
	GetRateLimitPerMinute() int
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppBaseURL     string
	SessionSecret  string
	CatalogPath    string
	CatalogWatch   bool
	Delivery       string
	ContactAddress string
	ContactPhones  []string
	EmailAPIKey    string
	EmailSender    string
	SubmitDelay    time.Duration
	StatusReset    time.Duration
	SessionTTL     time.Duration
	RateLimit      int
}

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
// Malformed values fall back to their default with a warning.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:     getString("APP_ADDR", DefaultServerAddr),
		AppBaseURL:     getString("APP_BASE_URL", DefaultAppBaseURL),
		SessionSecret:  getString("SESSION_SECRET", ""),
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		CatalogWatch:   getBool("CATALOG_WATCH", false),
		Delivery:       getString("CONTACT_DELIVERY", DefaultDelivery),
		ContactAddress: getString("CONTACT_ADDRESS", DefaultContactAddress),
		ContactPhones:  getList("CONTACT_PHONE", DefaultContactPhones),
		EmailAPIKey:    os.Getenv("EMAIL_API_KEY"),
		EmailSender:    os.Getenv("EMAIL_SENDER"),
		SubmitDelay:    getDuration("CONTACT_SUBMIT_DELAY", DefaultSubmitDelay),
		StatusReset:    getDuration("CONTACT_STATUS_RESET", DefaultStatusReset),
		SessionTTL:     getDuration("CONTACT_SESSION_TTL", DefaultSessionTTL),
		RateLimit:      getInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimit),
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set, using the development secret")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Delivery {
	case "mailto", "log":
	case "resend":
		if c.EmailAPIKey == "" {
			return fmt.Errorf("contact delivery is 'resend' but EMAIL_API_KEY is not set")
		}
	default:
		return fmt.Errorf("unknown contact delivery: %s", c.Delivery)
	}
	if c.CatalogWatch && c.CatalogPath == "" {
		return fmt.Errorf("CATALOG_WATCH requires CATALOG_PATH")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimit)
	}
	return nil
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetCatalogPath() string { return c.CatalogPath }
func (c *Config) GetCatalogWatch() bool { return c.CatalogWatch }
func (c *Config) GetContactDelivery() string { return c.Delivery }
func (c *Config) GetContactAddress() string { return c.ContactAddress }
func (c *Config) GetContactPhones() []string { return c.ContactPhones }
func (c *Config) GetEmailAPIKey() string { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string { return c.EmailSender }
func (c *Config) GetSubmitDelay() time.Duration { return c.SubmitDelay }
func (c *Config) GetStatusReset() time.Duration { return c.StatusReset }
func (c *Config) GetContactSessionTTL() time.Duration { return c.SessionTTL }
func (c *Config) GetRateLimitPerMinute() int { return c.RateLimit }

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getList splits a comma separated value, dropping empty items.
func getList(key, fallback string) []string {
	var out []string
	for _, item := range strings.Split(getString(key, fallback), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring malformed boolean setting", "key", key, "value", v)
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring malformed integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Ignoring malformed duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
