package configs

import (
	"os"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configsdatabase"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Config holds all environment-backed application settings.
type Config struct {
	AppEnv  string // local|production
	Port    string
	BaseURL string // absolute origin used in the sitemap

	// SMTP / notification mail
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SMTPFromEmail   string
	PracticeMailbox string // recipient of form request notifications

	SessionSecret string
}

var cfg *Config

// Load reads .env (if present) and environment variables into the global
// Config. Missing non-critical values only produce warnings; the contact
// pipeline re-checks the mailbox at submission time.
func Load() *Config {
	_ = godotenv.Load()

	cfg = &Config{
		AppEnv:          getEnv("APP_ENV", "production"),
		Port:            getEnv("PORT", "3000"),
		BaseURL:         getEnv("APP_BASE_URL", "https://praxis.example"),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:   getEnv("SMTP_FROM_EMAIL", "noreply@praxis.example"),
		PracticeMailbox: getEnv("PRACTICE_MAILBOX", ""),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
	}

	if cfg.PracticeMailbox == "" {
		configslog.SLog.Warn("PRACTICE_MAILBOX is not set; form request notifications cannot be delivered")
	}
	if cfg.SMTPHost == "" {
		configslog.SLog.Warn("SMTP_HOST is not set; outbound mail is disabled")
	}

	return cfg
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

// IsLocal reports whether the app runs in local/development configuration.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}

// GetDB exposes the shared database handle to the service layer.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
