package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Log      LogConfig
	CORS     CORSConfig
	Matcher  MatcherConfig
	Gaps     GapsConfig
	Forecast ForecastConfig
	Promo    PromoConfig
	Schedule ScheduleConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatcherConfig holds settings for the hosted reconciliation gateway.
type MatcherConfig struct {
	BaseURL              string  `mapstructure:"base_url"`
	APIKey               string  `mapstructure:"api_key"`
	TimeoutSecs          int     `mapstructure:"timeout_secs"`
	AutoApproveThreshold float64 `mapstructure:"auto_approve_threshold"`
	FeedbackSampleSize   int     `mapstructure:"feedback_sample_size"`
}

// GapsConfig holds gap-detection settings.
type GapsConfig struct {
	TrailingWindowDays int `mapstructure:"trailing_window_days"`
}

// ForecastConfig holds cash-flow forecast read settings.
type ForecastConfig struct {
	HorizonDays int `mapstructure:"horizon_days"`
}

// PromoConfig holds promo validation settings.
type PromoConfig struct {
	ConfigName string `mapstructure:"config_name"`
	Currency   string `mapstructure:"currency"`
}

// ScheduleConfig holds background job settings.
type ScheduleConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	GapDetectCron string `mapstructure:"gap_detect_cron"`
}

// Load reads configuration from environment variables with the BOOKKEEPER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "bookkeeper")
	v.SetDefault("db.password", "bookkeeper_secret")
	v.SetDefault("db.name", "bookkeeper_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Matcher gateway defaults
	v.SetDefault("matcher.base_url", "")
	v.SetDefault("matcher.api_key", "")
	v.SetDefault("matcher.timeout_secs", 120)
	v.SetDefault("matcher.auto_approve_threshold", 0.95)
	v.SetDefault("matcher.feedback_sample_size", 50)

	// Gap detection defaults
	v.SetDefault("gaps.trailing_window_days", 90)

	// Forecast defaults
	v.SetDefault("forecast.horizon_days", 30)

	// Promo defaults
	v.SetDefault("promo.config_name", "webflow")
	v.SetDefault("promo.currency", "AED")

	// Schedule defaults
	v.SetDefault("schedule.enabled", false)
	v.SetDefault("schedule.gap_detect_cron", "0 3 * * *")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "BOOKKEEPER_SERVER_PORT",
		"server.read_timeout":            "BOOKKEEPER_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "BOOKKEEPER_SERVER_WRITE_TIMEOUT",
		"server.environment":             "BOOKKEEPER_SERVER_ENVIRONMENT",
		"db.host":                        "BOOKKEEPER_DB_HOST",
		"db.port":                        "BOOKKEEPER_DB_PORT",
		"db.user":                        "BOOKKEEPER_DB_USER",
		"db.password":                    "BOOKKEEPER_DB_PASSWORD",
		"db.name":                        "BOOKKEEPER_DB_NAME",
		"db.sslmode":                     "BOOKKEEPER_DB_SSLMODE",
		"db.max_open":                    "BOOKKEEPER_DB_MAX_OPEN",
		"db.max_idle":                    "BOOKKEEPER_DB_MAX_IDLE",
		"log.level":                      "BOOKKEEPER_LOG_LEVEL",
		"log.format":                     "BOOKKEEPER_LOG_FORMAT",
		"cors.allowed_origins":           "BOOKKEEPER_CORS_ALLOWED_ORIGINS",
		"matcher.base_url":               "BOOKKEEPER_MATCHER_BASE_URL",
		"matcher.api_key":                "BOOKKEEPER_MATCHER_API_KEY",
		"matcher.timeout_secs":           "BOOKKEEPER_MATCHER_TIMEOUT_SECS",
		"matcher.auto_approve_threshold": "BOOKKEEPER_MATCHER_AUTO_APPROVE_THRESHOLD",
		"matcher.feedback_sample_size":   "BOOKKEEPER_MATCHER_FEEDBACK_SAMPLE_SIZE",
		"gaps.trailing_window_days":      "BOOKKEEPER_GAPS_TRAILING_WINDOW_DAYS",
		"forecast.horizon_days":          "BOOKKEEPER_FORECAST_HORIZON_DAYS",
		"promo.config_name":              "BOOKKEEPER_PROMO_CONFIG_NAME",
		"promo.currency":                 "BOOKKEEPER_PROMO_CURRENCY",
		"schedule.enabled":               "BOOKKEEPER_SCHEDULE_ENABLED",
		"schedule.gap_detect_cron":       "BOOKKEEPER_SCHEDULE_GAP_DETECT_CRON",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BOOKKEEPER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BOOKKEEPER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Matcher = MatcherConfig{
		BaseURL:              v.GetString("matcher.base_url"),
		APIKey:               v.GetString("matcher.api_key"),
		TimeoutSecs:          v.GetInt("matcher.timeout_secs"),
		AutoApproveThreshold: v.GetFloat64("matcher.auto_approve_threshold"),
		FeedbackSampleSize:   v.GetInt("matcher.feedback_sample_size"),
	}
	cfg.Gaps = GapsConfig{
		TrailingWindowDays: v.GetInt("gaps.trailing_window_days"),
	}
	cfg.Forecast = ForecastConfig{
		HorizonDays: v.GetInt("forecast.horizon_days"),
	}
	cfg.Promo = PromoConfig{
		ConfigName: v.GetString("promo.config_name"),
		Currency:   v.GetString("promo.currency"),
	}
	cfg.Schedule = ScheduleConfig{
		Enabled:       v.GetBool("schedule.enabled"),
		GapDetectCron: v.GetString("schedule.gap_detect_cron"),
	}

	return cfg, nil
}
