package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"calendar-agent/internal/model"
	"calendar-agent/pkg/log"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Agent specifics
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsJSON string // raw service account JSON; wins over CredentialsPath
	CredentialsPath string
	CalendarID      string
	Timezone        string
	RequestTimeout  time.Duration
}

// StartupError reports configuration the service cannot start with.
type StartupError struct {
	Problems []string
}

func (e *StartupError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsJSON = v.GetString("google_calendar.credentials_json")
	if creds := v.GetString("google_creds_json"); creds != "" {
		cfg.GoogleCalendar.CredentialsJSON = creds
	}
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	if path := v.GetString("google_calendar_credentials"); path != "" {
		cfg.GoogleCalendar.CredentialsPath = path
	}
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.RequestTimeout = v.GetDuration("google_calendar.request_timeout")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks everything that would otherwise fail on the first request.
func (cfg *Config) Validate() error {
	var problems []string

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		problems = append(problems, fmt.Sprintf("http_server.port %d out of range", cfg.HTTPServer.Port))
	}
	if !model.Environment(cfg.Environment.Name).IsValid() {
		problems = append(problems, fmt.Sprintf("environment.name %q must be %s, %s or %s",
			cfg.Environment.Name, model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction))
	}
	switch cfg.Logger.Mode {
	case log.ModeDevelopment, log.ModeProduction:
	default:
		problems = append(problems, fmt.Sprintf("logger.mode %q must be %s or %s", cfg.Logger.Mode, log.ModeDevelopment, log.ModeProduction))
	}
	switch cfg.HTTPServer.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		problems = append(problems, fmt.Sprintf("http_server.mode %q must be debug, release or test", cfg.HTTPServer.Mode))
	}

	gc := cfg.GoogleCalendar
	if strings.TrimSpace(gc.CredentialsJSON) == "" && gc.CredentialsPath == "" {
		problems = append(problems, "google calendar credentials missing: set GOOGLE_CREDS_JSON or google_calendar.credentials_path")
	}
	if gc.CredentialsJSON == "" && gc.CredentialsPath != "" {
		if _, err := os.Stat(gc.CredentialsPath); err != nil {
			problems = append(problems, fmt.Sprintf("google_calendar.credentials_path: %v", err))
		}
	}
	if gc.CalendarID == "" {
		problems = append(problems, "google_calendar.calendar_id is empty")
	}
	if _, err := time.LoadLocation(gc.Timezone); err != nil || gc.Timezone == "" {
		problems = append(problems, fmt.Sprintf("google_calendar.timezone %q is not a valid IANA zone", gc.Timezone))
	}
	if gc.RequestTimeout <= 0 {
		problems = append(problems, "google_calendar.request_timeout must be positive")
	}

	if len(problems) > 0 {
		return &StartupError{Problems: problems}
	}
	return nil
}

// CredentialsSource returns the raw credentials when inline, else the file path.
// Exactly one of the results is non-empty on a validated config.
func (c GoogleCalendarConfig) CredentialsSource() (inline []byte, path string) {
	if strings.TrimSpace(c.CredentialsJSON) != "" {
		return []byte(c.CredentialsJSON), ""
	}
	return nil, c.CredentialsPath
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", log.ModeDevelopment)
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Google Calendar defaults
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "Europe/London")
	v.SetDefault("google_calendar.request_timeout", "10s")
}
