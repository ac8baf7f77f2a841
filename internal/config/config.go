package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // roster time zone must resolve on hosts without zoneinfo

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Roster generation
	RosterTimezone   string `mapstructure:"ROSTER_TIMEZONE"`
	RosterCutoffHour int    `mapstructure:"ROSTER_CUTOFF_HOUR"`
	RosterEndDate    string `mapstructure:"ROSTER_END_DATE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.AllowedOrigins = splitAndTrim(strings.Join(config.AllowedOrigins, ","))

	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	// Database defaults
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "prayer_roster")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "data/roster.db")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// Roster defaults
	v.SetDefault("ROSTER_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("ROSTER_CUTOFF_HOUR", 19)
	v.SetDefault("ROSTER_END_DATE", "")
}

func buildDatabaseURL(config *Config) string {
	if config.DatabaseDriver != DriverPostgres {
		return config.SQLitePath
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.DatabaseDriver {
	case DriverSQLite:
		if config.DatabaseURL == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER is sqlite")
		}
	case DriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	if config.RosterCutoffHour < 0 || config.RosterCutoffHour > 23 {
		return fmt.Errorf("ROSTER_CUTOFF_HOUR must be between 0 and 23")
	}

	if _, err := time.LoadLocation(config.RosterTimezone); err != nil {
		return fmt.Errorf("invalid ROSTER_TIMEZONE: %w", err)
	}

	if config.RosterEndDate != "" {
		if _, err := time.Parse(time.DateOnly, config.RosterEndDate); err != nil {
			return fmt.Errorf("ROSTER_END_DATE must be formatted as YYYY-MM-DD: %w", err)
		}
	}

	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location returns the time zone the roster calendar is kept in
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.RosterTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EndDate returns the last date slot seeding may produce.
// An empty ROSTER_END_DATE means 31 December of the year of now.
func (c *Config) EndDate(now time.Time) time.Time {
	if c.RosterEndDate != "" {
		if d, err := time.ParseInLocation(time.DateOnly, c.RosterEndDate, time.UTC); err == nil {
			return d
		}
	}
	return time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}
