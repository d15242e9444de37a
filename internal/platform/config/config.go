package config

import (
	"log"
	"time"
	_ "time/tzdata" // DISPLAY_TIMEZONE must resolve on minimal images

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "5000"
	defaultMigrationsPath  = "file://migrations"
	defaultDisplayTimezone = "America/Mexico_City"
	defaultCreateRateLimit = "60-M"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	RunMigrations   bool
	MigrationsPath  string
	DisplayLocation *time.Location
	CreateRateLimit string // ulule/limiter format, e.g. "60-M"
	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("DISPLAY_TIMEZONE", defaultDisplayTimezone)
	v.SetDefault("CREATE_RATE_LIMIT", defaultCreateRateLimit)
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())

	// Environment variables override defaults and anything godotenv loaded.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	tzName := v.GetString("DISPLAY_TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: Invalid value for DISPLAY_TIMEZONE ('%s'). Defaulting to %s.\n", tzName, defaultDisplayTimezone)
		loc, err = time.LoadLocation(defaultDisplayTimezone)
		if err != nil {
			loc = time.Local
		}
	}
	cfg.DisplayLocation = loc

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	cfg.CreateRateLimit = v.GetString("CREATE_RATE_LIMIT")
	if cfg.CreateRateLimit == "" {
		cfg.CreateRateLimit = defaultCreateRateLimit
	}

	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = v.GetBool("RUN_MIGRATIONS")

	return cfg, nil
}
