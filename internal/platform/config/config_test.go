package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PGSQL_URL", "PORT", "IS_PRODUCTION", "DISPLAY_TIMEZONE", "SHUTDOWN_TIMEOUT", "CREATE_RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.True(t, cfg.EnableDBCheck)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "60-M", cfg.CreateRateLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.NotNil(t, cfg.DisplayLocation)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://rates:secret@db:5432/rates")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ENABLE_DB_CHECK", "false")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("CREATE_RATE_LIMIT", "5-S")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "postgres://rates:secret@db:5432/rates", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.False(t, cfg.EnableDBCheck)
	assert.Equal(t, "UTC", cfg.DisplayLocation.String())
	assert.Equal(t, "5-S", cfg.CreateRateLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NotEqual(t, "Mars/Olympus_Mons", cfg.DisplayLocation.String())
}
