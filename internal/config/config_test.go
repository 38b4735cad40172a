// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Host: "localhost", Name: "storefront_db", User: "storefront_user"},
		Redis:    RedisConfig{Host: "localhost", Port: "6379"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Redis.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_AdminKeyLength(t *testing.T) {
	cfg := validConfig()

	// No key at all is fine, admin routes are just disabled
	require.NoError(t, cfg.Validate())

	cfg.Security.AdminAPIKey = "short"
	assert.Error(t, cfg.Validate())

	cfg.Security.AdminAPIKey = "a-sufficiently-long-admin-key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmailRequiresSMTPHost(t *testing.T) {
	cfg := validConfig()
	cfg.Email.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Email.SMTPHost = "smtp.example.com"
	assert.NoError(t, cfg.Validate())
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     "5432",
			User:     "app",
			Password: "secret",
			Name:     "storefront_db",
			SSLMode:  "require",
		},
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=app password=secret dbname=storefront_db sslmode=require",
		cfg.GetDatabaseDSN())
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Host: "cache.internal", Port: "6380"}}
	assert.Equal(t, "cache.internal:6380", cfg.GetRedisAddr())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "45s")
	t.Setenv("TEST_SLICE", "a,b,c")

	assert.Equal(t, "value", getEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", getEnv("TEST_MISSING", "default"))

	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 0))
	assert.Equal(t, 7, getEnvAsInt("TEST_MISSING", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_STRING", 7))

	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.True(t, getEnvAsBool("TEST_MISSING", true))

	assert.Equal(t, 45*time.Second, getEnvAsDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_MISSING", time.Minute))

	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_MISSING", []string{"x"}))
}
