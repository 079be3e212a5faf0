package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "miambidi", cfg.DBName)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_NAME", "miambidi_test")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("GOOGLE_CLIENT_IDS", "web-client.apps.googleusercontent.com, ios-client.apps.googleusercontent.com")
	t.Setenv("ADMIN_EMAILS", "admin@miambidi.app")

	cfg := Load()

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "miambidi_test", cfg.DBName)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, []string{
		"web-client.apps.googleusercontent.com",
		"ios-client.apps.googleusercontent.com",
	}, cfg.GoogleClientIDList())
	assert.Equal(t, []string{"admin@miambidi.app"}, cfg.AdminEmailList())
}

func TestCSVListsEmpty(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.GoogleClientIDList())
	assert.Nil(t, cfg.AdminEmailList())
	assert.Nil(t, cfg.AdminUserIDList())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "miambidi",
		DBPassword: "secret",
		DBName:     "miambidi",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=UTC")
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("not-a-duration"))
	assert.Equal(t, time.Hour, parseDuration("1h"))
}
