package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_URL", "PORT", "SERVER_PORT", "SESSION_IDLE_TIMEOUT", "SESSION_SWEEP_SCHEDULE", "CORS_ALLOW_ORIGINS", "MAX_SESSIONS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "@every 5m", cfg.SessionSweepSchedule)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.CORSAllowsAll())
	assert.Equal(t, 10000, cfg.MaxSessions)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_URL", "https://predict.example.com/")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_IDLE_TIMEOUT", "10m")
	t.Setenv("SESSION_SWEEP_SCHEDULE", "*/2 * * * *")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("MAX_SESSIONS", "50")

	cfg := Load()

	assert.Equal(t, "https://predict.example.com", cfg.APIURL)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 10*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "*/2 * * * *", cfg.SessionSweepSchedule)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.CORSAllowsAll())
	assert.Equal(t, 50, cfg.MaxSessions)
}

func TestLoad_PortWinsOverServerPort(t *testing.T) {
	t.Setenv("PORT", "5001")
	t.Setenv("SERVER_PORT", "9090")

	assert.Equal(t, "5001", Load().ServerPort)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_IDLE_TIMEOUT", "soon")
	t.Setenv("SESSION_SWEEP_SCHEDULE", "whenever")
	t.Setenv("MAX_SESSIONS", "lots")

	cfg := Load()

	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "@every 5m", cfg.SessionSweepSchedule)
}

func TestLoad_CORSOriginsWithoutSchemeAreDropped(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "frontend.test,https://app.test/,http://*.test")

	assert.Equal(t, []string{"https://app.test"}, Load().CORSAllowOrigins)
}

func TestLoad_CORSOnlyInvalidOriginsFallBackToAll(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "frontend.test")

	cfg := Load()
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.CORSAllowsAll())
}

func TestLoad_CORSWildcardWins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.test,*")

	assert.True(t, Load().CORSAllowsAll())
}
