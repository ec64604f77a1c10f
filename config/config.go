package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds application configuration
type Config struct {
	// Prediction service
	APIURL string

	// Sessions
	SessionIdleTimeout   time.Duration
	SessionSweepSchedule string
	MaxSessions          int

	// Server
	ServerPort       string
	CORSAllowOrigins []string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		APIURL: strings.TrimRight(getEnv("API_URL", "http://localhost:5000"), "/"),

		SessionIdleTimeout:   getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SessionSweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		MaxSessions:          getInt("MAX_SESSIONS", 10000),

		ServerPort:       getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		CORSAllowOrigins: getList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}

	if _, err := cron.ParseStandard(config.SessionSweepSchedule); err != nil {
		log.Printf("WARNING: invalid SESSION_SWEEP_SCHEDULE %q (%v), using @every 5m", config.SessionSweepSchedule, err)
		config.SessionSweepSchedule = "@every 5m"
	}

	config.CORSAllowOrigins = validOrigins(config.CORSAllowOrigins)

	return config
}

// CORSAllowsAll reports whether any origin may call the API
func (c *Config) CORSAllowsAll() bool {
	return len(c.CORSAllowOrigins) == 1 && c.CORSAllowOrigins[0] == "*"
}

// validOrigins keeps "*" or absolute http(s) origins. A "*" anywhere in
// the list wins.
func validOrigins(origins []string) []string {
	var valid []string
	for _, origin := range origins {
		if origin == "*" {
			return []string{"*"}
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || strings.Contains(origin, "*") {
			log.Printf("WARNING: ignoring invalid CORS origin %q", origin)
			continue
		}
		valid = append(valid, strings.TrimRight(origin, "/"))
	}
	if len(valid) == 0 {
		log.Println("WARNING: no valid CORS_ALLOW_ORIGINS, allowing all origins")
		return []string{"*"}
	}
	return valid
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("WARNING: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("WARNING: invalid %s %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
