package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config poshan-board (dashboard HTTP API) configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Remote RemoteConfig
	Redis  struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Session SessionConfig
	MQTT    MQTTConfig
}

// RemoteConfig NRC persistence API (the upstream service owning all entities)
type RemoteConfig struct {
	BaseURL string // e.g. "http://localhost:5000/api"
}

// SessionConfig session lifetime settings
type SessionConfig struct {
	MaxAge            time.Duration // hard session expiry since login
	InactivityTimeout time.Duration // logout after this much idle time
	InactivityWarning time.Duration // warn this long before the idle logout
}

// MQTTConfig critical-alert publishing (default false)
type MQTTConfig struct {
	Enabled  bool
	Broker   string // e.g. "tcp://localhost:1883"
	ClientID string
	Username string
	Password string
	Topic    string // alerts topic (e.g. "poshan/alerts")
}

func Load() *Config {
	// .env is optional; env vars always win
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Remote.BaseURL = getEnv("REMOTE_API_BASE_URL", "http://localhost:5000/api")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Session.MaxAge = parseDuration(getEnv("SESSION_MAX_AGE", "24h"), 24*time.Hour)
	cfg.Session.InactivityTimeout = parseDuration(getEnv("SESSION_IDLE_TIMEOUT", "15m"), 15*time.Minute)
	cfg.Session.InactivityWarning = parseDuration(getEnv("SESSION_IDLE_WARNING", "2m"), 2*time.Minute)

	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "poshan-board-alerts")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.Topic = getEnv("MQTT_TOPIC", "poshan/alerts")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
