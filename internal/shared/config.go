package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	HostawayUseAPI    bool
	HostawayBase      string
	HostawayAccountID string
	HostawayAPIKey    string
	HostawayScope     string

	GoogleUseAPI bool
	GoogleBase   string
	GoogleAPIKey string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),

		HostawayUseAPI:    os.Getenv("HOSTAWAY_USE_API") == "true",
		HostawayBase:      env("HOSTAWAY_BASE_URL", "https://api.hostaway.com/v1"),
		HostawayAccountID: env("HOSTAWAY_ACCOUNT_ID", ""),
		HostawayAPIKey:    env("HOSTAWAY_API_KEY", ""),
		HostawayScope:     env("HOSTAWAY_SCOPE", "general"),

		GoogleUseAPI: os.Getenv("GOOGLE_USE_API") == "true",
		GoogleBase:   env("GOOGLE_PLACES_BASE_URL", "https://places.googleapis.com/v1"),
		GoogleAPIKey: env("GOOGLE_PLACES_API_KEY", ""),
	}
	if c.HostawayUseAPI && (c.HostawayAccountID == "" || c.HostawayAPIKey == "") {
		log.Warn().Msg("HOSTAWAY_USE_API is on but account credentials are incomplete")
	}
	if c.GoogleUseAPI && c.GoogleAPIKey == "" {
		log.Warn().Msg("GOOGLE_USE_API is on but GOOGLE_PLACES_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
