// README: Config loader with env defaults for HTTP, DB, Redis, sheets and maps settings.
package config

import (
	"os"
	"strconv"
	"strings"
)

type SheetsConfig struct {
	// URLTemplate contains one %s placeholder for the location identifier.
	URLTemplate string
	// IDs are the known location identifiers to fetch on refresh.
	IDs []string
	// CacheDir holds one raw grid file per location identifier.
	CacheDir string
	// TTLHours is the calendar store lifetime before a re-fetch.
	TTLHours int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Sheets SheetsConfig
	Maps   struct {
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CARAVAN_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("CARAVAN_DB_DSN")
	cfg.Redis.Addr = envOrDefault("CARAVAN_REDIS_ADDR", "localhost:6379")
	cfg.Sheets.URLTemplate = envOrDefault("CARAVAN_SHEET_URL", "https://sheets.example.com/export/%s.csv")
	cfg.Sheets.IDs = envOrDefaultList("CARAVAN_SHEET_IDS", []string{
		"toronto-central", "north-york", "etobicoke", "mississauga-east", "hamilton-main",
	})
	cfg.Sheets.CacheDir = envOrDefault("CARAVAN_CACHE_DIR", "./cache/sheets")
	cfg.Sheets.TTLHours = envOrDefaultInt("CARAVAN_CALENDAR_TTL_HOURS", 4)
	cfg.Maps.APIKey = envOrError("MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
