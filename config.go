package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	CORSOrigins []string
	Port        string
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("[env] loaded", p)
			return
		}
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// splitOrigins parses a comma-separated origin list, trimming whitespace and
// trailing slashes.
func splitOrigins(s string) []string {
	var origins []string
	for _, p := range strings.Split(s, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func loadConfig() Config {
	loadDotenv()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("[DB] DATABASE_URL is not set. Refusing to start.")
	}
	// local only: allow sslmode=disable if using localhost
	if strings.Contains(dsn, "localhost") && !strings.Contains(dsn, "sslmode=") {
		if strings.Contains(dsn, "?") {
			dsn += "&sslmode=disable"
		} else {
			dsn += "?sslmode=disable"
		}
	}

	return Config{
		DatabaseURL: dsn,
		CORSOrigins: splitOrigins(envOr("CORS_ORIGINS", "http://localhost:3000")),
		Port:        envOr("PORT", "8080"),
	}
}
