package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	DbHost           string
	DbPort           string
	DbUser           string
	DbPassword       string
	DbName           string
	DbParams         string
	TrustedProxies   []string
	CorsOrigins      []string
	RateLimitPerSec  float64
	RateLimitBurst   int
	TemplateSeedPath string
	RecurringTickSec int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DbHost:           getEnv("MYSQL_HOST", "db"),
		DbPort:           getEnv("MYSQL_PORT", "3306"),
		DbUser:           getEnv("MYSQL_USER", "focusflow"),
		DbPassword:       getEnv("MYSQL_PASSWORD", "focusflow"),
		DbName:           getEnv("MYSQL_DATABASE", "focusflow"),
		DbParams:         getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:   parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsOrigins:      parseList(getEnv("CORS_ORIGINS", "*")),
		RateLimitPerSec:  getEnvFloat("RATE_LIMIT_PER_SEC", 25),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 50),
		TemplateSeedPath: getEnv("TEMPLATE_SEED_PATH", ""),
		RecurringTickSec: getEnvInt("RECURRING_TICK_SEC", 60),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
