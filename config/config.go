package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	JWTSecret     string
	TokenDuration time.Duration

	// OAuth2 client credentials checked on /oauth2/token.
	ClientID     string
	ClientSecret string

	ChordSeedPath string
}

func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8000"),
		DBUser:        getEnv("DB_USER", ""),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBHost:        getEnv("DB_HOST", ""),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenDuration: time.Duration(getEnvInt("TOKEN_DURATION_SECONDS", 86400)) * time.Second,
		ClientID:      getEnv("CLIENT_ID", "myclientid"),
		ClientSecret:  getEnv("CLIENT_SECRET", "myclientsecret"),
		ChordSeedPath: getEnv("CHORD_SEED_PATH", "db/chords.csv"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
