package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	GinMode    string
	ServerAddr string
}

func Load() *Config {
	// Missing .env is fine; real deployments use environment variables.
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "programs"),
		DBPassword: getEnv("DB_PASSWORD", "programs"),
		DBName:     getEnv("DB_NAME", "programs_api"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
