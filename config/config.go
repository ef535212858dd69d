package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	ServerPort string
	ClientUrl  string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret       string
	DefaultPassword string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
)

// Load reads the .env file (if present) and populates the package variables
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "hackathons")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "change-me-in-production")
	DefaultPassword = os.Getenv("DEFAULT_ADMIN_PASSWORD")

	MailHost = os.Getenv("MAIL_HOST")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = os.Getenv("MAIL_USERNAME")
	MailPassword = os.Getenv("MAIL_PASSWORD")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
