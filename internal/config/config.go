package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-hrms/internal/shared/connection"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv string

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string
	JWTSecret   string
	ExportDir   string

	ConnectRetries int
	OutboxInterval time.Duration
}

// Load reads the process environment. Call godotenv.Load first to pick up .env.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:         getEnv("APP_ENV", EnvDevelopment),
		Port:           getEnv("PORT", "3000"),
		ReadTimeout:    getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:   getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:    getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "hrms"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ExportDir:      getEnv("EXPORT_DIR", os.TempDir()),
		ConnectRetries: getInt("CONNECT_RETRIES", 5),
		OutboxInterval: getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, EnvDevelopment)
}

func (c Config) DSN() string {
	return connection.BuildDSN(c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
