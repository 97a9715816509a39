package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv   AppEnv
		LogLevel logrus.Level
		HTTP     HTTP
		Database Database
		Queue    Queue
		Auth     Auth
	}

	HTTP struct {
		Port int
	}

	Database struct {
		Postgres Postgres
		Redis    Redis
	}

	Postgres struct {
		Host     string
		Port     int
		Username string
		Password string
		Database string
	}

	Redis struct {
		Addr     string
		Password string
		Database int
		CacheTTL time.Duration
	}

	Queue struct {
		ConsultationMinutes int
		StrictAdvance       bool
		CleanupSchedule     string
	}

	Auth struct {
		AccessSecret string
	}
)

// Load reads .env (unless ENV_CHEK says the environment is already injected)
// and builds the configuration from environment variables.
func Load() (*Config, error) {
	if os.Getenv("ENV_CHEK") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return FromEnv(), nil
}

func FromEnv() *Config {
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}

	return &Config{
		AppEnv:   AppEnv(strings.ToLower(getEnv("APP_ENV", string(DevelopEnv)))),
		LogLevel: level,
		HTTP: HTTP{
			Port: getEnvAsInt("HTTP_PORT", 8080),
		},
		Database: Database{
			Postgres: Postgres{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnvAsInt("DB_PORT", 5432),
				Username: getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				Database: getEnv("DB_NAME", "clinic"),
			},
			Redis: Redis{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				Database: getEnvAsInt("REDIS_DB", 0),
				CacheTTL: getEnvAsDuration("DIRECTORY_CACHE_TTL", 10*time.Minute),
			},
		},
		Queue: Queue{
			ConsultationMinutes: getEnvAsInt("CONSULTATION_MINUTES", 15),
			StrictAdvance:       getEnvAsBool("QUEUE_STRICT_ADVANCE", true),
			CleanupSchedule:     getEnvRaw("CLEANUP_SCHEDULE", "0 0 3 * * *"),
		},
		Auth: Auth{
			AccessSecret: getEnv("JWT_ACCESS_SECRET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRaw lets an explicitly empty variable override the default.
func getEnvRaw(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
