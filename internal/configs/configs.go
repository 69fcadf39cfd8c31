package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisAddr              string
	JWTSecret              string
	TokenTTL               time.Duration
	SMTPHost               string
	SMTPPort               string
	SMTPUser               string
	SMTPPassword           string
	MailFrom               string
	MailWorkers            int
	MailQueueSize          int
	FrontendURL            string
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskhive.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTL:               time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 10)) * time.Minute,
		SMTPHost:               getEnv("SMTP_HOST", "127.0.0.1"),
		SMTPPort:               getEnv("SMTP_PORT", "25"),
		SMTPUser:               getEnv("SMTP_USER", ""),
		SMTPPassword:           getEnv("SMTP_PASSWORD", ""),
		MailFrom:               getEnv("MAIL_FROM", "TaskHive <admin@taskhive.com>"),
		MailWorkers:            getEnvAsInt("MAIL_WORKERS", 2),
		MailQueueSize:          getEnvAsInt("MAIL_QUEUE_SIZE", 64),
		FrontendURL:            getEnv("FRONTEND_URL", "http://localhost:5173"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTL <= 0 {
		log.Fatal("TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.MailWorkers <= 0 {
		log.Fatal("MAIL_WORKERS must be greater than 0")
	}
	if cfg.MailQueueSize <= 0 {
		log.Fatal("MAIL_QUEUE_SIZE must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
