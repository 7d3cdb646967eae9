package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"medtrack-go/pkg/logger"
)

type Config struct {
	HTTPPort string
	Env      string
	DB       DBConfig
	Cache    CacheConfig
	Alerts   AlertsConfig
	Notifier NotifierConfig
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CacheConfig struct {
	// Backend selects the categories cache: "memory", "redis" or "off".
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CategoriesTTL time.Duration
}

type AlertsConfig struct {
	// LeadDays is how many days before expiry an alert is dated.
	LeadDays int
	// OnMerge decides what a top-up of an existing medicine does with
	// alerts: "create" always inserts a fresh one, "reuse" keeps an
	// existing pending alert and inserts nothing.
	OnMerge string
}

type NotifierConfig struct {
	Enabled bool
	// Schedule is a cron expression for the due-alert scan.
	Schedule string
}

const (
	OnMergeCreate = "create"
	OnMergeReuse  = "reuse"
)

func Load(log logger.Logger) (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Info("config: loaded .env")
	}

	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "medtrack"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Cache: CacheConfig{
			Backend:       getEnv("CACHE_BACKEND", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			CategoriesTTL: getEnvDuration("CATEGORIES_CACHE_TTL", time.Minute),
		},
		Alerts: AlertsConfig{
			LeadDays: getEnvInt("ALERT_LEAD_DAYS", 7),
			OnMerge:  parseOnMerge(getEnv("ALERT_ON_MERGE", OnMergeCreate)),
		},
		Notifier: NotifierConfig{
			Enabled:  getEnvBool("NOTIFIER_ENABLED", false),
			Schedule: getEnv("NOTIFIER_CRON", "0 8 * * *"),
		},
	}, nil
}

func parseOnMerge(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), OnMergeReuse) {
		return OnMergeReuse
	}
	return OnMergeCreate
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
