package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv string
	Port   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string
	JWTSecret   string
	CORSOrigins []string

	// ActivityLogSink selects where activity entries go: "db" persists them
	// in-process, "kafka" publishes them for cmd/consumer.
	ActivityLogSink   string
	ActivityLogBuffer int

	AttendanceLateAfter string
	RunMigrations       bool

	SeedCitiesFile    string
	SeedCountryCode   string
	SeedAdminEmail    string
	SeedAdminName     string
	SeedAdminPassword string

	ConnectRetries  int
	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "3000"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBName:              getEnv("DB_NAME", "speed_hrm"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		KafkaBroker:         getEnv("KAFKA_BROKER", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		CORSOrigins:         getEnvList("CORS_ORIGINS"),
		ActivityLogSink:     strings.ToLower(getEnv("ACTIVITY_LOG_SINK", "db")),
		ActivityLogBuffer:   getEnvInt("ACTIVITY_LOG_BUFFER", 1024),
		AttendanceLateAfter: getEnv("ATTENDANCE_LATE_AFTER", "09:15"),
		RunMigrations:       getEnvBool("RUN_MIGRATIONS", true),
		SeedCitiesFile:      getEnv("SEED_CITIES_FILE", "data/cities.json"),
		SeedCountryCode:     strings.ToUpper(getEnv("SEED_COUNTRY_CODE", "PK")),
		SeedAdminEmail:      getEnv("SEED_ADMIN_EMAIL", "admin@speed-hrm.local"),
		SeedAdminName:       getEnv("SEED_ADMIN_NAME", "Administrator"),
		SeedAdminPassword:   getEnv("SEED_ADMIN_PASSWORD", ""),
		ConnectRetries:      getEnvInt("CONNECT_RETRIES", 5),
		ShutdownTimeout:     getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
