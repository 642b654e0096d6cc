package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort               = "5000"
	defaultDatabaseURL        = "church.db"
	defaultStorageDriver      = "local"
	defaultLocalUploadDir     = "./uploads"
	defaultLocalStaticPath    = "/static/uploads"
	defaultCleanupInterval    = "1m"
	defaultCleanupMaxAttempts = "10"
	defaultShutdownTimeout    = "15s"
	defaultLogLevel           = "info"
)

const (
	StorageDriverGCS    = "gcs"
	StorageDriverLocal  = "local"
	StorageDriverMemory = "memory"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	LogLevel    string

	StorageDriver     string
	GCSBucket         string
	CDNBaseURL        string
	EmulatorHost      string
	CredentialsJSON   string
	LocalUploadDir    string
	LocalStaticPath   string
	PublicBaseURL     string
	CORSAllowedOrigin []string

	CleanupInterval    time.Duration
	CleanupMaxAttempts int
	ShutdownTimeout    time.Duration
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() (*Config, error) {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", defaultStorageDriver)))
	cfg.GCSBucket = strings.TrimSpace(os.Getenv("GCS_BUCKET_NAME"))
	cfg.CDNBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("CDN_BASE_URL")), "/")
	cfg.EmulatorHost = strings.TrimRight(strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST")), "/")
	cfg.CredentialsJSON = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	cfg.LocalUploadDir = strings.TrimSpace(getEnv("LOCAL_UPLOAD_DIR", defaultLocalUploadDir))
	cfg.LocalStaticPath = strings.TrimSpace(getEnv("LOCAL_STATIC_PATH", defaultLocalStaticPath))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")
	cfg.CORSAllowedOrigin = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	var err error
	cfg.CleanupInterval, err = parseDurationEnv("CLEANUP_INTERVAL", defaultCleanupInterval)
	if err != nil {
		return nil, err
	}
	cfg.CleanupMaxAttempts, err = parseIntEnv("CLEANUP_MAX_ATTEMPTS", defaultCleanupMaxAttempts)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with a prod-like APP_ENV.
func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL must be > 0")
	}
	if cfg.CleanupMaxAttempts <= 0 {
		return fmt.Errorf("CLEANUP_MAX_ATTEMPTS must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}

	switch cfg.StorageDriver {
	case StorageDriverGCS:
		if cfg.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET_NAME is required when STORAGE_DRIVER=gcs")
		}
	case StorageDriverLocal:
		if cfg.LocalUploadDir == "" {
			return fmt.Errorf("LOCAL_UPLOAD_DIR must not be empty when STORAGE_DRIVER=local")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: gcs, local, memory")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.StorageDriver == StorageDriverMemory {
			return fmt.Errorf("in prod/release STORAGE_DRIVER=memory is not allowed")
		}
		if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") && !strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
			return fmt.Errorf("in prod/release DATABASE_URL must point to PostgreSQL")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
