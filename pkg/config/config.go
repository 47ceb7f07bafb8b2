package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported persistence backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Reset    ResetConfig
	CORS     CORSConfig
	Log      LogConfig
	Reports  ReportsConfig
	Rollbar  RollbarConfig
}

// StoreConfig selects and tunes the key-value backend behind the data store.
type StoreConfig struct {
	Backend       string
	FileDir       string
	KeyPrefix     string
	CapacityBytes int64
	// Failed saves are retried in the background this many times.
	SaveRetries    int
	SaveRetryDelay time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	Table        string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ResetConfig controls the confirmation token issued before a demo reset.
type ResetConfig struct {
	Secret string
	TTL    time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ReportsConfig gates class report rendering.
type ReportsConfig struct {
	Enabled bool
}

// RollbarConfig enables remote reporting of persistence failures.
type RollbarConfig struct {
	Token string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{
		Backend:        strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		FileDir:        v.GetString("STORE_FILE_DIR"),
		KeyPrefix:      v.GetString("STORE_KEY_PREFIX"),
		CapacityBytes:  v.GetInt64("STORE_CAPACITY_BYTES"),
		SaveRetries:    v.GetInt("STORE_SAVE_RETRIES"),
		SaveRetryDelay: parseDuration(v.GetString("STORE_SAVE_RETRY_DELAY"), 5*time.Second),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		Table:        v.GetString("DB_KV_TABLE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Reset = ResetConfig{
		Secret: v.GetString("RESET_TOKEN_SECRET"),
		TTL:    parseDuration(v.GetString("RESET_TOKEN_TTL"), 2*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Reports = ReportsConfig{Enabled: v.GetBool("ENABLE_REPORTS")}
	cfg.Rollbar = RollbarConfig{Token: v.GetString("ROLLBAR_TOKEN")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_BACKEND", BackendFile)
	v.SetDefault("STORE_FILE_DIR", "./data")
	v.SetDefault("STORE_KEY_PREFIX", "")
	// Browsers typically cap local storage around 5MB per origin.
	v.SetDefault("STORE_CAPACITY_BYTES", 5*1024*1024)
	v.SetDefault("STORE_SAVE_RETRIES", 3)
	v.SetDefault("STORE_SAVE_RETRY_DELAY", "5s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "myclassprogress")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_KV_TABLE", "kv_store")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RESET_TOKEN_SECRET", "dev_reset_secret")
	v.SetDefault("RESET_TOKEN_TTL", "2m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_REPORTS", true)
	v.SetDefault("ROLLBAR_TOKEN", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
