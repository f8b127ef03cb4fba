package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds every setting the API server and the admin CLI need.
// It is read from the environment (optionally seeded from a .env file).
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	AppEnv   string `validate:"required"`
	HTTPPort string `validate:"required"`
	BaseURL  string `validate:"required,url"`
}

type DatabaseConfig struct {
	DSN             string `validate:"required"`
	MaxOpenConns    int    `validate:"gte=1"`
	MaxIdleConns    int    `validate:"gte=0"`
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type LoggerConfig struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	Encoding   string `validate:"required,oneof=console json"`
	Type       string `validate:"required,oneof=console file"`
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

type JWTConfig struct {
	SecretKey string        `validate:"required,min=16"`
	TTL       time.Duration `validate:"gt=0"`
}

// RedisConfig is optional: an empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type UploadConfig struct {
	Dir      string `validate:"required"`
	MaxBytes int64  `validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `validate:"min=1"`
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "development"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
			BaseURL:  getEnv("BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_DSN", "root:root@tcp(127.0.0.1:3306)/umkm_web?parseTime=true"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", false),
		},
		Logger: LoggerConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Encoding:   getEnv("LOG_ENCODING", "console"),
			Type:       getEnv("LOG_TYPE", "console"),
			FilePath:   getEnv("LOG_FILE_PATH", ""),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 10),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", ""),
			TTL:       getEnvDuration("JWT_TTL", 72*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", 10*time.Minute),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "./uploads"),
			MaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5<<20)),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
	}
}

// Validate checks the loaded values before anything is wired from them.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}

	if c.Logger.Type == "file" {
		if c.Logger.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if c.Logger.MaxSize < 1 || c.Logger.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if c.Logger.MaxBackups < 1 || c.Logger.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if c.Logger.MaxAge < 1 || c.Logger.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
