package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/mamadbah2/procurement-mock/internal/catalog"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Generator GeneratorConfig
	Digest    DigestConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port               string `validate:"required,numeric"`
	CORSAllowedOrigins []string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// GeneratorConfig selects the catalog variant and tunes page generation.
type GeneratorConfig struct {
	Variant         string `validate:"required"`
	PaginationTotal int    `validate:"gte=1"`
	MaxAttempts     int    `validate:"gte=1"`
}

// DigestConfig holds scheduler-related settings. An empty CronSchedule disables the job.
type DigestConfig struct {
	CronSchedule string
	PageSize     int    `validate:"gte=1,lte=1000"`
	Timezone     string `validate:"required"`
}

var validate = validator.New()

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine; configuration may come from the environment directly.
		_ = godotenv.Load()
	}

	paginationTotal, err := getenvInt("PAGINATION_TOTAL", 1250)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := getenvInt("GENERATOR_MAX_ATTEMPTS", 100000)
	if err != nil {
		return nil, err
	}
	digestPageSize, err := getenvInt("DIGEST_PAGE_SIZE", 50)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getenvWithDefault("APP_PORT", "8080"),
			CORSAllowedOrigins: splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level: strings.ToLower(getenvWithDefault("LOG_LEVEL", "info")),
		},
		Generator: GeneratorConfig{
			Variant:         strings.ToLower(getenvWithDefault("PROCUREMENT_VARIANT", catalog.VariantGeneric)),
			PaginationTotal: paginationTotal,
			MaxAttempts:     maxAttempts,
		},
		Digest: DigestConfig{
			CronSchedule: strings.TrimSpace(os.Getenv("DIGEST_CRON_SCHEDULE")),
			PageSize:     digestPageSize,
			Timezone:     getenvWithDefault("TIMEZONE", "UTC"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that configuration fields are populated and in range.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := catalog.Lookup(c.Generator.Variant); err != nil {
		return fmt.Errorf("PROCUREMENT_VARIANT: %w", err)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
