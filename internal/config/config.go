package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the HTTP server. Questionnaire
// content is compiled in and never configured here.
type Config struct {
	Port            string        `validate:"required,numeric"`
	GinMode         string        `validate:"oneof=debug release test"`
	LogLevel        string        `validate:"oneof=debug info warn warning error"`
	CacheTTL        time.Duration `validate:"gte=0"`
	CacheSize       int           `validate:"gte=0"`
	RateLimitPerMin int           `validate:"gte=0"`
	RedisAddr       string        `validate:"omitempty,hostname_port"`
	RedisPassword   string
	RedisDB         int           `validate:"gte=0,lte=15"`
	AllowedOrigins  []string      `validate:"dive,required,url|eq=*"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Default returns the configuration used when no variable is set
func Default() Config {
	return Config{
		Port:            "8080",
		GinMode:         "release",
		LogLevel:        "info",
		CacheTTL:        15 * time.Minute,
		CacheSize:       1024,
		RateLimitPerMin: 60,
		RedisDB:         0,
		AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Load reads the configuration from the environment. Files are loaded with
// godotenv first, without overriding variables already set; missing files
// are ignored.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, apperrors.WrapError(err, "load %s", f)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a validated configuration from a variable lookup
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}
	dur := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = d
	}

	str("PORT", &cfg.Port)
	str("GIN_MODE", &cfg.GinMode)
	str("LOG_LEVEL", &cfg.LogLevel)
	dur("CACHE_TTL", &cfg.CacheTTL)
	num("CACHE_SIZE", &cfg.CacheSize)
	num("RATE_LIMIT_PER_MIN", &cfg.RateLimitPerMin)
	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PASSWORD", &cfg.RedisPassword)
	num("REDIS_DB", &cfg.RedisDB)
	dur("REQUEST_TIMEOUT", &cfg.RequestTimeout)
	dur("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)
	if v, ok := lookup("ALLOWED_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if len(errs) > 0 {
		return Config{}, apperrors.NewConfigurationError("invalid configuration", errors.Join(errs...))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its validate tag. Failures are
// returned as a configuration error.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewConfigurationError("invalid configuration", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return apperrors.NewConfigurationError("invalid configuration", errors.New(strings.Join(msgs, "; ")))
}

// RateLimitEnabled reports whether requests are limited at all
func (c Config) RateLimitEnabled() bool {
	return c.RateLimitPerMin > 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
