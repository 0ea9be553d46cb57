// Package config читает конфигурацию сервиса из окружения.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix — префикс переменных окружения, например ACTIVITIES_ADDRESS.
const Prefix = "activities"

type Config struct {
	// Address — адрес, на котором слушает HTTP-сервер.
	Address string `default:":8000"`

	// LogLevel — уровень логирования: debug, info, warn, error.
	LogLevel string `split_words:"true" default:"info"`

	// StaticDir — каталог с фронтендом для /static/. Пусто — раздача выключена.
	StaticDir string `split_words:"true"`

	// SeedFile — YAML с начальными активностями. Пусто — используется встроенный набор.
	SeedFile string `split_words:"true"`

	// EnforceCapacity включает отказ в записи при достижении max_participants.
	// По умолчанию выключено: лимит только отображается.
	EnforceCapacity bool `split_words:"true" default:"false"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	HTTPReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPWriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	HTTPIdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	HTTPShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load подхватывает .env (если он есть) и разбирает переменные окружения.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse разбирает переменные окружения без чтения .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		_ = envconfig.Usage(Prefix, &cfg)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel переводит LogLevel в slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
