package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// Переменные окружения с учетными данными сервисного аккаунта Google
const (
	EnvGoogleClientEmail = "GOOGLE_CLIENT_EMAIL"
	EnvGooglePrivateKey  = "GOOGLE_PRIVATE_KEY"
	EnvGoogleCalendarID  = "GOOGLE_CALENDAR_ID"
	EnvGoogleTimezone    = "GOOGLE_TIMEZONE"
	EnvLogLevel          = "LOG_LEVEL"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Tracing   TracingConfig   `toml:"tracing"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Schedule  ScheduleConfig  `toml:"schedule"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TracingConfig параметры OpenTelemetry
type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	ServiceName  string  `toml:"service_name"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

// RateLimitConfig ограничение частоты создания холдов на один IP
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// CalendarConfig параметры Google Calendar
type CalendarConfig struct {
	ClientEmail string `toml:"client_email"`
	PrivateKey  string `toml:"private_key"`
	CalendarID  string `toml:"calendar_id"`
	Timezone    string `toml:"timezone"`
	Timeout     int    `toml:"timeout"` // секунды
	MaxResults  int64  `toml:"max_results"`
}

// ScheduleConfig каталог услуг и сессий
type ScheduleConfig struct {
	BufferMinutes int             `toml:"buffer_minutes"`
	StepMinutes   int             `toml:"step_minutes"`
	HoldMinutes   int             `toml:"hold_minutes"`
	Services      []ServiceConfig `toml:"services"`
	Sessions      []SessionConfig `toml:"sessions"`
}

// ServiceConfig услуга без учета буфера
type ServiceConfig struct {
	Name        string `toml:"name"`
	BaseMinutes int    `toml:"base_minutes"`
}

// SessionConfig рабочее окно дня
type SessionConfig struct {
	Label string           `toml:"label"`
	Start types.TimeString `toml:"start"`
	End   types.TimeString `toml:"end"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	services := make([]ServiceConfig, 0)
	for _, s := range domain.DefaultServices() {
		services = append(services, ServiceConfig{Name: s.Name, BaseMinutes: s.BaseMinutes})
	}
	sessions := make([]SessionConfig, 0)
	for _, s := range domain.DefaultSessions() {
		sessions = append(sessions, SessionConfig{Label: s.Label, Start: s.Start, End: s.End})
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "kstudio-agenda",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			ServiceName:  "kstudio-agenda",
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 30,
			Burst:             5,
		},
		Calendar: CalendarConfig{
			Timezone:   domain.DefaultTimezone,
			Timeout:    10,
			MaxResults: domain.DefaultMaxEvents,
		},
		Schedule: ScheduleConfig{
			BufferMinutes: domain.DefaultBufferMinutes,
			StepMinutes:   domain.DefaultStepMinutes,
			HoldMinutes:   domain.DefaultHoldSeconds / 60,
			Services:      services,
			Sessions:      sessions,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Отсутствующий файл не является ошибкой. Учетные данные календаря
// переопределяются переменными окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из окружения
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvGoogleClientEmail); ok {
		c.Calendar.ClientEmail = v
	}
	if v, ok := os.LookupEnv(EnvGooglePrivateKey); ok {
		c.Calendar.PrivateKey = v
	}
	if v, ok := os.LookupEnv(EnvGoogleCalendarID); ok {
		c.Calendar.CalendarID = v
	}
	if v := os.Getenv(EnvGoogleTimezone); v != "" {
		c.Calendar.Timezone = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logs.Level = v
	}

	// ключ часто хранится с экранированными переводами строк
	c.Calendar.PrivateKey = strings.ReplaceAll(c.Calendar.PrivateKey, `\n`, "\n")
}

// Validate проверяет параметры, без которых сервис не может стартовать.
// Отсутствие учетных данных календаря здесь не проверяется: это ошибка первого вызова.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Schedule.StepMinutes <= 0 {
		return fmt.Errorf("%w: schedule.step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Schedule.HoldMinutes < domain.MinHoldMinutes || c.Schedule.HoldMinutes > domain.MaxHoldMinutes {
		return fmt.Errorf("%w: schedule.hold_minutes must be in %d..%d",
			ErrInvalidConfig, domain.MinHoldMinutes, domain.MaxHoldMinutes)
	}
	if c.Calendar.MaxResults <= 0 {
		return fmt.Errorf("%w: calendar.max_results must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_minute and burst", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Catalog строит неизменяемый каталог из секции schedule
func (c *Config) Catalog() (*domain.Catalog, error) {
	services := make([]domain.Service, 0, len(c.Schedule.Services))
	for _, s := range c.Schedule.Services {
		services = append(services, domain.Service{Name: s.Name, BaseMinutes: s.BaseMinutes})
	}
	sessions := make([]domain.Session, 0, len(c.Schedule.Sessions))
	for _, s := range c.Schedule.Sessions {
		sessions = append(sessions, domain.Session{Label: s.Label, Start: s.Start, End: s.End})
	}
	return domain.NewCatalog(c.Schedule.BufferMinutes, services, sessions)
}

// Location возвращает таймзону отображения
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: calendar.timezone %q: %v", ErrInvalidConfig, c.Calendar.Timezone, err)
	}
	return loc, nil
}

// HoldSeconds возвращает длительность холда по умолчанию
func (c *Config) HoldSeconds() int {
	return c.Schedule.HoldMinutes * 60
}
