package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig некорректные значения конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Booking   BookingConfig   `toml:"booking"`
	Auth      AuthConfig      `toml:"auth"`
	Assistant AssistantConfig `toml:"assistant"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор драйвера хранилища: memory или postgres
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки PostgreSQL (используются только при storage.driver = "postgres")
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	HorizonEnd             string `toml:"horizon_end"` // последний день, доступный для бронирования, YYYY-MM-DD
	Timezone               string `toml:"timezone"`
	CancellationNoticeDays int    `toml:"cancellation_notice_days"`
}

// Horizon разобранная дата горизонта; конфигурация должна быть провалидирована
func (b BookingConfig) Horizon() types.Date {
	d, _ := types.ParseDate(b.HorizonEnd)
	return d
}

// Location часовой пояс, в котором считается "сегодня"
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type AuthConfig struct {
	Secret        string `toml:"secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	Issuer        string `toml:"issuer"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// AssistantConfig настройки ассистента (Gemini generateContent)
type AssistantConfig struct {
	Enabled       bool    `toml:"enabled"`
	BaseURL       string  `toml:"base_url"`
	Model         string  `toml:"model"`
	APIKey        string  `toml:"api_key"`
	Timeout       int     `toml:"timeout"`
	RatePerMinute float64 `toml:"rate_per_minute"`
	Burst         int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из окружения (JWT_SECRET, GEMINI_API_KEY, DB_PASSWORD)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "venue-booking-service",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "venue_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			HorizonEnd:             "2026-12-31",
			Timezone:               "Asia/Kolkata",
			CancellationNoticeDays: 14,
		},
		Auth: AuthConfig{
			TokenTTLHours: 24,
			Issuer:        "venue-booking-service",
		},
		Assistant: AssistantConfig{
			BaseURL:       "https://generativelanguage.googleapis.com/v1beta",
			Model:         "gemini-2.5-flash",
			Timeout:       30,
			RatePerMinute: 5,
			Burst:         5,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.Secret = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if _, err := types.ParseDate(c.Booking.HorizonEnd); err != nil {
		return fmt.Errorf("%w: booking.horizon_end: %v", ErrInvalidConfig, err)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.CancellationNoticeDays < 0 {
		return fmt.Errorf("%w: booking.cancellation_notice_days must not be negative", ErrInvalidConfig)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("%w: auth.secret is empty (set JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}

	if c.Assistant.Enabled && c.Assistant.APIKey == "" {
		return fmt.Errorf("%w: assistant is enabled without api key (set GEMINI_API_KEY)", ErrInvalidConfig)
	}
	if c.Assistant.RatePerMinute <= 0 || c.Assistant.Burst <= 0 {
		return fmt.Errorf("%w: assistant rate limit must be positive", ErrInvalidConfig)
	}

	return nil
}
