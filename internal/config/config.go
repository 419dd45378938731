package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Переменные окружения для секретов
const (
	envDBPassword = "DB_PASSWORD"
	envRedisAddr  = "REDIS_ADDR"
)

type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Tracing     TracingConfig     `toml:"tracing"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
	UserService UserServiceConfig `toml:"user_service"`
	Shop        ShopConfig        `toml:"shop"`
	Catalog     CatalogConfig     `toml:"catalog"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

type TracingConfig struct {
	Enabled     bool    `toml:"enabled"`
	Endpoint    string  `toml:"endpoint"`
	SampleRatio float64 `toml:"sample_ratio"`
}

type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	RedisAddr     string `toml:"redis_addr"`
	Limit         int    `toml:"limit"`
	WindowSeconds int    `toml:"window_seconds"`
}

// Window возвращает длину окна rate limit
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// UserServiceConfig клиент UserService для подстановки транспорта клиента
type UserServiceConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type ShopConfig struct {
	Open                   string  `toml:"open"`
	Close                  string  `toml:"close"`
	Location               string  `toml:"location"`
	SlotGranularityMinutes int     `toml:"slot_granularity_minutes"`
	DefaultDurationMinutes int     `toml:"default_duration_minutes"`
	MinNoticeMinutes       int     `toml:"min_notice_minutes"`
	AdvanceBookingDays     int     `toml:"advance_booking_days"`
	StaffIDs               []int64 `toml:"staff_ids"`
}

// CatalogConfig декларативные данные каталога.
// Пустые списки означают встроенный каталог.
type CatalogConfig struct {
	Services     []ServiceConfig `toml:"services"`
	Incompatible []RuleConfig    `toml:"incompatible"`
}

// RuleConfig запрещенная пара услуг (ID или названия)
type RuleConfig struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

type ServiceConfig struct {
	ID              string `toml:"id"`
	Name            string `toml:"name"`
	DurationMinutes int    `toml:"duration_minutes"`
	Category        string `toml:"category"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "detailing_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "detailing_booking",
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			SampleRatio: 1.0,
		},
		RateLimit: RateLimitConfig{
			RedisAddr:     "localhost:6379",
			Limit:         20,
			WindowSeconds: 60,
		},
		UserService: UserServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 3,
		},
		Shop: ShopConfig{
			Open:                   domain.DefaultShopOpen,
			Close:                  domain.DefaultShopClose,
			Location:               "Local",
			SlotGranularityMinutes: domain.DefaultSlotGranularityMinutes,
			DefaultDurationMinutes: domain.DefaultDurationMinutes,
			MinNoticeMinutes:       domain.DefaultMinNoticeMinutes,
			AdvanceBookingDays:     domain.DefaultAdvanceBookingDays,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envRedisAddr); v != "" {
		c.RateLimit.RedisAddr = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.Tracing.Enabled && (c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1) {
		problems = append(problems, "tracing.sample_ratio must be in [0, 1]")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.WindowSeconds <= 0 || c.RateLimit.RedisAddr == "") {
		problems = append(problems, "rate_limit requires redis_addr, positive limit and window_seconds")
	}
	if c.UserService.Enabled && (c.UserService.URL == "" || c.UserService.Timeout <= 0) {
		problems = append(problems, "user_service requires url and positive timeout")
	}

	if _, err := c.ShopSettings(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.RuleSet(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ShopSettings строит настройки расписания мастерской
func (c *Config) ShopSettings() (domain.ShopSettings, error) {
	open, err := types.NewTimeStringFromString(c.Shop.Open)
	if err != nil {
		return domain.ShopSettings{}, fmt.Errorf("shop.open: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(c.Shop.Close)
	if err != nil {
		return domain.ShopSettings{}, fmt.Errorf("shop.close: %w", err)
	}
	if !open.IsBefore(closeAt) {
		return domain.ShopSettings{}, fmt.Errorf("shop.close must be after shop.open")
	}

	location, err := time.LoadLocation(c.Shop.Location)
	if err != nil {
		return domain.ShopSettings{}, fmt.Errorf("shop.location: %w", err)
	}

	settings := domain.ShopSettings{
		Hours:                  domain.ShopHours{Open: open, Close: closeAt},
		Location:               location,
		SlotGranularityMinutes: c.Shop.SlotGranularityMinutes,
		DefaultDurationMinutes: c.Shop.DefaultDurationMinutes,
		MinNoticeMinutes:       c.Shop.MinNoticeMinutes,
		AdvanceBookingDays:     c.Shop.AdvanceBookingDays,
	}

	switch {
	case settings.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		settings.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes:
		return domain.ShopSettings{}, fmt.Errorf("shop.slot_granularity_minutes must be in %d..%d",
			domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	case settings.DefaultDurationMinutes <= 0:
		return domain.ShopSettings{}, fmt.Errorf("shop.default_duration_minutes must be positive")
	case settings.DefaultDurationMinutes > settings.Hours.LengthMinutes():
		return domain.ShopSettings{}, fmt.Errorf("shop.default_duration_minutes must fit into shop hours (%d minutes)",
			settings.Hours.LengthMinutes())
	case settings.MinNoticeMinutes < 0 || settings.MinNoticeMinutes > domain.MaxMinNoticeMinutes:
		return domain.ShopSettings{}, fmt.Errorf("shop.min_notice_minutes must be in 0..%d", domain.MaxMinNoticeMinutes)
	case settings.AdvanceBookingDays < 0 || settings.AdvanceBookingDays > domain.MaxAdvanceBookingDays:
		return domain.ShopSettings{}, fmt.Errorf("shop.advance_booking_days must be in 0..%d", domain.MaxAdvanceBookingDays)
	}

	return settings, nil
}

// RuleSet строит каталог услуг и правила совместимости
func (c *Config) RuleSet() (*catalog.RuleSet, error) {
	if len(c.Catalog.Services) == 0 {
		if len(c.Catalog.Incompatible) > 0 {
			return nil, fmt.Errorf("catalog.incompatible requires catalog.services")
		}
		return catalog.NewDefault()
	}

	services := make([]domain.Service, 0, len(c.Catalog.Services))
	for _, s := range c.Catalog.Services {
		services = append(services, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Category:        domain.ServiceCategory(s.Category),
		})
	}

	cat, err := catalog.New(services)
	if err != nil {
		return nil, err
	}

	rules := make([]catalog.Rule, 0, len(c.Catalog.Incompatible))
	for _, pair := range c.Catalog.Incompatible {
		rules = append(rules, catalog.Rule{A: pair.A, B: pair.B})
	}

	return catalog.NewRuleSet(cat, rules)
}

// Staff возвращает множество ID сотрудников мастерской
func (c *Config) Staff() domain.StaffSet {
	return domain.NewStaffSet(c.Shop.StaffIDs)
}
