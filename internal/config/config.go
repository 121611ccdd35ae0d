package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Facility FacilityConfig `toml:"facility"`
	Rates    RatesConfig    `toml:"rates"`
	Slots    []SlotConfig   `toml:"slots"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// FacilityConfig параметры парковки
type FacilityConfig struct {
	EntryPoints int `toml:"entry_points"`
}

// RatesConfig тарифная сетка; нулевые значения заменяются эталонными
type RatesConfig struct {
	FlatAmount   float64 `toml:"flat_amount"`
	FlatHours    int     `toml:"flat_hours"`
	PerDayAmount float64 `toml:"per_day_amount"`
	HoursPerDay  int     `toml:"hours_per_day"`
	HourlySmall  float64 `toml:"hourly_small"`
	HourlyMedium float64 `toml:"hourly_medium"`
	HourlyLarge  float64 `toml:"hourly_large"`
}

// SlotConfig описание одного слота стартовой разметки
type SlotConfig struct {
	ID        string    `toml:"id"`
	Size      string    `toml:"size"`
	Distances []float64 `toml:"distances"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "parking-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Facility: FacilityConfig{
			EntryPoints: domain.MinEntryPoints,
		},
		Rates: RatesConfig{
			FlatAmount:   domain.DefaultFlatAmount,
			FlatHours:    domain.DefaultFlatHours,
			PerDayAmount: domain.DefaultPerDayAmount,
			HoursPerDay:  domain.DefaultHoursPerDay,
			HourlySmall:  domain.DefaultHourlySmall,
			HourlyMedium: domain.DefaultHourlyMedium,
			HourlyLarge:  domain.DefaultHourlyLarge,
		},
	}
}

func (c *Config) validate() error {
	if c.Facility.EntryPoints < domain.MinEntryPoints {
		return fmt.Errorf("facility.entry_points must be at least %d, got %d",
			domain.MinEntryPoints, c.Facility.EntryPoints)
	}
	for _, slot := range c.Slots {
		if slot.ID == "" {
			return fmt.Errorf("slots: slot id must not be empty")
		}
		if len(slot.Distances) != c.Facility.EntryPoints {
			return fmt.Errorf("slots: slot %s has %d distances, facility has %d entry points",
				slot.ID, len(slot.Distances), c.Facility.EntryPoints)
		}
	}
	return nil
}

// DomainSlots конвертирует стартовую разметку в доменные слоты
func (c *Config) DomainSlots() ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0, len(c.Slots))
	for _, sc := range c.Slots {
		size, err := domain.ParseSlotSize(sc.Size)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", sc.ID, err)
		}
		slot, err := domain.NewSlot(sc.ID, size, sc.Distances)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", sc.ID, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
