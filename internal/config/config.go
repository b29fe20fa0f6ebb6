package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	Guest     GuestConfig     `mapstructure:"guest"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Locale    string          `mapstructure:"locale"`
}

// GuestConfig contains settings for the local guest data store.
type GuestConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	RetentionDays int    `mapstructure:"retention_days"`
	MaxResumes    int    `mapstructure:"max_resumes"`
}

// TemplatesConfig contains settings for the bundled template library.
type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// Retention converts the configured retention window into a duration.
func (g GuestConfig) Retention() time.Duration {
	return time.Duration(g.RetentionDays) * 24 * time.Hour
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("guest.data_dir", "./data/guest")
	v.SetDefault("guest.retention_days", 7)
	v.SetDefault("guest.max_resumes", 0)
	v.SetDefault("templates.dir", "./templates/json")
	v.SetDefault("locale", "zh-CN")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"guest.data_dir":       "GUEST_DATA_DIR",
		"guest.retention_days": "SYNC_RETENTION_DAYS",
		"guest.max_resumes":    "GUEST_MAX_RESUMES",
		"templates.dir":        "TEMPLATES_DIR",
		"locale":               "DEFAULT_LOCALE",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Guest.DataDir == "" {
		return errors.New("guest data dir is required")
	}
	if cfg.Guest.RetentionDays <= 0 {
		return errors.New("sync retention days must be positive")
	}
	if cfg.Guest.MaxResumes < 0 {
		return errors.New("guest max resumes must not be negative")
	}
	if cfg.Templates.Dir == "" {
		return errors.New("templates dir is required")
	}
	if cfg.Locale == "" {
		return errors.New("locale is required")
	}
	return nil
}
