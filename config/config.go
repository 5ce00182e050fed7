package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CDN assets loaded by every page.
const (
	TailwindURL = "https://cdn.tailwindcss.com/3.4.5"
	HTMXURL     = "https://unpkg.com/htmx.org@1.9.12"
	LucideURL   = "https://unpkg.com/lucide@0.460.0/dist/umd/lucide.min.js"
	FontURL     = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap"
)

// Theme colours shared by the Tailwind config and the meta theme-color.
const (
	ColorPrimary     = "#8B5CF6"
	ColorPrimaryDark = "#7c3aed"
	ColorSecondary   = "#10B981"
	ColorSurface     = "#1F2937"
)

// EnvPrefix is prepended to every environment override, e.g. LVO_PORT.
const EnvPrefix = "LVO"

type Config struct {
	Env             string        `mapstructure:"env"`
	Port            string        `mapstructure:"port"`
	BaseURL         string        `mapstructure:"base_url"`
	StaticDir       string        `mapstructure:"static_dir"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimitMax    int           `mapstructure:"rate_limit_max"`
	RateLimitExp    time.Duration `mapstructure:"rate_limit_exp"`
	PageCacheTTL    time.Duration `mapstructure:"page_cache_ttl"`
	StaticMaxAge    int           `mapstructure:"static_max_age"`
	LogLevel        string        `mapstructure:"log_level"`
}

// IsProduction reports whether the site runs with production logging and caching.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("base_url", "https://lvoapp.com")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("read_timeout", 30*time.Second)
	v.SetDefault("write_timeout", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("rate_limit_max", 120)
	v.SetDefault("rate_limit_exp", time.Minute)
	v.SetDefault("page_cache_ttl", time.Hour)
	v.SetDefault("static_max_age", 86400)
	v.SetDefault("log_level", "info")
}

// Load reads defaults, then the optional config file, then LVO_* environment
// variables. Later sources win.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Port == "" {
		return nil, fmt.Errorf("port must not be empty")
	}
	return &c, nil
}

// Default returns the configuration with no file and no environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults always decode.
	_ = v.Unmarshal(&c)
	return &c
}
