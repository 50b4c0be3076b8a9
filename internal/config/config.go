package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"chartcursor/internal/display"
	"chartcursor/internal/locale"
	"chartcursor/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Logging logging.Config `mapstructure:"logging"`
	Display DisplayConfig  `mapstructure:"display"`
	Render  RenderConfig   `mapstructure:"render"`
	Sweep   SweepConfig    `mapstructure:"sweep"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// DisplayConfig controls how values, timestamps and tick labels are formatted.
type DisplayConfig struct {
	Locale          string              `mapstructure:"locale"`
	Timezone        string              `mapstructure:"timezone"`
	DefaultDecimals int                 `mapstructure:"default_decimals"`
	Field           display.FieldConfig `mapstructure:"field"`
}

// RenderConfig sizes the PNG preview.
type RenderConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Ticks  int    `mapstructure:"ticks"`
	Title  string `mapstructure:"title"`
}

// SweepConfig governs cursor sweeps.
type SweepConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	AlignToBucket bool          `mapstructure:"align_to_bucket"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHARTCURSOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "chartcursor")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("display.locale", "default")
	v.SetDefault("display.timezone", "utc")
	v.SetDefault("display.default_decimals", -1)
	v.SetDefault("display.field.type", string(display.TypeNumber))

	v.SetDefault("render.width", 1280)
	v.SetDefault("render.height", 720)
	v.SetDefault("render.ticks", 8)
	v.SetDefault("render.title", "")

	v.SetDefault("sweep.interval", "5m")
	v.SetDefault("sweep.align_to_bucket", true)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render.width and render.height must be greater than zero")
	}
	if c.Render.Ticks < 2 {
		return fmt.Errorf("render.ticks must be at least 2")
	}
	if c.Sweep.Interval <= 0 {
		return fmt.Errorf("sweep.interval must be greater than zero")
	}
	if _, err := c.ResolveLocation(); err != nil {
		return err
	}
	if _, err := locale.New(c.Display.Locale); err != nil {
		return fmt.Errorf("display.locale: %w", err)
	}
	return nil
}

// ResolveLocation maps display.timezone to a location. "browser" and an
// empty value mean the local zone of the host.
func (c *Config) ResolveLocation() (*time.Location, error) {
	tz := strings.TrimSpace(c.Display.Timezone)
	switch strings.ToLower(tz) {
	case "", "browser", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("display.timezone %q: %w", tz, err)
	}
	return loc, nil
}

// FieldConfig returns the value field defaults, applying default_decimals
// unless the field sets its own precision.
func (c *Config) FieldConfig() display.FieldConfig {
	field := c.Display.Field
	if field.Decimals == nil && c.Display.DefaultDecimals >= 0 {
		d := int32(c.Display.DefaultDecimals)
		field.Decimals = &d
	}
	return field
}
