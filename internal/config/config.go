package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"consolelog/internal/app/errors"
)

// Style names accepted under console.styles
const (
	StyleStandard     = "standard"
	StyleInfo         = "info"
	StyleWarning      = "warning"
	StyleError        = "error"
	StyleSuccess      = "success"
	StyleStandout     = "standout"
	StyleSubtle       = "subtle"
	StyleEvent        = "event"
	StyleEventWarning = "event_warning"
)

// StyleNames lists every configurable style in display order
var StyleNames = []string{
	StyleStandard,
	StyleInfo,
	StyleWarning,
	StyleError,
	StyleSuccess,
	StyleStandout,
	StyleSubtle,
	StyleEvent,
	StyleEventWarning,
}

// Category names accepted as keys under console.rules
const (
	CategoryDefault  = "default"
	CategoryInfo     = "info"
	CategoryWarning  = "warning"
	CategoryError    = "error"
	CategorySubtle   = "subtle"
	CategoryStandout = "standout"
	CategorySuccess  = "success"
	CategoryDebug    = "debug"
)

// CategoryNames lists every log category
var CategoryNames = []string{
	CategoryDefault,
	CategoryInfo,
	CategoryWarning,
	CategoryError,
	CategorySubtle,
	CategoryStandout,
	CategorySuccess,
	CategoryDebug,
}

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Console     Console     `yaml:"console" mapstructure:"console"`
	Watch       *Watch      `yaml:"watch,omitempty" mapstructure:"watch"`
	Monitor     Monitor     `yaml:"monitor" mapstructure:"monitor"`
	Diagnostics Diagnostics `yaml:"diagnostics" mapstructure:"diagnostics"`
}

// Console represents the console panel configuration
type Console struct {
	Verbose         bool             `yaml:"verbose" mapstructure:"verbose"`
	Divider         string           `yaml:"divider" mapstructure:"divider"`
	TimestampFormat string           `yaml:"timestamp_format" mapstructure:"timestamp_format"`
	Buffer          int              `yaml:"buffer" mapstructure:"buffer"`
	SavePath        string           `yaml:"save_path" mapstructure:"save_path"`
	HeaderSpacing   bool             `yaml:"header_spacing" mapstructure:"header_spacing"`
	Background      string           `yaml:"background" mapstructure:"background"`
	Styles          map[string]Style `yaml:"styles" mapstructure:"styles"`
	Rules           map[string]Rule  `yaml:"rules,omitempty" mapstructure:"rules"`
}

// Rule overrides how one category is dispatched
type Rule struct {
	Style     string `yaml:"style" mapstructure:"style"`
	Verbose   bool   `yaml:"verbose" mapstructure:"verbose"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
}

// Style is a foreground/background color pair
type Style struct {
	Foreground string `yaml:"fg" mapstructure:"fg"`
	Background string `yaml:"bg" mapstructure:"bg"`
}

// Watch represents the directory watch producer configuration
type Watch struct {
	Dir      string        `yaml:"dir" mapstructure:"dir"`
	Include  []string      `yaml:"include" mapstructure:"include"`
	Ignore   []string      `yaml:"ignore" mapstructure:"ignore"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Monitor represents the process monitor producer configuration
type Monitor struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// Diagnostics represents where isolated listener failures are reported
type Diagnostics struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// DefaultStyles returns the default color pair for every style
func DefaultStyles() map[string]Style {
	return map[string]Style{
		StyleStandard:     {Foreground: "#E1D570", Background: Background},
		StyleInfo:         {Foreground: "#63D3EA", Background: Background},
		StyleWarning:      {Foreground: Background, Background: "#FFFC00"},
		StyleError:        {Foreground: "#FFFFFF", Background: "#FF6347"},
		StyleSuccess:      {Foreground: "#A3E92D", Background: Background},
		StyleStandout:     {Foreground: "#FA01C2", Background: Background},
		StyleSubtle:       {Foreground: "#9C9C9C", Background: Background},
		StyleEvent:        {Foreground: "#4EC9B0", Background: Background},
		StyleEventWarning: {Foreground: "#FFFFFF", Background: "#4EC9B0"},
	}
}

// DefaultDivider returns the header divider used when none is configured
func DefaultDivider() string {
	return strings.Repeat(DividerChar, DividerWidth)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Console = Console{
		Divider:         DefaultDivider(),
		TimestampFormat: TimestampFormat,
		Buffer:          ConsoleBuffer,
		SavePath:        SavePath,
		HeaderSpacing:   true,
		Background:      Background,
		Styles:          DefaultStyles(),
	}

	cfg.Monitor.Interval = MonitorInterval

	return cfg
}

// Load loads the configuration from consolelog.yaml in the working directory
func Load() (*Config, error) {
	return LoadFile(ConfigFile)
}

// LoadFile loads the configuration from path, falling back to defaults when the file is missing
func LoadFile(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers scalar keys so environment overrides apply without a config file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("console.verbose", cfg.Console.Verbose)
	v.SetDefault("console.divider", cfg.Console.Divider)
	v.SetDefault("console.timestamp_format", cfg.Console.TimestampFormat)
	v.SetDefault("console.buffer", cfg.Console.Buffer)
	v.SetDefault("console.save_path", cfg.Console.SavePath)
	v.SetDefault("console.header_spacing", cfg.Console.HeaderSpacing)
	v.SetDefault("console.background", cfg.Console.Background)
	v.SetDefault("monitor.enabled", cfg.Monitor.Enabled)
	v.SetDefault("monitor.interval", cfg.Monitor.Interval)
	v.SetDefault("diagnostics.dsn", cfg.Diagnostics.DSN)
}

// ApplyDefaults fills values left blank by the config file
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Console.Divider) == "" {
		c.Console.Divider = DefaultDivider()
	}

	if c.Console.TimestampFormat == "" {
		c.Console.TimestampFormat = TimestampFormat
	}

	if c.Console.Background == "" {
		c.Console.Background = Background
	}

	if c.Console.Styles == nil {
		c.Console.Styles = make(map[string]Style)
	}

	for name, def := range DefaultStyles() {
		style, ok := c.Console.Styles[name]
		if !ok {
			c.Console.Styles[name] = def
			continue
		}

		if style.Foreground == "" {
			style.Foreground = def.Foreground
		}

		if style.Background == "" {
			style.Background = def.Background
		}

		c.Console.Styles[name] = style
	}

	if c.Watch != nil {
		if c.Watch.Dir == "" {
			c.Watch.Dir = "."
		}

		if c.Watch.Debounce == 0 {
			c.Watch.Debounce = WatchDebounce
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateConsole(); err != nil {
		return err
	}

	if err := c.validateWatch(); err != nil {
		return err
	}

	if c.Monitor.Interval <= 0 {
		return errors.ErrInvalidMonitorTicker
	}

	return nil
}

// validateConsole validates buffer and style settings
func (c *Config) validateConsole() error {
	if c.Console.Buffer <= 0 {
		return errors.ErrInvalidLogsBuffer
	}

	for name, style := range c.Console.Styles {
		if !isStyleName(name) {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidStyleName, name)
		}

		if strings.TrimSpace(style.Foreground) == "" || strings.TrimSpace(style.Background) == "" {
			return fmt.Errorf("style %s: %w", name, errors.ErrInvalidColor)
		}
	}

	for name, rule := range c.Console.Rules {
		if !contains(CategoryNames, strings.ToLower(name)) {
			return fmt.Errorf("%w: '%s'", errors.ErrUnknownCategory, name)
		}

		if !isStyleName(rule.Style) {
			return fmt.Errorf("rule %s: %w: '%s'", name, errors.ErrInvalidStyleName, rule.Style)
		}
	}

	return nil
}

// validateWatch validates the watch configuration
func (c *Config) validateWatch() error {
	if c.Watch == nil {
		return nil
	}

	if len(c.Watch.Include) == 0 {
		return errors.ErrWatchIncludeRequired
	}

	if c.Watch.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	return nil
}

func isStyleName(name string) bool {
	return contains(StyleNames, name)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
