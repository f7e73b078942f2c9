package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolelog/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LogLevel, cfg.Logging.Level)
	assert.Equal(t, LogFormat, cfg.Logging.Format)
	assert.Equal(t, 66, len(cfg.Console.Divider))
	assert.Equal(t, TimestampFormat, cfg.Console.TimestampFormat)
	assert.True(t, cfg.Console.HeaderSpacing)
	assert.Len(t, cfg.Console.Styles, len(StyleNames))
	assert.Nil(t, cfg.Watch)
	assert.NoError(t, cfg.Validate())
}

func Test_LoadFile(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		error   error
		inspect func(t *testing.T, cfg *Config)
	}{
		{
			name: "missing file uses defaults",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			inspect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultDivider(), cfg.Console.Divider)
				assert.False(t, cfg.Console.Verbose)
			},
		},
		{
			name: "valid config file",
			path: func(t *testing.T) string {
				return writeConfig(t, `logging:
  level: debug
  format: json
console:
  verbose: true
  divider: "=========="
  save_path: out.log
  styles:
    info:
      fg: "#00FF00"
watch:
  include: ["**/*.go"]
monitor:
  enabled: true
  interval: 2s
`)
			},
			inspect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.True(t, cfg.Console.Verbose)
				assert.Equal(t, "==========", cfg.Console.Divider)
				assert.Equal(t, "out.log", cfg.Console.SavePath)
				assert.Equal(t, "#00FF00", cfg.Console.Styles[StyleInfo].Foreground)
				assert.Equal(t, Background, cfg.Console.Styles[StyleInfo].Background)
				assert.Equal(t, DefaultStyles()[StyleError], cfg.Console.Styles[StyleError])
				require.NotNil(t, cfg.Watch)
				assert.Equal(t, ".", cfg.Watch.Dir)
				assert.Equal(t, WatchDebounce, cfg.Watch.Debounce)
				assert.True(t, cfg.Monitor.Enabled)
				assert.Equal(t, 2*time.Second, cfg.Monitor.Interval)
			},
		},
		{
			name: "blank divider keeps default",
			path: func(t *testing.T) string {
				return writeConfig(t, "console:\n  divider: \"   \"\n")
			},
			inspect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultDivider(), cfg.Console.Divider)
			},
		},
		{
			name: "rules section",
			path: func(t *testing.T) string {
				return writeConfig(t, `console:
  rules:
    debug:
      style: event
      verbose: true
    default:
      style: standard
      timestamp: true
`)
			},
			inspect: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Console.Rules, 2)
				assert.Equal(t, Rule{Style: StyleEvent, Verbose: true}, cfg.Console.Rules[CategoryDebug])
				assert.Equal(t, Rule{Style: StyleStandard, Timestamp: true}, cfg.Console.Rules[CategoryDefault])
			},
		},
		{
			name: "rule for unknown category is invalid",
			path: func(t *testing.T) string {
				return writeConfig(t, "console:\n  rules:\n    trace:\n      style: subtle\n")
			},
			error: errors.ErrInvalidConfig,
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string {
				return writeConfig(t, "console: [\n")
			},
			error: errors.ErrFailedToParseConfig,
		},
		{
			name: "invalid duration",
			path: func(t *testing.T) string {
				return writeConfig(t, "monitor:\n  interval: soon\n")
			},
			error: errors.ErrFailedToParseConfig,
		},
		{
			name: "unknown style is invalid",
			path: func(t *testing.T) string {
				return writeConfig(t, "console:\n  styles:\n    loud:\n      fg: red\n      bg: black\n")
			},
			error: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(tt.path(t))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.inspect(t, cfg)
		})
	}
}

func Test_LoadFile_EnvOverride(t *testing.T) {
	t.Setenv("CONSOLELOG_CONSOLE_VERBOSE", "true")
	t.Setenv("CONSOLELOG_LOGGING_LEVEL", "warn")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.True(t, cfg.Console.Verbose)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		error  error
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{name: "zero buffer", mutate: func(cfg *Config) { cfg.Console.Buffer = 0 }, error: errors.ErrInvalidLogsBuffer},
		{name: "unknown style", mutate: func(cfg *Config) { cfg.Console.Styles["loud"] = Style{Foreground: "1", Background: "2"} }, error: errors.ErrInvalidStyleName},
		{name: "empty color", mutate: func(cfg *Config) { cfg.Console.Styles[StyleInfo] = Style{Foreground: " ", Background: "2"} }, error: errors.ErrInvalidColor},
		{name: "rule for unknown category", mutate: func(cfg *Config) { cfg.Console.Rules = map[string]Rule{"trace": {Style: StyleSubtle}} }, error: errors.ErrUnknownCategory},
		{name: "rule without style", mutate: func(cfg *Config) { cfg.Console.Rules = map[string]Rule{CategoryInfo: {Timestamp: true}} }, error: errors.ErrInvalidStyleName},
		{name: "rule category is case-insensitive", mutate: func(cfg *Config) { cfg.Console.Rules = map[string]Rule{"Warning": {Style: StyleWarning}} }},
		{name: "watch without include", mutate: func(cfg *Config) { cfg.Watch = &Watch{Dir: "."} }, error: errors.ErrWatchIncludeRequired},
		{name: "negative debounce", mutate: func(cfg *Config) { cfg.Watch = &Watch{Include: []string{"*"}, Debounce: -1} }, error: errors.ErrInvalidDebounce},
		{name: "zero monitor interval", mutate: func(cfg *Config) { cfg.Monitor.Interval = 0 }, error: errors.ErrInvalidMonitorTicker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.error == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.error)
			}
		})
	}
}
