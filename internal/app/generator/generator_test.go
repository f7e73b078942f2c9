package generator

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"consolelog/internal/app/console"
	"consolelog/internal/app/errors"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Info()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()

	return mockLog
}

func Test_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, config.ConfigFile, opts.Path)
	assert.Empty(t, opts.WatchDir)
}

func Test_NewGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := NewGenerator(newTestLogger(ctrl))
	assert.NotNil(t, gen)
}

func Test_Generator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "consolelog.yaml")
	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(Options{Path: path}, false, false)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# consolelog configuration")
	assert.Contains(t, string(content), "console:")
	assert.Contains(t, string(content), "timestamp_format:")
	assert.Contains(t, string(content), "event_warning:")
	assert.Contains(t, string(content), "rules:")
	assert.NotContains(t, string(content), "watch:")
}

func Test_Generator_Generate_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "consolelog.yaml")
	gen := NewGenerator(newTestLogger(ctrl))

	require.NoError(t, gen.Generate(Options{Path: path, WatchDir: "src"}, false, false))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	def := config.DefaultConfig()
	assert.Equal(t, def.Console.Divider, cfg.Console.Divider)
	assert.Equal(t, def.Console.Buffer, cfg.Console.Buffer)
	assert.Equal(t, def.Console.Styles, cfg.Console.Styles)
	assert.Equal(t, console.RulesConfig(console.DefaultRules()), cfg.Console.Rules)
	assert.Equal(t, def.Monitor.Interval, cfg.Monitor.Interval)

	require.NotNil(t, cfg.Watch)
	assert.Equal(t, "src", cfg.Watch.Dir)
	assert.Equal(t, []string{"**/*"}, cfg.Watch.Include)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
}

func Test_Generator_Generate_FileExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "consolelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(Options{Path: path}, false, false)
	assert.ErrorIs(t, err, errors.ErrFileExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}

func Test_Generator_Generate_ForceOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "consolelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	gen := NewGenerator(newTestLogger(ctrl))

	require.NoError(t, gen.Generate(Options{Path: path}, true, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "console:")
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	tests := []struct {
		name     string
		existing bool
	}{
		{name: "no file", existing: false},
		{name: "ignores existing file", existing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			path := filepath.Join(t.TempDir(), "consolelog.yaml")
			if tt.existing {
				require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))
			}

			var out bytes.Buffer

			gen := &generator{out: &out, log: newTestLogger(ctrl)}

			require.NoError(t, gen.Generate(Options{Path: path}, false, true))
			assert.Contains(t, out.String(), "console:")

			content, err := os.ReadFile(path)
			if tt.existing {
				require.NoError(t, err)
				assert.Equal(t, "existing", string(content))
			} else {
				assert.True(t, os.IsNotExist(err))
			}
		})
	}
}
