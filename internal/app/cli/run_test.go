package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolelog/internal/app/console"
	"consolelog/internal/app/display"
	"consolelog/internal/app/monitor"
	"consolelog/internal/app/phase"
	"consolelog/internal/app/status"
	"consolelog/internal/app/ui/wire"
	"consolelog/internal/app/watcher"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

type testRun struct {
	runner    *runner
	buffer    *display.Buffer
	verbosity *console.Verbosity
	phase     phase.Phase
	uiCalls   int
}

func newTestRun(t *testing.T, cfg *config.Config, ui func(ctx context.Context) error) *testRun {
	t.Helper()

	log := logger.NewNopLogger()
	buffer := display.NewBuffer(100, display.NewProgram())
	broadcaster := status.NewBroadcaster(nil)

	t.Cleanup(func() {
		_ = broadcaster.Close(context.Background())
	})

	styles, err := console.NewStyleTableFromConfig(&cfg.Console)
	require.NoError(t, err)

	tr := &testRun{
		buffer:    buffer,
		verbosity: console.NewVerbosity(false),
		phase:     phase.NewPhase(broadcaster, log),
	}

	tr.runner = NewRunner(RunnerParams{
		Config:      cfg,
		Console:     console.NewConsole(buffer, styles, cfg, log),
		Verbosity:   tr.verbosity,
		Broadcaster: broadcaster,
		Watcher:     watcher.NewWatcher(broadcaster, log),
		Monitor:     monitor.NewMonitor(cfg, broadcaster, log),
		Phase:       tr.phase,
		UI: wire.UI(func(ctx context.Context) error {
			tr.uiCalls++
			return ui(ctx)
		}),
		Logger: log,
	}).(*runner)

	return tr
}

func (tr *testRun) texts() []string {
	lines := tr.buffer.Lines()
	out := make([]string, len(lines))

	for i, l := range lines {
		out[i] = l.Text
	}

	return out
}

func Test_Runner_Run_UI(t *testing.T) {
	tr := newTestRun(t, config.DefaultConfig(), func(ctx context.Context) error {
		return nil
	})

	err := tr.runner.Run(context.Background(), &Options{})

	require.NoError(t, err)
	assert.Equal(t, 1, tr.uiCalls)
	assert.Contains(t, tr.texts(), "consolelog v"+config.Version)
	assert.Equal(t, phase.Stopped, tr.phase.Current())
}

func Test_Runner_Run_UIError(t *testing.T) {
	uiErr := errors.New("terminal gone")

	tr := newTestRun(t, config.DefaultConfig(), func(ctx context.Context) error {
		return uiErr
	})

	err := tr.runner.Run(context.Background(), &Options{})

	assert.ErrorIs(t, err, uiErr)
	assert.Equal(t, phase.Stopped, tr.phase.Current())
}

func Test_Runner_Run_NoUI(t *testing.T) {
	tr := newTestRun(t, config.DefaultConfig(), func(ctx context.Context) error {
		t.Fatal("UI must not start in headless mode")
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := tr.runner.Run(ctx, &Options{NoUI: true, Verbose: true})

	require.NoError(t, err)
	assert.Equal(t, 0, tr.uiCalls)
	assert.True(t, tr.verbosity.Enabled())
	assert.Equal(t, phase.Stopped, tr.phase.Current())
}

func Test_Runner_Run_WatchFailure(t *testing.T) {
	tr := newTestRun(t, config.DefaultConfig(), func(ctx context.Context) error {
		return nil
	})

	missing := filepath.Join(t.TempDir(), "missing")

	err := tr.runner.Run(context.Background(), &Options{WatchDir: missing})

	assert.Error(t, err)
	assert.Equal(t, 0, tr.uiCalls)
	assert.Equal(t, phase.Stopping, tr.phase.Current())

	found := false
	for _, text := range tr.texts() {
		if strings.Contains(text, "Failed to watch") {
			found = true
		}
	}

	assert.True(t, found)
}

func Test_Runner_Run_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")

	tr := newTestRun(t, config.DefaultConfig(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, tr.runner.Run(context.Background(), &Options{SavePath: path}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "consolelog v"+config.Version)
	assert.NotContains(t, string(content), "\x1b[")
}

func Test_Runner_Run_SaveIncludesShutdownStatuses(t *testing.T) {
	for i := 0; i < 20; i++ {
		path := filepath.Join(t.TempDir(), "session.txt")

		tr := newTestRun(t, config.DefaultConfig(), func(ctx context.Context) error {
			return nil
		})

		require.NoError(t, tr.runner.Run(context.Background(), &Options{Verbose: true, SavePath: path}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Shutting down")
		assert.Contains(t, string(content), "Stopped")
	}
}

func Test_Runner_WatchConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfgWatch *config.Watch
		watchDir string
		expected *config.Watch
	}{
		{
			name:     "nothing configured",
			expected: nil,
		},
		{
			name:     "config only",
			cfgWatch: &config.Watch{Dir: "src", Include: []string{"*.go"}},
			expected: &config.Watch{Dir: "src", Include: []string{"*.go"}},
		},
		{
			name:     "flag only",
			watchDir: "docs",
			expected: &config.Watch{Dir: "docs", Include: []string{"**/*"}, Ignore: []string{".git/**"}, Debounce: config.WatchDebounce},
		},
		{
			name:     "flag overrides configured dir",
			cfgWatch: &config.Watch{Dir: "src", Include: []string{"*.go"}, Debounce: time.Second},
			watchDir: "docs",
			expected: &config.Watch{Dir: "docs", Include: []string{"*.go"}, Debounce: time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Watch = tt.cfgWatch

			r := &runner{cfg: cfg}

			assert.Equal(t, tt.expected, r.watchConfig(&Options{WatchDir: tt.watchDir}))

			if tt.cfgWatch != nil {
				assert.Equal(t, "src", tt.cfgWatch.Dir)
			}
		})
	}
}
