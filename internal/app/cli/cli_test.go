package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"consolelog/internal/app/generator"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

func Test_NewCLI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := NewMockRunner(ctrl)
	mockGenerator := generator.NewMockGenerator(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	cliInstance := NewCLI(mockRunner, mockGenerator, mockLogger)
	assert.NotNil(t, cliInstance)

	instance, ok := cliInstance.(*cli)
	assert.True(t, ok)
	assert.Equal(t, mockRunner, instance.runner)
	assert.Equal(t, mockGenerator, instance.generator)
	assert.Equal(t, mockLogger, instance.log)
}

func Test_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := NewMockRunner(ctrl)
	mockGenerator := generator.NewMockGenerator(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	tests := []struct {
		name          string
		args          []string
		before        func()
		expectedExit  int
		expectedError bool
		expectedOut   string
		expectedErr   string
	}{
		{
			name: "No arguments runs the console",
			args: []string{},
			before: func() {
				mockLogger.EXPECT().Debug().Return(nil)
				mockRunner.EXPECT().Run(gomock.Any(), &Options{Type: CommandRun}).Return(nil)
			},
			expectedExit: 0,
		},
		{
			name: "Run with flags",
			args: []string{"run", "--no-ui", "-w", "src"},
			before: func() {
				mockLogger.EXPECT().Debug().Return(nil)
				mockRunner.EXPECT().Run(gomock.Any(), &Options{Type: CommandRun, NoUI: true, WatchDir: "src"}).Return(nil)
			},
			expectedExit: 0,
		},
		{
			name: "Run failure",
			args: []string{"run"},
			before: func() {
				mockLogger.EXPECT().Debug().Return(nil)
				mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("runner failed"))
				mockLogger.EXPECT().Error().Return(nil)
			},
			expectedExit:  1,
			expectedError: true,
			expectedErr:   "runner failed",
		},
		{
			name: "Init",
			args: []string{"init", "--force"},
			before: func() {
				mockGenerator.EXPECT().Generate(generator.Options{Path: config.ConfigFile}, true, false).Return(nil)
			},
			expectedExit: 0,
			expectedOut:  "Generated",
		},
		{
			name: "Init dry run prints nothing extra",
			args: []string{"init", "--dry-run", "-w", "src"},
			before: func() {
				mockGenerator.EXPECT().Generate(generator.Options{Path: config.ConfigFile, WatchDir: "src"}, false, true).Return(nil)
			},
			expectedExit: 0,
		},
		{
			name: "Init failure",
			args: []string{"init"},
			before: func() {
				mockGenerator.EXPECT().Generate(gomock.Any(), false, false).Return(errors.New("file exists"))
				mockLogger.EXPECT().Error().Return(nil)
			},
			expectedExit:  1,
			expectedError: true,
			expectedErr:   "file exists",
		},
		{
			name: "Version",
			args: []string{"version"},
			before: func() {
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expectedExit: 0,
			expectedOut:  config.Version,
		},
		{
			name: "Help",
			args: []string{"--help"},
			before: func() {
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expectedExit: 0,
			expectedOut:  "Usage:",
		},
		{
			name: "Unknown command",
			args: []string{"unknown"},
			before: func() {
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expectedExit:  1,
			expectedError: true,
			expectedErr:   "consolelog help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.before()

			var out, errOut bytes.Buffer

			c := &cli{
				args:      tt.args,
				out:       &out,
				errOut:    &errOut,
				runner:    mockRunner,
				generator: mockGenerator,
				log:       mockLogger,
			}

			exitCode, err := c.Execute()

			assert.Equal(t, tt.expectedExit, exitCode)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectedOut != "" {
				assert.Contains(t, out.String(), tt.expectedOut)
			}

			if tt.expectedErr != "" {
				assert.Contains(t, errOut.String(), tt.expectedErr)
			}
		})
	}
}

func Test_Execute_RunContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := NewMockRunner(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug().Return(nil)

	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, opts *Options) error {
		assert.NotNil(t, ctx)
		assert.NoError(t, ctx.Err())

		return nil
	})

	c := &cli{args: nil, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, runner: mockRunner, log: mockLogger}

	exitCode, err := c.Execute()
	assert.Equal(t, 0, exitCode)
	assert.NoError(t, err)
}

func Test_RenderHelp(t *testing.T) {
	help := RenderHelp()

	assert.Contains(t, help, config.AppName)
	assert.Contains(t, help, "--watch")
	assert.Contains(t, help, "--no-ui")
	assert.Contains(t, help, "Examples:")
}
