package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidLogsBuffer    = errors.New("console buffer must be greater than 0")
	ErrInvalidStyleName     = errors.New("unknown console style")
	ErrInvalidColor         = errors.New("color must not be empty")
	ErrInvalidMonitorTicker = errors.New("monitor interval must be greater than 0")
	ErrInvalidDebounce      = errors.New("watch debounce must not be negative")
	ErrWatchIncludeRequired = errors.New("watch requires at least one include pattern")

	ErrUnknownCategory = errors.New("unknown log category")
	ErrUnknownFormat   = errors.New("unknown persist format")
	ErrListenerPanic   = errors.New("status listener panicked")
	ErrSavePathEmpty   = errors.New("save path is not configured")
	ErrAlreadyStarted  = errors.New("already started")
	ErrInvalidWatchDir = errors.New("watch dir is not a directory")

	ErrFileExists = errors.New("file already exists, use --force to overwrite")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
