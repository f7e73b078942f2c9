package config

import "time"

// app constants
const (
	AppName        = "consolelog"
	AppDescription = "styled console log with asynchronous status broadcasting"
	ConfigFile     = "consolelog.yaml"
	EnvPrefix      = "CONSOLELOG"

	LogLevel  = "info"
	LogFormat = "console"

	Version = "0.3.0"
)

// console constants
const (
	DividerChar     = "+"
	DividerWidth    = 66
	TimestampFormat = "15:04:05"
	ConsoleBuffer   = 5000
	SavePath        = "consolelog.txt"
	Background      = "#333333"
)

// watch constants
const (
	WatchDebounce = 300 * time.Millisecond
)

// monitor constants
const (
	MonitorInterval = 5 * time.Second
)

// shutdown constants
const (
	ShutdownTimeout = 5 * time.Second
)
