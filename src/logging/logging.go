// Package logging configures the CLI's structured file logger
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/apimgr/xfetch/src/paths"
)

const (
	defaultMaxSize  = 10 // MB
	defaultMaxFiles = 5
	defaultMaxAge   = 30 // days
)

// Config holds logging configuration
type Config struct {
	Level    string // debug, info, warn, error (default: warn)
	File     string // Log file path (empty = {log_dir}/cli.log)
	MaxSize  int    // Max log file size in MB (default: 10)
	MaxFiles int    // Max log files to keep (default: 5)
}

// FromViper returns logging configuration from viper
func FromViper() Config {
	return Config{
		Level:    viper.GetString("logging.level"),
		File:     viper.GetString("logging.file"),
		MaxSize:  viper.GetInt("logging.max_size"),
		MaxFiles: viper.GetInt("logging.max_files"),
	}
}

// Init builds a JSON logger writing to a rotated log file and installs it
// as the slog default. Close the returned writer before exit.
func Init(cfg Config) (*slog.Logger, io.Closer, error) {
	logPath := cfg.File
	if logPath == "" {
		logPath = paths.LogFile()
	}
	logPath = paths.ExpandHome(logPath)

	if err := paths.EnsureFile(logPath); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = defaultMaxFiles
	}

	rotatingWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     defaultMaxAge,
		Compress:   true,
	}

	logger := New(rotatingWriter, ParseLevel(cfg.Level))
	slog.SetDefault(logger)
	return logger, rotatingWriter, nil
}

// New returns a JSON logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// ParseLevel maps a level name to a slog level, defaulting to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
