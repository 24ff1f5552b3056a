// Package logger builds the zap logger backed by a rolling log file
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the log file and its rotation
type Config struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
	Compress   bool   `yaml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		File:       "raycaster.log",
		Level:      "info",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
}

// New builds a console-encoded logger over a lumberjack file.
// An empty File disables logging. The returned close func syncs and closes the file.
func New(cfg Config) (*zap.SugaredLogger, func() error, error) {
	if cfg.File == "" {
		return zap.NewNop().Sugar(), func() error { return nil }, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(lj), level)
	log := zap.New(core, zap.AddCaller()).Sugar()

	closeFn := func() error {
		_ = log.Sync()
		return lj.Close()
	}
	return log, closeFn, nil
}
