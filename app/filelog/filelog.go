// Package filelog writes an append-only JSON audit trail of key operations.
package filelog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/anyproto/any-keys/app"
)

const CName = "common.filelog"

type Config struct {
	// Path of the audit file, empty disables the audit trail
	Path string `yaml:"path"`
}

type configSource interface {
	GetFileLog() Config
}

type FileLogger interface {
	app.ComponentRunnable
	// DoLog calls fn only when the audit trail is enabled
	DoLog(fn func(logger *zap.Logger))
	Path() string
}

type fileLogger struct {
	path    string
	logger  *zap.Logger
	logFile *os.File
	mu      sync.RWMutex
}

func New() FileLogger {
	return &fileLogger{}
}

func (fl *fileLogger) Init(a *app.App) error {
	fl.path = a.MustComponent("config").(configSource).GetFileLog().Path
	if fl.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(fl.path), 0o700); err != nil {
		return fmt.Errorf("failed to create log folder: %w", err)
	}
	logFile, err := os.OpenFile(fl.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	fl.logFile = logFile

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)
	fl.logger = zap.New(core).Named("audit")
	return nil
}

func (fl *fileLogger) Name() string {
	return CName
}

func (fl *fileLogger) Run(ctx context.Context) error {
	return nil
}

func (fl *fileLogger) Close(ctx context.Context) error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.logger != nil {
		_ = fl.logger.Sync()
		fl.logger = nil
	}
	if fl.logFile != nil {
		err := fl.logFile.Close()
		fl.logFile = nil
		return err
	}
	return nil
}

func (fl *fileLogger) DoLog(fn func(logger *zap.Logger)) {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	if fl.logger != nil {
		fn(fl.logger)
	}
}

func (fl *fileLogger) Path() string {
	return fl.path
}
