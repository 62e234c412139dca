// Package logger provides structured logging for memkit
package logger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	mu           sync.RWMutex
)

// contextKey is the type for context keys
type contextKey string

const (
	// ComponentKey is the context key for the component name
	ComponentKey contextKey = "component"
	// RegistryKey is the context key for a pool registry name
	RegistryKey contextKey = "registry"
)

// Config represents logger configuration
type Config struct {
	Level       string
	Development bool
	Encoding    string // json or console
	OutputPaths []string
}

// Init builds a logger from cfg and installs it as the global logger.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// New creates a zap logger from cfg without touching the global logger.
// An empty Level means info, an empty Encoding keeps zap's preset for the
// mode and no OutputPaths means stderr.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Sampling = nil
	zapCfg.Encoding = cmp.Or(cfg.Encoding, zapCfg.Encoding)
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = slices.Clone(cfg.OutputPaths)
	}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	enc := &zapCfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.MessageKey = "message"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	l, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// Set replaces the global logger. A nil logger installs a no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	globalLogger = l
	mu.Unlock()
}

// Get returns the global logger. Until Init or Set is called it is a no-op
// logger, so a library import never writes to the host's output on its own.
func Get() *zap.Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// WithContext returns the global logger tagged with the component and
// registry names carried by ctx, if any.
func WithContext(ctx context.Context) *zap.Logger {
	l := Get()
	var fields []zap.Field
	for _, key := range []contextKey{ComponentKey, RegistryKey} {
		if v, ok := ctx.Value(key).(string); ok {
			fields = append(fields, zap.String(string(key), v))
		}
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// Debug logs at debug level through the global logger.
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Error logs at error level through the global logger.
func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

// Sync flushes the global logger. It is a no-op before Init or Set.
func Sync() error {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l == nil {
		return nil
	}
	return l.Sync()
}
