package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

type logger struct {
	zap *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &logger{zap: zap.NewNop()}
)

// Init replaces the global logger. level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))
	SetCore(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return nil
}

// SetCore replaces the global logger with one writing to core.
func SetCore(core zapcore.Core, opts ...zap.Option) {
	mu.Lock()
	global = &logger{zap: zap.New(core, opts...)}
	mu.Unlock()
}

func SetNopLogger() {
	mu.Lock()
	global = &logger{zap: zap.NewNop()}
	mu.Unlock()
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func With(fields ...Field) *logger {
	return &logger{zap: L().zap.With(fields...)}
}

// ToContext attaches fields that every log call made with ctx will carry.
func ToContext(ctx context.Context, fields ...Field) context.Context {
	existing, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	existing, ok := ctx.Value(ctxFieldsKey{}).([]Field)
	if !ok || len(existing) == 0 {
		return fields
	}
	return append(append(make([]Field, 0, len(existing)+len(fields)), existing...), fields...)
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zap.Debug(msg, fieldsFromContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zap.Info(msg, fieldsFromContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zap.Warn(msg, fieldsFromContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zap.Error(msg, fieldsFromContext(ctx, fields)...)
}

func (l *logger) Sync() error { return l.zap.Sync() }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

// NoopLogger satisfies the small logging interfaces of platform packages
// without writing anything.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
