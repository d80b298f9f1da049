// Package logx is the application-wide leveled logger, a thin facade
// over zap so call sites stay free of logger plumbing.
package logx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Fields attaches structured context to a log entry.
type Fields map[string]any

var (
	atomicLevel = zap.NewAtomicLevelAt(LevelInfo)
	sugar       = newSugaredLogger()
)

func newSugaredLogger() *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atomicLevel,
	)
	return zap.New(core, zap.AddCallerSkip(1)).Sugar()
}

// SetLevel changes the minimum level emitted by the package logger.
func SetLevel(l Level) {
	atomicLevel.SetLevel(l)
}

func Debug(args ...any)                 { sugar.Debug(args...) }
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }
func Info(args ...any)                  { sugar.Info(args...) }
func Infof(format string, args ...any)  { sugar.Infof(format, args...) }
func Warn(args ...any)                  { sugar.Warn(args...) }
func Warnf(format string, args ...any)  { sugar.Warnf(format, args...) }
func Error(args ...any)                 { sugar.Error(args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }
func Fatalf(format string, args ...any) { sugar.Fatalf(format, args...) }

// Entry is a logger with pre-bound fields.
type Entry struct {
	s *zap.SugaredLogger
}

// WithFields returns an Entry that includes the given fields on every line.
func WithFields(f Fields) *Entry {
	args := make([]any, 0, len(f)*2)
	for k, v := range f {
		args = append(args, k, v)
	}
	return &Entry{s: sugar.With(args...)}
}

func (e *Entry) Debug(args ...any)                 { e.s.Debug(args...) }
func (e *Entry) Debugf(format string, args ...any) { e.s.Debugf(format, args...) }
func (e *Entry) Info(args ...any)                  { e.s.Info(args...) }
func (e *Entry) Infof(format string, args ...any)  { e.s.Infof(format, args...) }
func (e *Entry) Warn(args ...any)                  { e.s.Warn(args...) }
func (e *Entry) Warnf(format string, args ...any)  { e.s.Warnf(format, args...) }
func (e *Entry) Error(args ...any)                 { e.s.Error(args...) }
func (e *Entry) Errorf(format string, args ...any) { e.s.Errorf(format, args...) }
