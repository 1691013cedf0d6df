package tracker

import "go.uber.org/zap"

// Logger is the logging surface used by the tracker.
// Implement this interface to route tracker diagnostics into your own logger.
type Logger interface {
	Debug(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger. Messages use printf-style formatting.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return noopLogger{}
	}
	return &zapLogger{sugar: l.Named("tracker").Sugar()}
}

func (z *zapLogger) Debug(message string, args ...any) {
	z.sugar.Debugf(message, args...)
}

func (z *zapLogger) Warn(message string, args ...any) {
	z.sugar.Warnf(message, args...)
}

func (z *zapLogger) Error(message string, args ...any) {
	z.sugar.Errorf(message, args...)
}
