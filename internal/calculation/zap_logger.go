package calculation

import "go.uber.org/zap"

// zapLogger adapts a zap logger to the engine's Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps l for use with CalculationEngine.SetLogger. A nil logger
// yields a no-op zap logger.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return zapLogger{sugar: l.Sugar()}
}

func (z zapLogger) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z zapLogger) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z zapLogger) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z zapLogger) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }
