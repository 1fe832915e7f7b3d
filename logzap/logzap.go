package logzap

import (
	"github.com/aatuh/ulid-toolkit/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts zap to the ports.Logger interface.
type ZapLogger struct{ s *zap.SugaredLogger }

func New(z *zap.Logger) ports.Logger { return &ZapLogger{s: z.Sugar()} }

// NewProduction creates a production logger.
func NewProduction() ports.Logger {
	z, _ := zap.NewProduction()
	return &ZapLogger{s: z.Sugar()}
}

// NewWithLevel creates a production logger at the given level
// ("debug"|"info"|"warn"|"error"). Unknown levels fall back to info.
func NewWithLevel(level string) ports.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	z, _ := cfg.Build()
	return &ZapLogger{s: z.Sugar()}
}

func (l *ZapLogger) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l *ZapLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l *ZapLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l *ZapLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }
