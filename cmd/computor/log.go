package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/computor"
)

// newLogger creates a logger writing to w. Verbose loggers are human-readable
// and log at debug level; others write JSON at info level.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// zapTracer logs evaluation steps.
type zapTracer struct {
	log *zap.Logger
}

func (t zapTracer) Trace(s computor.Step) {
	t.log.Info("step",
		zap.Stringer("token", s.Token),
		zap.Int("depth", s.Depth),
		zap.String("state", s.String()),
	)
}
