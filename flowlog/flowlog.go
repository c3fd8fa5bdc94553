// Package flowlog configures loggers with project defaults.
package flowlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger writing JSON to stderr with ISO8601
// timestamps.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Must returns a default logger or panics.
func Must() *zap.Logger {
	l, err := New()
	if err != nil {
		panic(err)
	}
	return l
}
