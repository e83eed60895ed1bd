// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a JSON production logger, or a console development logger
// when development is true.
func New(development bool) (*zap.Logger, error) {
	if development {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
