package utils

import (
	"os"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/environment"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "hs_activities"

// NewLogger creates the host's logger. It reads the process environment
// directly since environment.Env itself needs a logger.
// ENVIRONMENT=prod selects JSON output, LOG_LEVEL overrides the default level.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv(environment.Environment) == "prod" {
		cfg = zap.NewProductionConfig()
	}

	if level, set := os.LookupEnv(environment.LogLevel); set && level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", environment.LogLevel)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	cfg.InitialFields = map[string]interface{}{"service": serviceName}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "could not build logger")
	}
	return logger, nil
}
