package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment = "ENVIRONMENT"
	Port        = "PORT"
	APIURL      = "API_URL"
	ConfigDir   = "CONFIG_DIR"
	LogLevel    = "LOG_LEVEL"
)

// NewEnv creates an Env with loaded environment variables.
// Values in a .env file in the working directory are loaded first
// and never override variables that are already set.
func NewEnv(logger *zap.Logger) *Env {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	env := Env{
		vars: map[string]string{
			Environment: valueOfEnvVar(logger, Environment),
			Port:        valueOfEnvVar(logger, Port),
			APIURL:      valueOfEnvVar(logger, APIURL),
			ConfigDir:   valueOfEnvVar(logger, ConfigDir),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

// GetOrDefault returns an environment variable with the specified name,
// or fallback when the variable is empty
func (env *Env) GetOrDefault(variableName, fallback string) string {
	if value := env.vars[variableName]; value != "" {
		return value
	}
	return fallback
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
