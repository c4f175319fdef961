package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infow("env", env, def, "source", "default")
		return def
	}
	return value
}

// Must return the result of searching an env var, logging an error if the env var is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Errorw("env", "missing required var", env)
	}
	return value
}
