package bootstrap

import (
	"go-hrms/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process logger for cfg.AppEnv and installs it as the zap global.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
