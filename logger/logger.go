package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the process logger and installs it as the zap global.
func New(production bool) (*zap.SugaredLogger, error) {
	var (
		log *zap.Logger
		err error
	)
	if production {
		log, err = zap.NewProduction()
	} else {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stdout"}
		log, err = z.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	zap.ReplaceGlobals(log)
	return log.Sugar(), nil
}
