package logging

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the development style logger used by every seppun-kb binary,
// writing to the given zap output paths ("stdout" when none are given).
func New(debug bool, outputs ...string) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}
	loggerConfig.OutputPaths = outputs
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		loggerConfig.Development = false
		loggerConfig.DisableStacktrace = true
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
