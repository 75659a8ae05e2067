package logging

import (
	"fmt"
	"os"

	"github.com/Jaydccq/mini-ups-sub002/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CreateLogger builds the process logger. Development output is also chosen
// when APP_ENV is set to anything other than "production".
func CreateLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	appEnv := os.Getenv("APP_ENV")
	if cfg.Development || (appEnv != "" && appEnv != "production") {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
