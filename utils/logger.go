package utils

import (
	"log"

	"rootsdental/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration. The level comes from
// LOG_LEVEL when it parses; otherwise info in production, debug elsewhere.
func InitializeLogger() {
	var cfg zap.Config
	var level zapcore.Level

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		level = zap.InfoLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		level = zap.DebugLevel
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if configured, err := zapcore.ParseLevel(config.AppConfig.LogLevel); err == nil && config.AppConfig.LogLevel != "" {
		level = configured
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
