// Package logging builds the zap logger used by the grclean command.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/grclean/config"
)

// New builds a zap logger from cfg.Log. Format "console" selects the
// development encoder; anything else uses the production JSON encoder.
// Logs go to stderr so stdout stays free for the report.
func New(cfg config.Log) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.Level))

	return zapCfg.Build()
}

// Level maps a config level name to a zap level; unknown names map to info.
func Level(name string) zapcore.Level {
	switch name {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
