package commands

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelFor maps the -v count to a level: warn, info, then debug.
func levelFor(verbose int) zapcore.Level {
	switch {
	case verbose <= 0:
		return zap.WarnLevel
	case verbose == 1:
		return zap.InfoLevel
	default:
		return zap.DebugLevel
	}
}

// newLogger builds the CLI logger. Logs always go to stderr so that
// stdout carries only command output.
func newLogger(cfg LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.JSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(levelFor(cfg.Verbose))
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
