// Package applog wraps zap for the composition-layer logging the App emits
// when a plugin build, system init, system registration, or per-frame update
// fails. The archetype storage core underneath stays silent, and so do
// SystemManager and PluginManager; only the App logs.
package applog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger the App/SystemManager/PluginManager
// composition layer logs through.
type Logger = zap.Logger

// Config selects the logger's level and output.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to "info".
	Level string
	// Development enables console-friendly, colorized output instead of
	// JSON, for running an App from a terminal rather than under a
	// supervisor.
	Development bool
}

// New builds a *zap.Logger for cfg. Errors from zap's own config validation
// are treated as impossible for the fixed set of levels this package
// accepts and are not surfaced; an unrecognized Level falls back to info.
func New(cfg Config) *Logger {
	level := parseLevel(cfg.Level)
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Development,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if cfg.Development {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func parseLevel(level string) zapcore.Level {
	switch level {
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
