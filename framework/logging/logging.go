// Package logging builds the zap logger the container and the inspection
// endpoint write to.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-injector/framework/config"
)

// New returns a logger writing to stdout.
//
//	log := logging.New(cfg.Log, cfg.App.Env)
//	defer log.Sync()
func New(cfg config.LogConfig, env string) *zap.Logger {
	return NewWithSink(cfg, env, zapcore.AddSync(os.Stdout))
}

// NewWithSink returns a logger writing to out. Production or json format
// selects the JSON encoder; everything else gets the colored console one.
func NewWithSink(cfg config.LogConfig, env string, out zapcore.WriteSyncer) *zap.Logger {
	level := Level(cfg.Level)

	var encoder zapcore.Encoder
	if env == "production" || cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(developmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller())
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

// Level maps a config level name to a zap level. Unknown names are info.
func Level(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func developmentEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
