package providers

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/inspect"
	"github.com/km-arc/go-injector/framework/logging"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads and validates the configuration on first use.
//
// Registered identifiers:
//   - "config" → *config.Config (singleton)
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.RegisterSingleton(container.Func("Config", func() (*config.Config, error) {
		cfg := config.Load(envFiles...)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}), "config")
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the application logger from "config".
//
// Registered identifiers:
//   - "logger" → *zap.Logger (singleton)
type LoggingServiceProvider struct {
	container.BaseProvider

	// Sink overrides stdout.
	Sink zapcore.WriteSyncer
}

func (p *LoggingServiceProvider) Register(app *container.Container) {
	sink := p.Sink
	app.RegisterSingleton(container.Func("Logger", func(cfg *config.Config) *zap.Logger {
		if sink == nil {
			return logging.New(cfg.Log, cfg.App.Env)
		}
		return logging.NewWithSink(cfg.Log, cfg.App.Env, sink)
	}, container.Param("config")), "logger")
}

// Boot logs the effective settings once every provider has registered.
func (p *LoggingServiceProvider) Boot(app *container.Container) error {
	log, err := container.Resolve[*zap.Logger](app, "logger")
	if err != nil {
		return err
	}
	cfg, err := container.Resolve[*config.Config](app, "config")
	if err != nil {
		return err
	}
	log.Info("application booting",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("log_level", cfg.Log.Level),
	)
	return nil
}

// ── InspectServiceProvider ────────────────────────────────────────────────────

// InspectServiceProvider registers the inspection endpoint. It is deferred:
// nothing is built unless "inspector" is requested.
//
// Registered identifiers:
//   - "inspector" → *inspect.Inspector (singleton), built from "container"
//     and "logger"
type InspectServiceProvider struct {
	container.BaseProvider
}

func (p *InspectServiceProvider) Register(app *container.Container) {
	app.RegisterSingleton(container.Func("Inspector", inspect.New,
		container.Param("container"),
		container.Param("logger"),
	), "inspector")
}

func (p *InspectServiceProvider) Provides() []string { return []string{"inspector"} }
func (p *InspectServiceProvider) IsDeferred() bool   { return true }
