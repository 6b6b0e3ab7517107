package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/logging"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, logging.Level(name), name)
	}
}

func TestNewWithSink_JSONInProduction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithSink(config.LogConfig{Level: "info", Format: "console"}, "production", zapcore.AddSync(&buf))
	log.Info("service registered", zap.String("identifier", "outer_class"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "service registered", entry["msg"])
	assert.Equal(t, "outer_class", entry["identifier"])
}

func TestNewWithSink_ConsoleLocally(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithSink(config.LogConfig{Level: "debug", Format: "console"}, "local", zapcore.AddSync(&buf))
	log.Debug("argument resolved", zap.String("parameter", "inner_class"))

	out := buf.String()
	assert.Contains(t, out, "argument resolved")
	assert.Contains(t, out, `"parameter": "inner_class"`)
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNewWithSink_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithSink(config.LogConfig{Level: "warn", Format: "json"}, "local", zapcore.AddSync(&buf))
	log.Info("dropped")
	log.Debug("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { logging.Nop().Info("nothing") })
}
