package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"dolar-hoy/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput("warn", &buf)

	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.WithField("url", "https://mercados.ambito.com").Warn("endpoint dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "endpoint dropped", line["message"])
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "https://mercados.ambito.com", line["url"])
	assert.Contains(t, line, "timestamp")
}

func TestNew_UnknownLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, logger.New("loud").GetLevel())
}

func TestConfigure_StandardLogger(t *testing.T) {
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.GetLevel()
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})

	var buf bytes.Buffer
	logger.Configure(std, "info", &buf)

	logrus.WithError(assert.AnError).Error("dolarhoy stopped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "dolarhoy stopped", line["message"])
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, assert.AnError.Error(), line["error"])
	assert.Contains(t, line, "timestamp")
}
