package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/valorhood/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		config         *config.Config
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Info on console",
			config:         &config.Config{LogLvl: "info", LogFormat: FormatConsole},
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Error as json",
			config:         &config.Config{LogLvl: "error", LogFormat: FormatJSON},
			expectedLogLvl: zapcore.ErrorLevel,
		},
		{
			name:           "Debug with default format",
			config:         &config.Config{LogLvl: "debug"},
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:           "Upper case warn",
			config:         &config.Config{LogLvl: "WARN"},
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "invalid"},
			expectedError: true,
		},
		{
			name:          "Invalid format",
			config:        &config.Config{LogLvl: "info", LogFormat: "xml"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			require.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
		})
	}
}

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := build("info", FormatJSON, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("quest completed", zap.Int64("quest_id", 7))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "quest completed", line["msg"])
	assert.Equal(t, "valorhood", line["service"])
	assert.EqualValues(t, 7, line["quest_id"])
	assert.Contains(t, line, "ts")
}

func TestBuild_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := build("warn", FormatConsole, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("sweep slow")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "sweep slow")
	assert.Contains(t, out, `"service": "valorhood"`)
}
