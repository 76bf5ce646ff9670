// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/valorhood/internal/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	serviceName       = "valorhood"
	consoleTimeLayout = "15:04:05 02-01-2006"
)

// InitLogger replaces the global zap logger according to conf.
func InitLogger(conf *config.Config) error {
	l, err := New(conf.LogLvl, conf.LogFormat)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

// New returns a stdout logger. An empty format means console.
func New(level, format string) (*zap.Logger, error) {
	return build(level, format, zapcore.Lock(os.Stdout))
}

func build(level, format string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unsupported log level %q: %w", level, err)
	}
	enc, err := encoder(format)
	if err != nil {
		return nil, err
	}

	return zap.New(
		zapcore.NewCore(enc, out, lvl),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
		zap.Fields(zap.String("service", serviceName)),
	), nil
}

func encoder(format string) (zapcore.Encoder, error) {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	switch format {
	case "", FormatConsole:
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(consoleTimeLayout)
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}
