package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aliskhannn/revisor/internal/config"
)

// New builds the application logger. Production uses JSON at info level,
// everything else a console encoder at debug level. When cfg.Log.File is set
// the same entries are also written as JSON to a rotated file.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		base *zap.Logger
		err  error
	)
	if cfg.Env == "production" {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Log.File == "" {
		return base, nil
	}

	level := zap.DebugLevel
	if cfg.Env == "production" {
		level = zap.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	})

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)

	return base.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	})), nil
}

// Must is like New but exits the process on failure.
func Must(cfg *config.Config) *zap.Logger {
	l, err := New(cfg)
	if err != nil {
		_, _ = os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	return l
}
