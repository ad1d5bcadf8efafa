package log

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

func InitProd() *zap.Logger {
	return initLogger(zap.NewProductionConfig())
}

func InitDev() *zap.Logger {
	return initLogger(zap.NewDevelopmentConfig())
}

type FileOptions struct {
	Path       string
	MaxSize    string
	MaxBackups int
}

// Init builds a dev or prod logger. When file.Path is set, entries are also
// written to a rotating file in JSON.
func Init(mode string, file FileOptions) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if mode == "prod" {
		config = zap.NewProductionConfig()
	}

	if file.Path == "" {
		return initLogger(config), nil
	}

	maxSize, err := units.FromHumanSize(file.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("invalid log file size %q: %w", file.MaxSize, err)
	}

	rotated := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    int(maxSize / units.MB),
			MaxBackups: file.MaxBackups,
		}),
		config.Level,
	)

	return initLogger(config, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, rotated)
	})), nil
}

func initLogger(config zap.Config, opts ...zap.Option) *zap.Logger {
	var err error
	logger, err = config.Build(append([]zap.Option{zap.AddStacktrace(zap.WarnLevel)}, opts...)...)
	if err != nil {
		fmt.Printf("Failed to init zap logger: %v", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func Sync() {
	logger.Sync()
}
