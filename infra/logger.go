package infra

import (
	"go.uber.org/zap"

	"github.com/herocatalog/superhero-catalog/config"
)

type LoggerClient struct {
	sugar *zap.SugaredLogger
}

func InitLoggerClient(cfg *config.EnvConfig) (*LoggerClient, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment.Mode == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return &LoggerClient{sugar: logger.Sugar()}, nil
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *LoggerClient {
	return &LoggerClient{sugar: zap.NewNop().Sugar()}
}

func (l *LoggerClient) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *LoggerClient) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *LoggerClient) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *LoggerClient) Sync() {
	_ = l.sugar.Sync()
}
