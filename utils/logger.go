package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process-wide zap logger. JSON output everywhere
// except development, where a console encoder is easier to read.
func InitLogger(env string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		// Logger construction only fails on a bad config; fall back to no-op
		// rather than taking the process down.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
