package bridge

import "go.uber.org/zap"

// NewLogger builds the logger for cfg: development output when debug logs
// are on, production output otherwise. It never fails; a logger that cannot
// be built is replaced by a no-op one.
func NewLogger(cfg Config) *zap.Logger {
	build := zap.NewProduction
	if cfg.DebugLogs {
		build = zap.NewDevelopment
	}

	logger, err := build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
