package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared variant of the same core.
// Both are initialized once in InitLogger and safe for concurrent use.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger builds the global zap loggers. APP_ENV=local switches to the
// human-readable development encoder, everything else logs JSON.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		logger = zap.NewNop()
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call it deferred from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// Packages may log before main runs InitLogger (tests, tooling).
	if Log == nil {
		InitLogger()
	}
}
