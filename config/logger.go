package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare returns our standard logger - configured zap console logger.
// Errors go to stderr, everything below to stdout, so program output stays
// pipeable.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var coreHP, coreLP zapcore.Core
	switch conf.Console.Level {
	case "normal":
		coreLP = zapcore.NewCore(encoder, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		coreHP = zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), highPriority)
	case "debug":
		coreLP = zapcore.NewCore(encoder, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.DebugLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		coreHP = zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), highPriority)
	default:
		coreLP = zapcore.NewNopCore()
		coreHP = zapcore.NewNopCore()
	}

	return zap.New(zapcore.NewTee(coreHP, coreLP)).Named("cssv"), nil
}
