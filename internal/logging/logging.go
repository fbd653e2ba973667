// Package logging создаёт zap-логгер для бинарей.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New в режиме дебага development-логгер, иначе консольный info-уровня.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return Config().Build()
}

// Config конфиг логгера без режима дебага: человекочитаемый вывод, уровень info.
func Config() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true
	return cfg
}
