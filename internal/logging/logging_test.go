package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestConfig(t *testing.T) {
	cfg := Config()
	if cfg.Encoding != "console" {
		t.Errorf("Encoding = %q, want console", cfg.Encoding)
	}
	if cfg.Level.Level() != zapcore.InfoLevel {
		t.Errorf("Level = %v, want info", cfg.Level.Level())
	}
}

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		l, err := New(debug)
		if err != nil {
			t.Fatalf("New(%v) error = %v", debug, err)
		}
		if got := l.Core().Enabled(zapcore.DebugLevel); got != debug {
			t.Errorf("New(%v): debug enabled = %v", debug, got)
		}
		_ = l.Sync()
	}
}
