package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/caarlos0/env/v6"
)

func TestDefaults_Valid(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	if cfg.Speech.PhraseLimit != 3*time.Second || cfg.Speech.AmbientDuration != time.Second || cfg.Speech.PhraseThreshold != 300*time.Millisecond {
		t.Errorf("unexpected microphone timings: %+v", cfg.Speech)
	}
	if cfg.Gesture.CursorGain != 2.4 || cfg.Gesture.CursorFineTune != 1.1 {
		t.Errorf("unexpected cursor constants: %v %v", cfg.Gesture.CursorGain, cfg.Gesture.CursorFineTune)
	}
}

func TestDefaultSlideshowCombo(t *testing.T) {
	tests := map[string]string{
		"windows": "ctrl+f5",
		"linux":   "ctrl+f5",
		"darwin":  "cmd+shift+enter",
	}
	for goos, want := range tests {
		if got := defaultSlideshowCombo(goos); got != want {
			t.Errorf("defaultSlideshowCombo(%q) = %q, want %q", goos, got, want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STT_SERVICE", "yandex")
	t.Setenv("MIC_PHRASE_LIMIT", "5s")
	t.Setenv("CURSOR_GAIN", "3")
	t.Setenv("YC_STT_API_KEY", "secret")

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	if cfg.Speech.STTService != "yandex" {
		t.Errorf("STTService = %q", cfg.Speech.STTService)
	}
	if cfg.Speech.PhraseLimit != 5*time.Second {
		t.Errorf("PhraseLimit = %v", cfg.Speech.PhraseLimit)
	}
	if cfg.Gesture.CursorGain != 3 {
		t.Errorf("CursorGain = %v", cfg.Gesture.CursorGain)
	}
	if cfg.Speech.Yandex.APIKey != "secret" {
		t.Errorf("Yandex.APIKey = %q", cfg.Speech.Yandex.APIKey)
	}
	// Не заданные переменные не затирают дефолты
	if cfg.Speech.Language != "en-US" {
		t.Errorf("Language = %q, want default", cfg.Speech.Language)
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg := Defaults()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	registerFlags(fs, cfg)

	err := fs.Parse([]string{"-stt-service", "openai", "-mic-pause-duration", "1s", "-camera-index", "2", "-debug-mode"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Speech.STTService != "openai" || cfg.Speech.PauseDuration != time.Second {
		t.Errorf("speech flags not applied: %+v", cfg.Speech)
	}
	if cfg.Gesture.CameraIndex != 2 || !cfg.DebugMode {
		t.Errorf("flags not applied: camera=%d debug=%v", cfg.Gesture.CameraIndex, cfg.DebugMode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown stt", func(c *Config) { c.Speech.STTService = "sphinx" }},
		{"unknown backend", func(c *Config) { c.Speech.InputBackend = "xdotool" }},
		{"zero sample rate", func(c *Config) { c.Speech.SampleRate = 0 }},
		{"negative timeout", func(c *Config) { c.Speech.ListenTimeout = -time.Second }},
		{"negative phrase threshold", func(c *Config) { c.Speech.PhraseThreshold = -time.Millisecond }},
		{"empty combo", func(c *Config) { c.Speech.SlideshowCombo = " " }},
		{"confidence above one", func(c *Config) { c.Gesture.DetectionConfidence = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}
