// Проверка микрофона: калибровка, одна фраза, запись в WAV без распознавания.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"HandsFree/internal/config"
	"HandsFree/internal/logging"
	"HandsFree/internal/service/audio"
	"HandsFree/internal/service/audio/mic"
)

func main() {
	out := flag.String("out", "mic-check.wav", "куда сохранить записанную фразу")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	if err := run(cfg.Speech, afero.NewOsFs(), *out, sugar); err != nil {
		sugar.Errorw("Mic check failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(sp config.SpeechConfig, fs afero.Fs, out string, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := mic.Open(mic.Config{
		SampleRate:      sp.SampleRate,
		FramesPerBuffer: sp.FramesPerBuffer,
		PauseDuration:   sp.PauseDuration,
		PhraseLimit:     sp.PhraseLimit,
		PhraseThreshold: sp.PhraseThreshold,
		ListenTimeout:   sp.ListenTimeout,
	}, sugar)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	if err := m.Calibrate(ctx, sp.AmbientDuration); err != nil {
		return err
	}
	sugar.Infow("Say something")

	u, err := m.Listen(ctx)
	if err != nil {
		return err
	}

	f, err := fs.Create(out)
	if err != nil {
		return err
	}
	if err := audio.EncodeWAV(f, u); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	sugar.Infow("Utterance saved", "path", out, "duration", u.Duration().String(), "samples", len(u.Samples))
	return nil
}
