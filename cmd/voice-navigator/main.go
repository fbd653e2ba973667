// Голосовой навигатор по презентации: «next», «previous», «slideshow», «exit».
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"HandsFree/internal/app/navigator"
	"HandsFree/internal/config"
	"HandsFree/internal/logging"
	"HandsFree/internal/service/audio/mic"
	"HandsFree/internal/service/input"
	"HandsFree/internal/service/input/inject"
	"HandsFree/internal/service/notify"
	"HandsFree/internal/service/notify/device"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Voice Navigator failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	// Контекст и отмена по Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sp := cfg.Speech
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
	// Закрывается после Serve: к этому моменту цикл захвата уже не читает поток
	defer func() { _ = m.Close() }()

	tr, err := navigator.NewTranscriber(ctx, sp)
	if err != nil {
		return err
	}
	if c, ok := tr.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	kb, err := inject.NewKeyboard(sp.InputBackend)
	if err != nil {
		return err
	}
	combo, err := input.ParseCombo(sp.SlideshowCombo)
	if err != nil {
		return err
	}

	var ack navigator.Notifier
	if sn := notify.NewSoundNotifier(sugar, afero.NewOsFs(), sp.NotifySoundPath, notify.NewBeepPlayer(device.Speaker{}, 0)); sn.Enabled() {
		ack = sn
	}

	nav, err := navigator.New(m, tr, kb, ack, navigator.Options{
		AmbientDuration: sp.AmbientDuration,
		SlideshowCombo:  combo,
	}, sugar)
	if err != nil {
		return err
	}

	sugar.Infow("Starting Voice Navigator", "stt", tr.Name(), "input", sp.InputBackend, "DebugMode", cfg.DebugMode)

	// Главный поток только следит за флагом и сигналами, опрос раз в секунду
	return nav.Serve(ctx, time.Second)
}
