// Package navigator голосовой навигатор: микрофон → распознавание → поиск команды → нажатие клавиши.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"HandsFree/internal/service/audio"
	"HandsFree/internal/service/command"
	"HandsFree/internal/service/input"
	"HandsFree/internal/service/stt"
)

// Microphone источник фраз.
type Microphone interface {
	Calibrate(ctx context.Context, d time.Duration) error
	Listen(ctx context.Context) (audio.Utterance, error)
}

// Notifier звук подтверждения команды.
type Notifier interface {
	Play(ctx context.Context) error
}

// Options параметры навигатора.
type Options struct {
	AmbientDuration time.Duration
	SlideshowCombo  input.Combo
	Table           command.Table
}

type Navigator struct {
	mic      Microphone
	stt      stt.Transcriber
	keyboard input.Keyboard
	notifier Notifier
	opts     Options
	logger   *zap.SugaredLogger

	listening atomic.Bool
	inflight  sync.WaitGroup
}

// New создаёт навигатор в состоянии «слушает». notifier может быть nil.
func New(mic Microphone, tr stt.Transcriber, kb input.Keyboard, notifier Notifier, opts Options, logger *zap.SugaredLogger) (*Navigator, error) {
	if mic == nil || tr == nil || kb == nil {
		return nil, errors.New("navigator: microphone, transcriber and keyboard are required")
	}
	if len(opts.SlideshowCombo) == 0 {
		return nil, errors.New("navigator: slideshow combo is empty")
	}
	if opts.Table == nil {
		opts.Table = command.DefaultTable()
	}
	n := &Navigator{
		mic:      mic,
		stt:      tr,
		keyboard: kb,
		notifier: notifier,
		opts:     opts,
		logger:   logger,
	}
	n.listening.Store(true)
	return n, nil
}

// Listening false после команды выхода или Stop.
func (n *Navigator) Listening() bool { return n.listening.Load() }

// Stop останавливает цикл захвата после текущей фразы.
func (n *Navigator) Stop() { n.listening.Store(false) }

// Wait ждёт завершения обработки уже захваченных фраз.
func (n *Navigator) Wait() { n.inflight.Wait() }

// Run калибрует микрофон и слушает до выхода по команде или отмены ctx.
// Ошибки захвата и распознавания логируются, цикл продолжается.
func (n *Navigator) Run(ctx context.Context) error {
	if err := n.mic.Calibrate(ctx, n.opts.AmbientDuration); err != nil {
		return fmt.Errorf("navigator: calibrate: %w", err)
	}
	n.banner()

	for n.listening.Load() {
		u, err := n.mic.Listen(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, audio.ErrWaitTimeout) {
				continue
			}
			n.logger.Errorw("An error occurred", "error", err)
			continue
		}

		// Каждая фраза обрабатывается в своей горутине, чтобы не блокировать захват
		n.inflight.Add(1)
		go func() {
			defer n.inflight.Done()
			n.process(context.WithoutCancel(ctx), u)
		}()
	}
	return nil
}

// Serve запускает Run и раз в poll проверяет флаг прослушивания; отмена ctx тоже останавливает.
// Возвращается только после выхода из Run, поэтому микрофон можно закрывать сразу после Serve.
func (n *Navigator) Serve(ctx context.Context, poll time.Duration) error {
	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		err := n.Run(listenCtx)
		if err != nil {
			n.Stop()
		}
		done <- err
	}()

	t := time.NewTicker(poll)
	defer t.Stop()
	for n.listening.Load() {
		select {
		case <-ctx.Done():
			n.logger.Infow("Stopping Voice Navigator...")
			n.Stop()
		case <-t.C:
		}
	}

	// Listen выходит на ближайшей проверке контекста
	cancel()
	return <-done
}

func (n *Navigator) banner() {
	n.logger.Infow("Voice Navigator is ready!", "stt", n.stt.Name())
	n.logger.Infow("Available commands",
		"triggers", n.opts.Table.Triggers(),
		"next", "right arrow",
		"previous", "left arrow",
		"slideshow", n.opts.SlideshowCombo.String(),
		"exit", "escape and quit",
	)
}

// process распознаёт одну фразу и выполняет первую совпавшую команду.
func (n *Navigator) process(ctx context.Context, u audio.Utterance) {
	text, err := n.stt.Transcribe(ctx, u)
	switch stt.Classify(err) {
	case stt.OutcomeUnintelligible:
		n.logger.Infow("Could not understand audio")
		return
	case stt.OutcomeServiceError:
		n.logger.Errorw("Could not request results", "stt", n.stt.Name(), "error", err)
		return
	}

	transcript := strings.ToLower(text)
	n.logger.Infow("Recognized", "text", transcript)

	entry, ok := n.opts.Table.Match(transcript)
	if !ok {
		return
	}
	n.dispatch(ctx, entry.Action)
}

// dispatch нажимает клавиши команды. Выход отключает прослушивание даже при сбое нажатия.
func (n *Navigator) dispatch(ctx context.Context, a command.Action) {
	var (
		combo input.Combo
		msg   string
	)
	switch a {
	case command.ActionMoveRight:
		combo, msg = input.Combo{input.KeyRight}, "Right arrow key pressed!"
	case command.ActionMoveLeft:
		combo, msg = input.Combo{input.KeyLeft}, "Left arrow key pressed!"
	case command.ActionSlideshow:
		combo = n.opts.SlideshowCombo
		msg = comboLabel(combo) + " pressed!"
	case command.ActionQuit:
		combo, msg = input.Combo{input.KeyEscape}, "Escape key pressed!"
		defer n.Stop()
	default:
		return
	}

	if err := n.keyboard.Press(combo); err != nil {
		n.logger.Errorw("Failed to press keys", "action", a.String(), "combo", combo.String(), "error", err)
		return
	}
	n.logger.Infow(msg, "combo", combo.String())

	if n.notifier != nil {
		_ = n.notifier.Play(ctx)
	}
}

// comboLabel ctrl+f5 → Ctrl+F5.
func comboLabel(c input.Combo) string {
	parts := make([]string, len(c))
	for i, k := range c {
		if k == "" {
			continue
		}
		parts[i] = strings.ToUpper(k[:1]) + k[1:]
	}
	return strings.Join(parts, "+")
}
