// Package mic захват фраз с микрофона через PortAudio (cgo).
package mic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/zap"

	"HandsFree/internal/service/audio"
)

// Config параметры захвата.
type Config struct {
	SampleRate      int
	FramesPerBuffer int
	PauseDuration   time.Duration
	PhraseLimit     time.Duration
	PhraseThreshold time.Duration
	ListenTimeout   time.Duration
}

// Microphone входной поток PortAudio по умолчанию: mono, int16.
// Не потокобезопасен: Listen вызывается из одного цикла захвата.
type Microphone struct {
	cfg    Config
	stream *portaudio.Stream
	buf    []int16
	seg    *audio.Segmenter
	logger *zap.SugaredLogger
}

// Open инициализирует PortAudio и запускает входной поток.
// Требует библиотеку PortAudio в системе.
func Open(cfg Config, logger *zap.SugaredLogger) (*Microphone, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	if cfg.FramesPerBuffer < 256 {
		cfg.FramesPerBuffer = 256
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	m := &Microphone{
		cfg:    cfg,
		buf:    make([]int16, cfg.FramesPerBuffer),
		logger: logger,
		seg: audio.NewSegmenter(audio.SegmenterConfig{
			SampleRate:      cfg.SampleRate,
			PauseDuration:   cfg.PauseDuration,
			PhraseLimit:     cfg.PhraseLimit,
			PhraseThreshold: cfg.PhraseThreshold,
			ListenTimeout:   cfg.ListenTimeout,
		}),
	}
	s, err := portaudio.OpenDefaultStream(1, 0, float64(cfg.SampleRate), len(m.buf), &m.buf)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	m.stream = s
	if err := s.Start(); err != nil {
		_ = s.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("start stream: %w", err)
	}
	logger.Debugw("Microphone opened", "sampleRate", cfg.SampleRate, "frames", cfg.FramesPerBuffer)
	return m, nil
}

// Calibrate слушает фон в течение d и подстраивает порог речи.
func (m *Microphone) Calibrate(ctx context.Context, d time.Duration) error {
	need := int(d.Seconds() * float64(m.cfg.SampleRate))
	for read := 0; read < need; read += len(m.buf) {
		if err := context.Cause(ctx); err != nil {
			return err
		}
		if err := m.stream.Read(); err != nil {
			return fmt.Errorf("read mic: %w", err)
		}
		m.seg.Calibrate(m.buf)
	}
	m.logger.Debugw("Ambient noise calibrated", "threshold", m.seg.Threshold())
	return nil
}

// Listen блокируется до конца очередной фразы, отмены ctx или audio.ErrWaitTimeout.
func (m *Microphone) Listen(ctx context.Context) (audio.Utterance, error) {
	for {
		if err := context.Cause(ctx); err != nil {
			return audio.Utterance{}, err
		}
		if err := m.stream.Read(); err != nil {
			if errors.Is(err, portaudio.InputOverflowed) {
				continue
			}
			return audio.Utterance{}, fmt.Errorf("read mic: %w", err)
		}
		switch m.seg.Feed(m.buf) {
		case audio.Complete:
			return m.seg.Take(), nil
		case audio.WaitTimeout:
			return audio.Utterance{}, audio.ErrWaitTimeout
		}
	}
}

// Close останавливает поток и освобождает PortAudio.
func (m *Microphone) Close() error {
	var errs []error
	if m.stream != nil {
		errs = append(errs, m.stream.Stop(), m.stream.Close())
	}
	errs = append(errs, portaudio.Terminate())
	return errors.Join(errs...)
}
