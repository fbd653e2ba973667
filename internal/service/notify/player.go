package notify

import (
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// Частота общего микшера; файлы с другой частотой пересэмплируются.
const playbackRate beep.SampleRate = 44100

// Player воспроизводит аудио потоком в зависимости от формата.
type Player interface {
	Play(format string, r io.ReadCloser) error
}

// Output звуковое устройство с общим микшером (beep/speaker).
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
}

// BeepPlayer реализует Player поверх faiface/beep, поддерживает mp3 и wav.
// Устройство инициализируется один раз, параллельные Play смешиваются в общем микшере.
type BeepPlayer struct {
	volumeDB float64
	rate     beep.SampleRate
	out      Output

	once    sync.Once
	initErr error
}

// NewBeepPlayer громкость в dB, отрицательные значения тише.
func NewBeepPlayer(out Output, db float64) *BeepPlayer {
	return &BeepPlayer{volumeDB: db, rate: playbackRate, out: out}
}

func (p *BeepPlayer) Play(format string, r io.ReadCloser) error {
	var (
		streamer beep.StreamSeekCloser
		f        beep.Format
		err      error
	)
	switch strings.ToLower(format) {
	case "wav":
		streamer, f, err = wav.Decode(r)
	case "mp3":
		streamer, f, err = mp3.Decode(r)
	default:
		return errors.New("notify: unsupported sound format; use mp3 or wav")
	}
	if err != nil {
		return err
	}
	defer streamer.Close()

	p.once.Do(func() {
		p.initErr = p.out.Init(p.rate, p.rate.N(time.Second/10))
	})
	if p.initErr != nil {
		return p.initErr
	}

	var s beep.Streamer = &effects.Volume{Streamer: streamer, Base: 2, Volume: p.volumeDB}
	if f.SampleRate != p.rate {
		s = beep.Resample(4, f.SampleRate, p.rate, s)
	}
	done := make(chan struct{})
	p.out.Play(beep.Seq(s, beep.Callback(func() { close(done) })))
	<-done
	return nil
}
