package audio

import (
	"errors"
	"math"
	"time"
)

// ErrWaitTimeout речь не началась за отведённое время. Штатная ситуация, ожидание просто повторяют.
var ErrWaitTimeout = errors.New("audio: listening timed out while waiting for phrase to start")

// Параметры энергетического детектора речи.
const (
	defaultEnergyThreshold = 300.0 // RMS для int16 до калибровки
	dynamicEnergyRatio     = 1.5   // во сколько раз речь громче фона
	dynamicDamping         = 0.15  // затухание старого порога за секунду
	prerollDuration        = 500 * time.Millisecond
)

// SegmenterConfig параметры разбиения потока на фразы.
type SegmenterConfig struct {
	SampleRate    int
	PauseDuration time.Duration // тишина, после которой фраза считается законченной
	PhraseLimit   time.Duration // 0: без ограничения; считается от начала речи, без преролла
	ListenTimeout time.Duration // 0: ждать начала речи бесконечно

	// Минимальная длина речи без завершающей паузы; более короткие всплески отбрасываются.
	PhraseThreshold time.Duration
}

// Segmenter по энергии буферов находит начало и конец фразы.
// Время считается по числу сэмплов, а не по часам.
type Segmenter struct {
	cfg       SegmenterConfig
	threshold float64

	inPhrase    bool
	waited      int // сэмплов тишины до начала фразы
	spoken      int // сэмплов от начала речи, без преролла
	silence     int // сэмплов тишины внутри фразы
	phrase      []int16
	preroll     [][]int16
	prerollSize int
}

// NewSegmenter создаёт детектор с порогом по умолчанию.
func NewSegmenter(cfg SegmenterConfig) *Segmenter {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	return &Segmenter{cfg: cfg, threshold: defaultEnergyThreshold}
}

// Threshold текущий порог энергии.
func (s *Segmenter) Threshold() float64 { return s.threshold }

// Calibrate подстраивает порог под фоновый шум по одному буферу.
func (s *Segmenter) Calibrate(frame []int16) {
	if len(frame) == 0 {
		return
	}
	seconds := float64(len(frame)) / float64(s.cfg.SampleRate)
	damping := math.Pow(dynamicDamping, seconds)
	target := RMS(frame) * dynamicEnergyRatio
	s.threshold = s.threshold*damping + target*(1-damping)
}

// Result исход обработки одного буфера.
type Result int

const (
	Waiting     Result = iota // речь ещё не началась
	Speaking                  // фраза записывается
	Complete                  // фраза закончена, её можно забрать через Take
	WaitTimeout               // не дождались начала речи
)

// Feed обрабатывает очередной буфер.
func (s *Segmenter) Feed(frame []int16) Result {
	loud := RMS(frame) > s.threshold

	if !s.inPhrase {
		if !loud {
			s.keepPreroll(frame)
			s.waited += len(frame)
			if s.cfg.ListenTimeout > 0 && s.samples(s.waited) > s.cfg.ListenTimeout {
				s.reset()
				return WaitTimeout
			}
			return Waiting
		}
		s.inPhrase = true
		for _, p := range s.preroll {
			s.phrase = append(s.phrase, p...)
		}
		s.preroll = nil
		s.prerollSize = 0
	}

	s.phrase = append(s.phrase, frame...)
	s.spoken += len(frame)
	if loud {
		s.silence = 0
	} else {
		s.silence += len(frame)
	}

	if s.silence > 0 && s.samples(s.silence) >= s.cfg.PauseDuration {
		if s.samples(s.spoken-s.silence) < s.cfg.PhraseThreshold {
			s.discard()
			return Waiting
		}
		return Complete
	}
	if s.cfg.PhraseLimit > 0 && s.samples(s.spoken) >= s.cfg.PhraseLimit {
		return Complete
	}
	return Speaking
}

// discard выбрасывает слишком короткий всплеск и снова ждёт речь.
// Время всплеска засчитывается в ожидание.
func (s *Segmenter) discard() {
	waited := s.waited + s.spoken
	s.reset()
	s.waited = waited
}

// Take забирает записанную фразу и сбрасывает состояние.
func (s *Segmenter) Take() Utterance {
	u := Utterance{Samples: s.phrase, SampleRate: s.cfg.SampleRate}
	s.reset()
	return u
}

func (s *Segmenter) reset() {
	s.inPhrase = false
	s.waited = 0
	s.spoken = 0
	s.silence = 0
	s.phrase = nil
	s.preroll = nil
	s.prerollSize = 0
}

func (s *Segmenter) keepPreroll(frame []int16) {
	cp := make([]int16, len(frame))
	copy(cp, frame)
	s.preroll = append(s.preroll, cp)
	s.prerollSize += len(cp)
	limit := int(prerollDuration.Seconds() * float64(s.cfg.SampleRate))
	for len(s.preroll) > 1 && s.prerollSize-len(s.preroll[0]) >= limit {
		s.prerollSize -= len(s.preroll[0])
		s.preroll = s.preroll[1:]
	}
}

func (s *Segmenter) samples(n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(s.cfg.SampleRate)
}

// RMS среднеквадратичная амплитуда буфера.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum / float64(len(samples)))
}
