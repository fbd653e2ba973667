// Package audio захватывает фразы с микрофона и готовит их для распознавания.
package audio

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero/mem"
)

// Utterance одна записанная фраза: mono PCM16.
type Utterance struct {
	Samples    []int16
	SampleRate int
}

// Duration длительность фразы.
func (u Utterance) Duration() time.Duration {
	if u.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(u.Samples)) * time.Second / time.Duration(u.SampleRate)
}

// PCM16LE сэмплы little-endian, как их ожидают LINEAR16-сервисы.
func (u Utterance) PCM16LE() []byte {
	b := make([]byte, 0, 2*len(u.Samples))
	for _, s := range u.Samples {
		b = append(b, byte(s), byte(s>>8))
	}
	return b
}

// EncodeWAV пишет фразу в w как WAV (16-bit PCM, mono).
func EncodeWAV(w io.WriteSeeker, u Utterance) error {
	enc := wav.NewEncoder(w, u.SampleRate, 16, 1, 1)
	data := make([]int, len(u.Samples))
	for i, s := range u.Samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: u.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}
	return nil
}

// WAV кодирует фразу в память и возвращает содержимое файла.
func (u Utterance) WAV() ([]byte, error) {
	f := mem.NewFileHandle(mem.CreateFile("utterance.wav"))
	defer f.Close()
	if err := EncodeWAV(f, u); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}
