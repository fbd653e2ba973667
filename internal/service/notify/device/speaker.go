// Package device системное звуковое устройство beep/speaker (cgo, oto).
package device

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker единственный на процесс выход звука.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }

func (Speaker) Play(s ...beep.Streamer) { speaker.Play(s...) }
