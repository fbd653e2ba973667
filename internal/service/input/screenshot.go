package input

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math/rand/v2"
	"path/filepath"

	"github.com/kbinani/screenshot"
	"github.com/spf13/afero"
)

// Screenshotter снимает весь экран и сохраняет PNG с псевдослучайным номером в имени.
// Номера не уникальны: совпадение перезаписывает прежний файл.
type Screenshotter struct {
	fs     afero.Fs
	dir    string
	prefix string

	capture func() (image.Image, error)
	label   func() int
}

// NewScreenshotter сохраняет снимки в dir на файловой системе fs.
func NewScreenshotter(fs afero.Fs, dir, prefix string) *Screenshotter {
	return &Screenshotter{
		fs:      fs,
		dir:     dir,
		prefix:  prefix,
		capture: captureDesktop,
		label:   func() int { return rand.IntN(1000) + 1 },
	}
}

// Save снимает экран и возвращает путь к сохранённому файлу.
func (s *Screenshotter) Save() (string, error) {
	img, err := s.capture()
	if err != nil {
		return "", fmt.Errorf("screenshot: capture: %w", err)
	}
	if s.dir != "" {
		if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s%d.png", s.prefix, s.label()))
	f, err := s.fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// captureDesktop склеивает все активные мониторы в один кадр.
func captureDesktop() (image.Image, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, errors.New("no active displays")
	}

	// Вычисляем объединённые границы всех мониторов
	union := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, union.Dx(), union.Dy()))
	for i := range n {
		b := screenshot.GetDisplayBounds(i)
		img, err := screenshot.CaptureRect(b)
		if err != nil {
			return nil, fmt.Errorf("display %d: %w", i, err)
		}
		dst := image.Pt(b.Min.X-union.Min.X, b.Min.Y-union.Min.Y)
		draw.Draw(canvas, image.Rectangle{Min: dst, Max: dst.Add(b.Size())}, img, image.Point{}, draw.Src)
	}
	return canvas, nil
}
