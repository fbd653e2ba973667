// Package vision захват кадров с веб-камеры, детектор ключевых точек руки и окно предпросмотра на gocv.
package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// Frame кадр камеры: зеркальный BGR для показа и RGB-копия для детектора.
type Frame struct {
	BGR gocv.Mat
	RGB gocv.Mat
}

func (f *Frame) Close() error {
	return errors.Join(f.BGR.Close(), f.RGB.Close())
}

// Camera источник кадров.
type Camera struct {
	cap *gocv.VideoCapture
}

func OpenCamera(index int) (*Camera, error) {
	c, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("vision: open camera %d: %w", index, err)
	}
	if !c.IsOpened() {
		_ = c.Close()
		return nil, fmt.Errorf("vision: camera %d is not available", index)
	}
	return &Camera{cap: c}, nil
}

// Read читает кадр и отражает его по горизонтали, как зеркало.
func (c *Camera) Read() (*Frame, error) {
	img := gocv.NewMat()
	if ok := c.cap.Read(&img); !ok || img.Empty() {
		_ = img.Close()
		return nil, errors.New("vision: failed to read frame from camera")
	}
	gocv.Flip(img, &img, 1)

	rgb := gocv.NewMat()
	gocv.CvtColor(img, &rgb, gocv.ColorBGRToRGB)
	return &Frame{BGR: img, RGB: rgb}, nil
}

func (c *Camera) Close() error { return c.cap.Close() }
