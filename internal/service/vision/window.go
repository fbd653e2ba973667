package vision

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"HandsFree/internal/service/gesture"
)

// Цвета скелета руки, не зависят от цветов подписей.
var (
	handPointColor = color.RGBA{R: 255, A: 255}
	handLineColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Window окно предпросмотра с разметкой руки и подписью жеста.
type Window struct {
	w *gocv.Window
}

func NewWindow(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

// DrawHand рисует точки и связи руки поверх кадра.
func (w *Window) DrawHand(f *Frame, l gesture.Landmarks) {
	if !l.Complete() {
		return
	}
	size := f.BGR.Size()
	if len(size) < 2 {
		return
	}
	rows, cols := size[0], size[1]
	px := func(p gesture.Point) image.Point {
		return image.Pt(int(p.X*float64(cols)), int(p.Y*float64(rows)))
	}
	for _, c := range gesture.Connections {
		gocv.Line(&f.BGR, px(l[c[0]]), px(l[c[1]]), handLineColor, 2)
	}
	for _, p := range l {
		gocv.Circle(&f.BGR, px(p), 4, handPointColor, -1)
	}
}

// DrawLabel подписывает сработавший жест в левом верхнем углу.
func (w *Window) DrawLabel(f *Frame, g gesture.Gesture) {
	if g.Label() == "" {
		return
	}
	gocv.PutText(&f.BGR, g.Label(), image.Pt(50, 50), gocv.FontHersheySimplex, 1, g.Color(), 2)
}

// Show выводит кадр и обрабатывает события окна.
func (w *Window) Show(f *Frame) {
	w.w.IMShow(f.BGR)
}

// QuitRequested true, если в окне нажата клавиша «q».
func (w *Window) QuitRequested() bool {
	return w.w.WaitKey(1) == 'q'
}

func (w *Window) Close() error { return w.w.Close() }
