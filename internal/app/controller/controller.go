// Package controller цикл жестового управления: кадр → рука → жест → действие мыши.
package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"HandsFree/internal/service/gesture"
	"HandsFree/internal/service/input"
)

// Frame кадр, который нужно освободить после обработки.
type Frame interface {
	Close() error
}

type Source[F Frame] interface {
	Read() (F, error)
}

type Detector[F Frame] interface {
	Detect(f F) ([]gesture.Landmarks, error)
}

// View разметка и показ кадра.
type View[F Frame] interface {
	DrawHand(f F, l gesture.Landmarks)
	DrawLabel(f F, g gesture.Gesture)
	Show(f F)
	QuitRequested() bool
}

type Screenshotter interface {
	Save() (string, error)
}

type Controller[F Frame] struct {
	source   Source[F]
	detector Detector[F]
	view     View[F]
	pointer  input.Pointer
	shots    Screenshotter
	mapper   gesture.CursorMapper
	logger   *zap.SugaredLogger
}

// Options коэффициенты перевода координат курсора.
type Options struct {
	CursorGain     float64
	CursorFineTune float64
}

func New[F Frame](source Source[F], detector Detector[F], view View[F], pointer input.Pointer, shots Screenshotter, opts Options, logger *zap.SugaredLogger) *Controller[F] {
	w, h := pointer.ScreenSize()
	return &Controller[F]{
		source:   source,
		detector: detector,
		view:     view,
		pointer:  pointer,
		shots:    shots,
		mapper: gesture.CursorMapper{
			ScreenWidth:  w,
			ScreenHeight: h,
			Gain:         opts.CursorGain,
			FineTune:     opts.CursorFineTune,
		},
		logger: logger,
	}
}

// Run обрабатывает кадры до нажатия «q», отмены ctx или ошибки чтения кадра.
func (c *Controller[F]) Run(ctx context.Context) error {
	c.logger.Infow("Gesture control started", "screenWidth", c.mapper.ScreenWidth, "screenHeight", c.mapper.ScreenHeight)
	for {
		if err := context.Cause(ctx); err != nil {
			c.logger.Infow("Gesture control stopped", "reason", err)
			return nil
		}
		quit, err := c.step()
		if err != nil {
			return err
		}
		if quit {
			c.logger.Infow("Gesture control stopped", "reason", "quit key")
			return nil
		}
	}
}

// step один кадр. Сбой чтения кадра прерывает цикл; сбои действий только логируются.
func (c *Controller[F]) step() (bool, error) {
	f, err := c.source.Read()
	if err != nil {
		return false, fmt.Errorf("controller: read frame: %w", err)
	}
	defer f.Close()

	hands, err := c.detector.Detect(f)
	if err != nil {
		c.logger.Warnw("Hand detection failed", "error", err)
	}
	if hand := gesture.FirstHand(hands); hand.Complete() {
		c.view.DrawHand(f, hand)
		d := gesture.Classify(hand)
		// подпись только если действие выполнено
		if c.act(d) {
			c.view.DrawLabel(f, d.Gesture)
		}
	}

	c.view.Show(f)
	return c.view.QuitRequested(), nil
}

func (c *Controller[F]) act(d gesture.Decision) bool {
	var err error
	switch d.Gesture {
	case gesture.CursorMove:
		x, y := c.mapper.Map(d.Fingertip)
		err = c.pointer.MoveTo(x, y)
	case gesture.LeftClick:
		err = c.pointer.Click(input.ButtonLeft, 1)
	case gesture.RightClick:
		err = c.pointer.Click(input.ButtonRight, 1)
	case gesture.DoubleClick:
		err = c.pointer.Click(input.ButtonLeft, 2)
	case gesture.Screenshot:
		var path string
		path, err = c.shots.Save()
		if err == nil {
			c.logger.Infow("Screenshot saved", "path", path)
		}
	default:
		return false
	}
	if err != nil {
		c.logger.Errorw("Gesture action failed", "gesture", d.Gesture.String(), "error", err)
		return false
	}
	if d.Gesture != gesture.CursorMove {
		c.logger.Debugw("Gesture", "gesture", d.Gesture.String(), "features", d.Features)
	}
	return true
}
