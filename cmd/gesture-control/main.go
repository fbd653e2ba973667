// Управление мышью жестами руки перед веб-камерой. Выход по клавише «q» в окне предпросмотра.
package main

import (
	"context"
	"log"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"HandsFree/internal/app/controller"
	"HandsFree/internal/config"
	"HandsFree/internal/logging"
	"HandsFree/internal/service/input"
	"HandsFree/internal/service/input/inject"
	"HandsFree/internal/service/vision"
)

// Окна OpenCV должны жить в одном системном потоке
func init() { runtime.LockOSThread() }

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	if err := run(cfg.Gesture, sugar); err != nil {
		sugar.Errorw("Gesture control failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.GestureConfig, sugar *zap.SugaredLogger) error {
	cam, err := vision.OpenCamera(cfg.CameraIndex)
	if err != nil {
		return err
	}
	defer func() { _ = cam.Close() }()

	det, err := vision.NewDetector(cfg.ModelPath, cfg.DetectionConfidence)
	if err != nil {
		return err
	}
	defer func() { _ = det.Close() }()

	win := vision.NewWindow(cfg.WindowTitle)
	defer func() { _ = win.Close() }()

	shots := input.NewScreenshotter(afero.NewOsFs(), cfg.ScreenshotDir, cfg.ScreenshotPrefix)
	ctrl := controller.New[*vision.Frame](cam, det, win, inject.NewRobot(), shots, controller.Options{
		CursorGain:     cfg.CursorGain,
		CursorFineTune: cfg.CursorFineTune,
	}, sugar)

	// Обработчика прерывания нет: выход по «q» или по сбою камеры
	return ctrl.Run(context.Background())
}
