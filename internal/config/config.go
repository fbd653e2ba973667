package config

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode bool `env:"DEBUG_MODE"` // Режим дебага: development-логгер и подробные сообщения

	Speech  SpeechConfig
	Gesture GestureConfig
}

// SpeechConfig настройки голосового навигатора.
type SpeechConfig struct {
	STTService string `env:"STT_SERVICE"`  // google|openai|yandex, по умолчанию google
	Language   string `env:"STT_LANGUAGE"` // Язык распознавания, напр. en-US

	SampleRate      int           `env:"MIC_SAMPLE_RATE"`      // Частота дискретизации микрофона (Гц)
	FramesPerBuffer int           `env:"MIC_FRAMES"`           // Размер буфера чтения PortAudio в сэмплах
	AmbientDuration time.Duration `env:"MIC_AMBIENT_DURATION"` // Калибровка по фоновому шуму перед стартом
	PhraseLimit     time.Duration `env:"MIC_PHRASE_LIMIT"`     // Максимальная длина одной фразы
	PhraseThreshold time.Duration `env:"MIC_PHRASE_THRESHOLD"` // Минимальная длина речи; короче: шум
	ListenTimeout   time.Duration `env:"MIC_LISTEN_TIMEOUT"`   // Ожидание начала речи; 0 = ждать бесконечно
	PauseDuration   time.Duration `env:"MIC_PAUSE_DURATION"`   // Тишина, завершающая фразу

	SlideshowCombo  string `env:"SLIDESHOW_COMBO"`   // Комбинация запуска слайд-шоу, напр. ctrl+f5
	InputBackend    string `env:"INPUT_BACKEND"`     // robotgo|sendinput (sendinput только на Windows)
	NotifySoundPath string `env:"NOTIFY_SOUND_PATH"` // Звук подтверждения команды (mp3|wav); пусто: выключено

	Google GoogleSTTConfig
	OpenAI OpenAISTTConfig
	Yandex YandexSTTConfig
}

// GoogleSTTConfig конфигурация Google Cloud Speech-to-Text.
type GoogleSTTConfig struct {
	// Путь к ключу сервисного аккаунта; пусто: Application Default Credentials.
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// OpenAISTTConfig конфигурация распознавания через OpenAI. Ключ SDK читает сам из OPENAI_API_KEY.
type OpenAISTTConfig struct {
	Model string `env:"OPENAI_STT_MODEL"`
}

// YandexSTTConfig конфигурация потокового распознавания Yandex SpeechKit.
type YandexSTTConfig struct {
	APIKey   string `env:"YC_STT_API_KEY"`
	Endpoint string `env:"YC_STT_ENDPOINT"`
}

// GestureConfig настройки жестового контроллера.
type GestureConfig struct {
	CameraIndex int    `env:"CAMERA_INDEX"`
	WindowTitle string `env:"WINDOW_TITLE"`

	// Детектор ключевых точек руки (ONNX-модель MediaPipe hand landmark)
	ModelPath           string  `env:"LANDMARK_MODEL_PATH"`
	DetectionConfidence float64 `env:"DETECTION_CONFIDENCE"`

	// Эмпирические коэффициенты перевода координат кончика пальца в экранные.
	// Подобраны под одну пару камера/экран, поэтому вынесены в конфиг.
	CursorGain     float64 `env:"CURSOR_GAIN"`
	CursorFineTune float64 `env:"CURSOR_FINE_TUNE"`

	ScreenshotDir    string `env:"SCREENSHOT_DIR"`
	ScreenshotPrefix string `env:"SCREENSHOT_PREFIX"`
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Без .env, переменных окружения и флагов программы ведут себя ровно так, как описано константами.
func Defaults() *Config {
	return &Config{
		DebugMode: false,
		Speech: SpeechConfig{
			STTService:      "google",
			Language:        "en-US",
			SampleRate:      16000,
			FramesPerBuffer: 1024,
			AmbientDuration: time.Second,
			PhraseLimit:     3 * time.Second,
			PhraseThreshold: 300 * time.Millisecond,
			ListenTimeout:   0,
			PauseDuration:   800 * time.Millisecond,
			SlideshowCombo:  defaultSlideshowCombo(runtime.GOOS),
			InputBackend:    "robotgo",
			OpenAI: OpenAISTTConfig{
				Model: "whisper-1",
			},
			Yandex: YandexSTTConfig{
				Endpoint: "wss://stt.api.cloud.yandex.net/speech/v1/stt:streaming",
			},
		},
		Gesture: GestureConfig{
			CameraIndex:         0,
			WindowTitle:         "Hand Gesture Control",
			ModelPath:           "hand_landmark.onnx",
			DetectionConfidence: 0.7,
			CursorGain:          2.4,
			CursorFineTune:      1.1,
			ScreenshotDir:       ".",
			ScreenshotPrefix:    "my_screenshot_",
		},
	}
}

// defaultSlideshowCombo комбинация «начать слайд-шоу» для платформы.
func defaultSlideshowCombo(goos string) string {
	if goos == "darwin" {
		return "cmd+shift+enter"
	}
	return "ctrl+f5"
}

// NewConfig загружает конфигурацию приложения: дефолты → .env → окружение → флаги CLI.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	registerFlags(flag.CommandLine, cfg)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага")
	// Голос
	fs.StringVar(&cfg.Speech.STTService, "stt-service", cfg.Speech.STTService, "сервис распознавания речи: google|openai|yandex")
	fs.StringVar(&cfg.Speech.Language, "stt-language", cfg.Speech.Language, "язык распознавания, напр. en-US")
	fs.IntVar(&cfg.Speech.SampleRate, "mic-sample-rate", cfg.Speech.SampleRate, "частота дискретизации микрофона (Гц)")
	fs.DurationVar(&cfg.Speech.AmbientDuration, "mic-ambient-duration", cfg.Speech.AmbientDuration, "длительность калибровки по фоновому шуму, напр. 1s")
	fs.DurationVar(&cfg.Speech.PhraseLimit, "mic-phrase-limit", cfg.Speech.PhraseLimit, "максимальная длина фразы, напр. 3s")
	fs.DurationVar(&cfg.Speech.PhraseThreshold, "mic-phrase-threshold", cfg.Speech.PhraseThreshold, "минимальная длина речи во фразе, напр. 300ms")
	fs.DurationVar(&cfg.Speech.ListenTimeout, "mic-listen-timeout", cfg.Speech.ListenTimeout, "ожидание начала речи; 0 = бесконечно")
	fs.DurationVar(&cfg.Speech.PauseDuration, "mic-pause-duration", cfg.Speech.PauseDuration, "тишина, завершающая фразу, напр. 800ms")
	fs.StringVar(&cfg.Speech.SlideshowCombo, "slideshow-combo", cfg.Speech.SlideshowCombo, "комбинация запуска слайд-шоу, напр. ctrl+f5")
	fs.StringVar(&cfg.Speech.InputBackend, "input-backend", cfg.Speech.InputBackend, "бэкенд нажатий клавиш: robotgo|sendinput")
	fs.StringVar(&cfg.Speech.NotifySoundPath, "notify-sound-path", cfg.Speech.NotifySoundPath, "звук подтверждения команды (mp3 или wav)")
	fs.StringVar(&cfg.Speech.OpenAI.Model, "openai-stt-model", cfg.Speech.OpenAI.Model, "модель распознавания OpenAI")
	fs.StringVar(&cfg.Speech.Yandex.APIKey, "yc-stt-api-key", cfg.Speech.Yandex.APIKey, "API ключ Yandex SpeechKit STT (перекрывает ENV)")
	fs.StringVar(&cfg.Speech.Yandex.Endpoint, "yc-stt-endpoint", cfg.Speech.Yandex.Endpoint, "WebSocket endpoint Yandex STT")
	// Жесты
	fs.IntVar(&cfg.Gesture.CameraIndex, "camera-index", cfg.Gesture.CameraIndex, "индекс камеры")
	fs.StringVar(&cfg.Gesture.ModelPath, "landmark-model-path", cfg.Gesture.ModelPath, "путь к ONNX-модели ключевых точек руки")
	fs.Float64Var(&cfg.Gesture.DetectionConfidence, "detection-confidence", cfg.Gesture.DetectionConfidence, "минимальная уверенность детектора руки (0..1)")
	fs.Float64Var(&cfg.Gesture.CursorGain, "cursor-gain", cfg.Gesture.CursorGain, "усиление координат курсора")
	fs.Float64Var(&cfg.Gesture.CursorFineTune, "cursor-fine-tune", cfg.Gesture.CursorFineTune, "тонкая подстройка координат курсора")
	fs.StringVar(&cfg.Gesture.ScreenshotDir, "screenshot-dir", cfg.Gesture.ScreenshotDir, "папка для скриншотов")
	fs.StringVar(&cfg.Gesture.ScreenshotPrefix, "screenshot-prefix", cfg.Gesture.ScreenshotPrefix, "префикс имени файла скриншота")
}

// Validate проверяет значения, которые нельзя исправить молча.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(strings.TrimSpace(c.Speech.STTService)) {
	case "google", "openai", "yandex":
	default:
		errs = append(errs, fmt.Errorf("config: unknown stt service %q", c.Speech.STTService))
	}
	switch strings.ToLower(strings.TrimSpace(c.Speech.InputBackend)) {
	case "robotgo", "sendinput":
	default:
		errs = append(errs, fmt.Errorf("config: unknown input backend %q", c.Speech.InputBackend))
	}
	if c.Speech.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("config: sample rate must be positive, got %d", c.Speech.SampleRate))
	}
	if c.Speech.PhraseLimit < 0 || c.Speech.PhraseThreshold < 0 || c.Speech.ListenTimeout < 0 || c.Speech.PauseDuration < 0 || c.Speech.AmbientDuration < 0 {
		errs = append(errs, errors.New("config: microphone durations must not be negative"))
	}
	if strings.TrimSpace(c.Speech.SlideshowCombo) == "" {
		errs = append(errs, errors.New("config: slideshow combo is empty"))
	}
	if c.Gesture.DetectionConfidence < 0 || c.Gesture.DetectionConfidence > 1 {
		errs = append(errs, fmt.Errorf("config: detection confidence must be within [0,1], got %v", c.Gesture.DetectionConfidence))
	}
	return errors.Join(errs...)
}
