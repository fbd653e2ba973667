package navigator

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"

	"HandsFree/internal/config"
	"HandsFree/internal/service/stt"
	"HandsFree/internal/service/stt/google"
	"HandsFree/internal/service/stt/whisper"
	"HandsFree/internal/service/stt/yandex"
)

// NewTranscriber создаёт клиента распознавания по STT_SERVICE.
// Результат может реализовывать io.Closer.
func NewTranscriber(ctx context.Context, cfg config.SpeechConfig) (stt.Transcriber, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.STTService)) {
	case "", "google":
		c, err := google.New(ctx, cfg.Google, cfg.Language)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		client := openai.NewClient()
		return whisper.New(&client, cfg.OpenAI, cfg.Language), nil
	case "yandex":
		c, err := yandex.New(cfg.Yandex, cfg.Language)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("navigator: unknown stt service %q", cfg.STTService)
	}
}
