// Package google распознаёт фразы через Google Cloud Speech-to-Text.
package google

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"HandsFree/internal/config"
	"HandsFree/internal/service/audio"
	"HandsFree/internal/service/stt"
)

const providerName = "google"

var _ stt.Transcriber = (*Client)(nil)

// Client синхронное распознавание коротких фраз (LINEAR16).
type Client struct {
	speech   *speech.Client
	language string
}

// New создаёт клиента SDK. Пустой CredentialsPath: Application Default Credentials.
func New(ctx context.Context, cfg config.GoogleSTTConfig, language string) (*Client, error) {
	var opts []option.ClientOption
	if cp := strings.TrimSpace(cfg.CredentialsPath); cp != "" {
		opts = append(opts, option.WithCredentialsFile(cp))
	}
	sc, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, stt.Fail(providerName, err)
	}
	if language == "" {
		language = "en-US"
	}
	return &Client{speech: sc, language: language}, nil
}

func (c *Client) Name() string { return providerName }

// Transcribe возвращает лучшую гипотезу каждого результата, склеенную через пробел.
func (c *Client) Transcribe(ctx context.Context, u audio.Utterance) (string, error) {
	resp, err := c.speech.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: int32(u.SampleRate),
			LanguageCode:    c.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: u.PCM16LE()},
		},
	})
	if err != nil {
		return "", stt.Fail(providerName, err)
	}
	return bestTranscript(resp)
}

func bestTranscript(resp *speechpb.RecognizeResponse) (string, error) {
	parts := make([]string, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return "", stt.ErrUnintelligible
	}
	return strings.Join(parts, " "), nil
}

// Close закрывает gRPC-соединение.
func (c *Client) Close() error { return c.speech.Close() }
