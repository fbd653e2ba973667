// Package whisper распознаёт фразы через OpenAI Audio Transcriptions.
package whisper

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"

	"HandsFree/internal/config"
	"HandsFree/internal/service/audio"
	"HandsFree/internal/service/stt"
)

const providerName = "openai"

var _ stt.Transcriber = (*Client)(nil)

type Client struct {
	client   *openai.Client
	model    string
	language string
}

// New клиент поверх готового openai.Client (ключ берётся SDK из OPENAI_API_KEY).
func New(client *openai.Client, cfg config.OpenAISTTConfig, language string) *Client {
	model := cfg.Model
	if model == "" {
		model = string(openai.AudioModelWhisper1)
	}
	return &Client{client: client, model: model, language: isoLanguage(language)}
}

func (c *Client) Name() string { return providerName }

func (c *Client) Transcribe(ctx context.Context, u audio.Utterance) (string, error) {
	data, err := u.WAV()
	if err != nil {
		return "", fmt.Errorf("openai stt: %w", err)
	}

	params := openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(data), "utterance.wav", "audio/wav"),
		Model: openai.AudioModel(c.model),
	}
	if c.language != "" {
		params.Language = openai.String(c.language)
	}

	resp, err := c.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", stt.Fail(providerName, err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", stt.ErrUnintelligible
	}
	return text, nil
}

// isoLanguage en-US → en: API принимает ISO-639-1.
func isoLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
