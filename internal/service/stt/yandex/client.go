// Package yandex распознаёт фразы через потоковый WebSocket API Yandex SpeechKit.
package yandex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"HandsFree/internal/config"
	"HandsFree/internal/service/audio"
	"HandsFree/internal/service/stt"
)

const (
	providerName    = "yandex"
	defaultEndpoint = "wss://stt.api.cloud.yandex.net/speech/v1/stt:streaming"
	// Сигнал конца аудио, после которого сервер отдаёт финальный результат.
	endOfAudio = `{"eof":true}`
	// Размер бинарного фрейма: 50 мс при 16 кГц.
	chunkSamples = 800
)

var _ stt.Transcriber = (*Client)(nil)

// Result единица результата распознавания.
type Result struct {
	Text  string
	Final bool
}

// Client открывает отдельное WebSocket-соединение на каждую фразу,
// поэтому безопасен для параллельных вызовов Transcribe.
type Client struct {
	endpoint string
	apiKey   string
	language string
	dialer   websocket.Dialer
}

// New создаёт клиент, без установления соединения.
func New(cfg config.YandexSTTConfig, language string) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("yandex stt: пустой API key (ожидается YC_STT_API_KEY)")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if language == "" {
		language = "en-US"
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		language: language,
		dialer: websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 15 * time.Second,
		},
	}, nil
}

func (c *Client) Name() string { return providerName }

// Transcribe отправляет фразу целиком и ждёт, пока сервер закроет поток.
// Финальные результаты склеиваются; если финальных нет, берётся последний частичный.
func (c *Client) Transcribe(ctx context.Context, u audio.Utterance) (string, error) {
	s, err := c.open(ctx, u.SampleRate)
	if err != nil {
		return "", stt.Fail(providerName, err)
	}
	defer s.close()

	for i := 0; i < len(u.Samples); i += chunkSamples {
		end := min(i+chunkSamples, len(u.Samples))
		if err := s.writePCM16(u.Samples[i:end]); err != nil {
			return "", stt.Fail(providerName, err)
		}
	}
	if err := s.write(websocket.TextMessage, []byte(endOfAudio)); err != nil {
		return "", stt.Fail(providerName, err)
	}

	var finals []string
	var lastPartial string
	for r := range s.results {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		if r.Final {
			finals = append(finals, text)
		} else {
			lastPartial = text
		}
	}
	if err := context.Cause(ctx); err != nil {
		return "", stt.Fail(providerName, err)
	}
	switch {
	case len(finals) > 0:
		return strings.Join(finals, " "), nil
	case lastPartial != "":
		return lastPartial, nil
	default:
		return "", stt.ErrUnintelligible
	}
}

// stream одно соединение с сервером.
type stream struct {
	conn    *websocket.Conn
	mu      sync.Mutex
	results chan Result
	done    chan struct{}
	once    sync.Once
}

func (c *Client) open(ctx context.Context, sampleRate int) (*stream, error) {
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	// Параметры, которые ожидает WebSocket API SpeechKit (v1)
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("неверный endpoint: %w", err)
	}
	q := u.Query()
	q.Set("lang", c.language)
	q.Set("sampleRateHertz", fmt.Sprint(sampleRate))
	if q.Get("topic") == "" {
		q.Set("topic", "general")
	}
	if q.Get("format") == "" {
		q.Set("format", "lpcm")
	}
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("Authorization", "Api-Key "+c.apiKey)

	conn, resp, err := c.dialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("не удалось подключиться к %s (HTTP %d): %w", u.Host, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("не удалось подключиться к %s: %w", u.Host, err)
	}

	start := map[string]any{
		"lang":            c.language,
		"format":          "lpcm",
		"sampleRateHertz": sampleRate,
		"topic":           "general",
	}
	b, _ := json.Marshal(start)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("не удалось отправить стартовое сообщение: %w", err)
	}

	s := &stream{conn: conn, results: make(chan Result, 32), done: make(chan struct{})}
	go s.readLoop()
	// Отмена контекста обрывает соединение, readLoop при этом завершается
	go func() {
		select {
		case <-ctx.Done():
			s.close()
		case <-s.done:
		}
	}()
	return s, nil
}

// readLoop читает сообщения сервера до закрытия соединения.
func (s *stream) readLoop() {
	defer close(s.results)
	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if res, ok := parseServerMessage(data); ok {
			s.results <- res
		}
	}
}

func (s *stream) writePCM16(samples []int16) error {
	return s.write(websocket.BinaryMessage, audio.Utterance{Samples: samples}.PCM16LE())
}

func (s *stream) write(msgType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(msgType, data)
}

func (s *stream) close() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "eof"), time.Now().Add(time.Second))
		s.mu.Unlock()
		_ = s.conn.Close()
	})
}

// parseServerMessage вытаскивает текст и признак финальности из ответа сервера.
// Поддержано несколько форм ответа.
func parseServerMessage(data []byte) (Result, bool) {
	// {"result":"text","final":true}
	var s1 struct {
		Result string `json:"result"`
		Final  bool   `json:"final"`
	}
	if json.Unmarshal(data, &s1) == nil && (s1.Result != "" || s1.Final) {
		return Result{Text: s1.Result, Final: s1.Final}, true
	}

	// {"alternatives":[{"text":"..."}],"final":true}
	var s2 struct {
		Alternatives []struct {
			Text string `json:"text"`
		} `json:"alternatives"`
		Final bool `json:"final"`
	}
	if json.Unmarshal(data, &s2) == nil && len(s2.Alternatives) > 0 {
		return Result{Text: s2.Alternatives[0].Text, Final: s2.Final}, true
	}

	// {"partial":"..."}
	var s3 struct {
		Partial string `json:"partial"`
	}
	if json.Unmarshal(data, &s3) == nil && s3.Partial != "" {
		return Result{Text: s3.Partial}, true
	}

	// {"text":"...","is_final":true}
	var s4 struct {
		Text    string `json:"text"`
		IsFinal bool   `json:"is_final"`
		Final   bool   `json:"final"`
	}
	if json.Unmarshal(data, &s4) == nil && (s4.Text != "" || s4.IsFinal || s4.Final) {
		return Result{Text: s4.Text, Final: s4.IsFinal || s4.Final}, true
	}

	return Result{}, false
}
