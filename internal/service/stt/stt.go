// Package stt описывает распознавание речи как внешнего участника: фраза на входе, текст на выходе.
package stt

import (
	"context"
	"errors"
	"fmt"

	"HandsFree/internal/service/audio"
)

// ErrUnintelligible сервис ответил, но речь в фразе не распознана.
var ErrUnintelligible = errors.New("stt: could not understand audio")

// ServiceError сервис распознавания недоступен или вернул ошибку.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s stt: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Fail оборачивает ошибку провайдера в *ServiceError.
func Fail(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Provider: provider, Err: err}
}

// Transcriber распознаёт одну фразу. Возвращает текст, ErrUnintelligible или *ServiceError.
// Реализации должны допускать параллельные вызовы.
type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, u audio.Utterance) (string, error)
}

// Outcome класс результата распознавания.
type Outcome int

const (
	OutcomeText Outcome = iota
	OutcomeUnintelligible
	OutcomeServiceError
)

// Classify относит ошибку Transcribe к одному из классов.
// Всё, что не ErrUnintelligible, считается ошибкой сервиса.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeText
	case errors.Is(err, ErrUnintelligible):
		return OutcomeUnintelligible
	default:
		return OutcomeServiceError
	}
}
