package stt

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	netErr := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{name: "nil", err: nil, want: OutcomeText},
		{name: "unintelligible", err: ErrUnintelligible, want: OutcomeUnintelligible},
		{name: "wrapped unintelligible", err: fmt.Errorf("google: %w", ErrUnintelligible), want: OutcomeUnintelligible},
		{name: "service error", err: Fail("openai", netErr), want: OutcomeServiceError},
		{name: "plain error", err: context.DeadlineExceeded, want: OutcomeServiceError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServiceError(t *testing.T) {
	cause := errors.New("503 unavailable")
	err := Fail("yandex", cause)

	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if se.Provider != "yandex" {
		t.Errorf("Provider = %q", se.Provider)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause is not unwrapped")
	}
	if err.Error() != "yandex stt: 503 unavailable" {
		t.Errorf("Error() = %q", err.Error())
	}
	if Fail("x", nil) != nil {
		t.Errorf("Fail(nil) should be nil")
	}
}
