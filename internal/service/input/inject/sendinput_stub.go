//go:build !windows

package inject

import (
	"errors"

	"HandsFree/internal/service/input"
)

// SendInput на не-Windows платформах недоступен.
type SendInput struct{}

func NewSendInput() (*SendInput, error) {
	return nil, errors.New("inject: sendinput backend is only available on Windows")
}

func (s *SendInput) Press(input.Combo) error {
	return errors.New("inject: sendinput backend is only available on Windows")
}
