package inject

import (
	"fmt"
	"strings"

	"HandsFree/internal/service/input"
)

// NewKeyboard выбирает бэкенд нажатий клавиш по имени из конфига.
func NewKeyboard(backend string) (input.Keyboard, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "robotgo":
		return NewRobot(), nil
	case "sendinput":
		k, err := NewSendInput()
		if err != nil {
			return nil, err
		}
		return k, nil
	default:
		return nil, fmt.Errorf("inject: unknown backend %q", backend)
	}
}
