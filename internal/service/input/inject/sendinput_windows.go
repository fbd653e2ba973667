//go:build windows

package inject

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/lxn/win"

	"HandsFree/internal/service/input"
)

var _ input.Keyboard = (*SendInput)(nil)

// SendInput нажимает клавиши напрямую через WinAPI SendInput, без robotgo.
type SendInput struct{}

// NewSendInput создаёт клавиатуру на WinAPI.
func NewSendInput() (*SendInput, error) { return &SendInput{}, nil }

var virtualKeys = map[string]uint16{
	"right": win.VK_RIGHT,
	"left":  win.VK_LEFT,
	"up":    win.VK_UP,
	"down":  win.VK_DOWN,
	"esc":   win.VK_ESCAPE,
	"enter": win.VK_RETURN,
	"space": win.VK_SPACE,
	"ctrl":  win.VK_CONTROL,
	"shift": win.VK_SHIFT,
	"alt":   win.VK_MENU,
	"cmd":   win.VK_LWIN,
	"f5":    win.VK_F5,
}

// Стрелки требуют флаг расширенной клавиши
var extendedKeys = map[uint16]bool{
	win.VK_RIGHT: true,
	win.VK_LEFT:  true,
	win.VK_UP:    true,
	win.VK_DOWN:  true,
}

func (s *SendInput) Press(c input.Combo) error {
	if len(c) == 0 {
		return fmt.Errorf("inject: empty key combo")
	}
	codes := make([]uint16, 0, len(c))
	for _, k := range c {
		vk, ok := virtualKeys[strings.ToLower(k)]
		if !ok {
			return fmt.Errorf("inject: sendinput: unsupported key %q", k)
		}
		codes = append(codes, vk)
	}

	// Нажимаем по порядку, отпускаем в обратном
	inputs := make([]win.KEYBD_INPUT, 0, 2*len(codes))
	for _, vk := range codes {
		inputs = append(inputs, keyEvent(vk, 0))
	}
	for i := len(codes) - 1; i >= 0; i-- {
		inputs = append(inputs, keyEvent(codes[i], win.KEYEVENTF_KEYUP))
	}

	n := win.SendInput(uint32(len(inputs)), unsafe.Pointer(&inputs[0]), int32(unsafe.Sizeof(inputs[0])))
	if int(n) != len(inputs) {
		return fmt.Errorf("inject: sendinput: %d of %d events injected", n, len(inputs))
	}
	return nil
}

func keyEvent(vk uint16, flags uint32) win.KEYBD_INPUT {
	if extendedKeys[vk] {
		flags |= win.KEYEVENTF_EXTENDEDKEY
	}
	return win.KEYBD_INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki: win.KEYBDINPUT{
			WVk:     vk,
			DwFlags: flags,
		},
	}
}
