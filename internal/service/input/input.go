// Package input описывает синтетический ввод (клавиатура, указатель) и сохраняет снимки экрана.
// Системные реализации ввода живут в input/inject.
package input

import (
	"fmt"
	"strings"
)

// Combo клавиши, нажимаемые одновременно: модификаторы, затем основная клавиша.
type Combo []string

// Имена клавиш, которые использует навигатор.
const (
	KeyRight  = "right"
	KeyLeft   = "left"
	KeyEscape = "esc"
)

// ParseCombo разбирает запись вида "ctrl+f5" в Combo.
func ParseCombo(s string) (Combo, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	out := make(Combo, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("input: malformed key combo %q", s)
		}
		out = append(out, p)
	}
	return out, nil
}

// Key основная клавиша сочетания.
func (c Combo) Key() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

// Modifiers клавиши-модификаторы сочетания.
func (c Combo) Modifiers() []string {
	if len(c) < 2 {
		return nil
	}
	return c[:len(c)-1]
}

func (c Combo) String() string { return strings.Join(c, "+") }

// Button кнопка мыши.
type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
)

// Keyboard нажимает клавиши.
type Keyboard interface {
	Press(c Combo) error
}

// Pointer управляет указателем мыши.
type Pointer interface {
	MoveTo(x, y int) error
	Click(b Button, count int) error
	ScreenSize() (width, height int)
}
