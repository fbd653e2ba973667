// Package inject нажимает клавиши и двигает мышь в системе: robotgo, на Windows также SendInput.
package inject

import (
	"errors"

	"github.com/go-vgo/robotgo"

	"HandsFree/internal/service/input"
)

var (
	_ input.Keyboard = (*Robot)(nil)
	_ input.Pointer  = (*Robot)(nil)
)

// Robot реализует input.Keyboard и input.Pointer через robotgo.
type Robot struct{}

func NewRobot() *Robot { return &Robot{} }

func (r *Robot) Press(c input.Combo) error {
	if c.Key() == "" {
		return errors.New("inject: empty key combo")
	}
	mods := c.Modifiers()
	if len(mods) == 0 {
		return robotgo.KeyTap(c.Key())
	}
	args := make([]interface{}, 0, len(mods))
	for _, m := range mods {
		args = append(args, m)
	}
	return robotgo.KeyTap(c.Key(), args...)
}

// MoveTo перемещает указатель в абсолютные координаты без ограничения границами экрана.
func (r *Robot) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Click count=2 даёт двойной клик, иначе count одиночных.
func (r *Robot) Click(b input.Button, count int) error {
	if count == 2 {
		robotgo.Click(string(b), true)
		return nil
	}
	for range max(1, count) {
		robotgo.Click(string(b))
	}
	return nil
}

func (r *Robot) ScreenSize() (int, int) { return robotgo.GetScreenSize() }
