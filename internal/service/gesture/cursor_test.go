package gesture

import "testing"

func TestCursorMapper_Map(t *testing.T) {
	m := CursorMapper{ScreenWidth: 1280, ScreenHeight: 720, Gain: 2.4, FineTune: 1.1}

	x, y := m.Map(Point{X: 0.3, Y: 0.7})
	if x != 1013 || y != 664 {
		t.Errorf("Map() = (%d, %d), want (1013, 664)", x, y)
	}
}

func TestCursorMapper_NoClamping(t *testing.T) {
	m := CursorMapper{ScreenWidth: 1000, ScreenHeight: 1000, Gain: 2.4, FineTune: 1.1}

	x, y := m.Map(Point{X: 0.9, Y: 0.95})
	if x <= m.ScreenWidth {
		t.Errorf("x = %d, expected beyond screen width %d", x, m.ScreenWidth)
	}
	if y <= m.ScreenHeight {
		t.Errorf("y = %d, expected beyond screen height %d", y, m.ScreenHeight)
	}
}
