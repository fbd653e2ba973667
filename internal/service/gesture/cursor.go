package gesture

// CursorMapper переводит нормализованную позицию кончика пальца в абсолютные экранные координаты.
// Вертикаль дополнительно делится пополам. Выход за границы экрана не обрезается.
type CursorMapper struct {
	ScreenWidth  int
	ScreenHeight int
	Gain         float64 // 2.4 по умолчанию
	FineTune     float64 // 1.1 по умолчанию
}

// Map координаты курсора для точки tip. Округление отсечением выполняется
// дважды: после усиления и после тонкой подстройки.
func (m CursorMapper) Map(tip Point) (int, int) {
	x := int(tip.X * float64(m.ScreenWidth) * m.Gain)
	y := int(tip.Y / 2 * float64(m.ScreenHeight) * m.Gain)

	x = int(float64(x) * m.FineTune)
	y = int(float64(y) * m.FineTune)
	return x, y
}
