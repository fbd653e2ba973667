package gesture

import "math"

// Angle угол в вершине b между лучами b→a и b→c, в градусах.
// Берётся модуль разности полярных углов без приведения к [0,180],
// поэтому возможны значения больше 180.
func Angle(a, b, c Point) float64 {
	radians := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	return math.Abs(radians * 180 / math.Pi)
}

// Distance евклидово расстояние между точками, линейно перенесённое из [0,1] в [0,1000].
// Значения вне [0,1] экстраполируются и не обрезаются.
func Distance(a, b Point) float64 {
	return rescale(math.Hypot(b.X-a.X, b.Y-a.Y), 0, 1, 0, 1000)
}

func rescale(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
