// Package gesture классифицирует жест руки по 21 ключевой точке детектора.
package gesture

import "fmt"

// Индексы ключевых точек руки в нумерации MediaPipe.
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point нормализованная точка кадра, X и Y в [0,1].
type Point struct {
	X float64
	Y float64
}

// Landmarks ключевые точки одной руки в порядке нумерации.
type Landmarks []Point

// Complete true, если набор содержит все 21 точку.
func (l Landmarks) Complete() bool { return len(l) >= NumLandmarks }

// FirstHand возвращает точки первой найденной руки или пустой набор, если рук нет.
// Поддерживается только одна рука, остальные отбрасываются.
func FirstHand(hands []Landmarks) Landmarks {
	if len(hands) == 0 {
		return nil
	}
	return hands[0]
}

// Connections пары индексов, соединяемые линиями при отрисовке руки.
var Connections = [][2]int{
	{Wrist, ThumbCMC}, {ThumbCMC, ThumbMCP}, {ThumbMCP, ThumbIP}, {ThumbIP, ThumbTip},
	{Wrist, IndexMCP}, {IndexMCP, IndexPIP}, {IndexPIP, IndexDIP}, {IndexDIP, IndexTip},
	{IndexMCP, MiddleMCP}, {MiddleMCP, MiddlePIP}, {MiddlePIP, MiddleDIP}, {MiddleDIP, MiddleTip},
	{MiddleMCP, RingMCP}, {RingMCP, RingPIP}, {RingPIP, RingDIP}, {RingDIP, RingTip},
	{RingMCP, PinkyMCP}, {Wrist, PinkyMCP}, {PinkyMCP, PinkyPIP}, {PinkyPIP, PinkyDIP}, {PinkyDIP, PinkyTip},
}

// ParseFlat собирает точки из плоского вывода модели (x, y, z подряд),
// деля координаты на размер входа модели size. Z отбрасывается.
func ParseFlat(values []float32, size float64) (Landmarks, error) {
	if len(values) < NumLandmarks*3 {
		return nil, fmt.Errorf("gesture: landmark output has %d values, want %d", len(values), NumLandmarks*3)
	}
	if size <= 0 {
		return nil, fmt.Errorf("gesture: invalid model input size %v", size)
	}
	l := make(Landmarks, NumLandmarks)
	for i := range l {
		l[i] = Point{
			X: float64(values[i*3]) / size,
			Y: float64(values[i*3+1]) / size,
		}
	}
	return l, nil
}
