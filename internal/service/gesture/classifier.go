package gesture

import "image/color"

// Gesture решение классификатора для одного кадра.
type Gesture int

const (
	None Gesture = iota
	CursorMove
	LeftClick
	RightClick
	DoubleClick
	Screenshot
)

func (g Gesture) String() string {
	switch g {
	case CursorMove:
		return "cursor-move"
	case LeftClick:
		return "left-click"
	case RightClick:
		return "right-click"
	case DoubleClick:
		return "double-click"
	case Screenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// Label подпись на кадре для сработавшего жеста. У перемещения курсора подписи нет.
func (g Gesture) Label() string {
	switch g {
	case LeftClick:
		return "Left Click"
	case RightClick:
		return "Right Click"
	case DoubleClick:
		return "Double Click"
	case Screenshot:
		return "Screenshot Taken"
	default:
		return ""
	}
}

// Пороговые значения правил.
const (
	ThumbDistanceThreshold = 50.0
	BentThreshold          = 50.0
	StraightThreshold      = 90.0
)

// Features три измерения, по которым принимается решение.
type Features struct {
	ThumbDistance float64 // расстояние ThumbTip–IndexMCP, [0,1000]
	IndexAngle    float64 // угол в IndexPIP между IndexMCP и IndexTip
	MiddleAngle   float64 // угол в MiddlePIP между MiddleMCP и MiddleTip
}

// Measure вычисляет признаки по полному набору из 21 точки.
func Measure(l Landmarks) Features {
	return Features{
		ThumbDistance: Distance(l[ThumbTip], l[IndexMCP]),
		IndexAngle:    Angle(l[IndexMCP], l[IndexPIP], l[IndexTip]),
		MiddleAngle:   Angle(l[MiddleMCP], l[MiddlePIP], l[MiddleTip]),
	}
}

// Rule пара «предикат → жест».
type Rule struct {
	Gesture Gesture
	Match   func(f Features) bool
}

// Rules правила в порядке приоритета. Предикаты намеренно пересекаются
// (двойной клик и скриншот), выбор делает порядок.
var Rules = []Rule{
	{Gesture: CursorMove, Match: func(f Features) bool {
		return f.ThumbDistance < ThumbDistanceThreshold && f.IndexAngle > StraightThreshold
	}},
	{Gesture: LeftClick, Match: func(f Features) bool {
		return f.IndexAngle < BentThreshold && f.MiddleAngle > StraightThreshold && f.ThumbDistance > ThumbDistanceThreshold
	}},
	{Gesture: RightClick, Match: func(f Features) bool {
		return f.MiddleAngle < BentThreshold && f.IndexAngle > StraightThreshold && f.ThumbDistance > ThumbDistanceThreshold
	}},
	{Gesture: DoubleClick, Match: func(f Features) bool {
		return f.IndexAngle < BentThreshold && f.MiddleAngle < BentThreshold && f.ThumbDistance > ThumbDistanceThreshold
	}},
	{Gesture: Screenshot, Match: func(f Features) bool {
		return f.IndexAngle < BentThreshold && f.MiddleAngle < BentThreshold && f.ThumbDistance < ThumbDistanceThreshold
	}},
}

// Decision результат классификации кадра.
type Decision struct {
	Gesture  Gesture
	Features Features
	// Кончик указательного пальца; используется для перемещения курсора.
	Fingertip Point
}

// Classify перебирает Rules по порядку и возвращает первое совпадение.
// Для неполного набора точек (меньше 21) всегда None.
func Classify(l Landmarks) Decision {
	if !l.Complete() {
		return Decision{Gesture: None}
	}
	f := Measure(l)
	d := Decision{Gesture: None, Features: f, Fingertip: l[IndexTip]}
	for _, r := range Rules {
		if r.Match(f) {
			d.Gesture = r.Gesture
			return d
		}
	}
	return d
}

// Цвета подписей на кадре.
var (
	colorGreen = color.RGBA{G: 255, A: 255}
	colorRed   = color.RGBA{R: 255, A: 255}
	colorCyan  = color.RGBA{G: 255, B: 255, A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Color цвет подписи жеста.
func (g Gesture) Color() color.RGBA {
	switch g {
	case LeftClick:
		return colorGreen
	case RightClick:
		return colorRed
	case DoubleClick, Screenshot:
		return colorCyan
	default:
		return colorWhite
	}
}
