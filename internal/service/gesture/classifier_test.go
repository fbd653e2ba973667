package gesture

import "testing"

// makeHand строит 21 точку с заданными углами сгиба указательного и среднего
// пальцев и расстоянием ThumbTip–IndexMCP в шкале [0,1000].
func makeHand(indexAngle, middleAngle, thumbDistance float64) Landmarks {
	l := make(Landmarks, NumLandmarks)
	for i := range l {
		l[i] = Point{X: 0.9, Y: 0.9}
	}

	indexPIP := Point{X: 0.5, Y: 0.5}
	l[IndexPIP] = indexPIP
	l[IndexMCP] = polar(indexPIP, 0.1, 0)
	l[IndexTip] = polar(indexPIP, 0.1, indexAngle)

	middlePIP := Point{X: 0.3, Y: 0.3}
	l[MiddlePIP] = middlePIP
	l[MiddleMCP] = polar(middlePIP, 0.1, 0)
	l[MiddleTip] = polar(middlePIP, 0.1, middleAngle)

	l[ThumbTip] = Point{X: l[IndexMCP].X, Y: l[IndexMCP].Y - thumbDistance/1000}
	return l
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		hand    Landmarks
		want    Gesture
		wantTip bool
	}{
		{name: "screenshot: both bent, thumb close", hand: makeHand(6, 6, 30), want: Screenshot},
		{name: "double click: both bent, thumb open", hand: makeHand(6, 6, 80), want: DoubleClick},
		{name: "left click", hand: makeHand(10, 120, 80), want: LeftClick},
		{name: "right click", hand: makeHand(120, 10, 80), want: RightClick},
		{name: "cursor move", hand: makeHand(150, 150, 20), want: CursorMove, wantTip: true},
		{name: "cursor move wins over later rules", hand: makeHand(120, 10, 30), want: CursorMove, wantTip: true},
		{name: "half bent fingers match nothing", hand: makeHand(70, 70, 80), want: None},
		{name: "empty landmark list", hand: Landmarks{}, want: None},
		{name: "nil landmark list", hand: nil, want: None},
		{name: "incomplete landmark list", hand: makeHand(6, 6, 30)[:20], want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.hand)
			if got.Gesture != tt.want {
				t.Fatalf("Classify() = %v (features %+v), want %v", got.Gesture, got.Features, tt.want)
			}
			if tt.wantTip && got.Fingertip != tt.hand[IndexTip] {
				t.Errorf("Fingertip = %+v, want %+v", got.Fingertip, tt.hand[IndexTip])
			}
		})
	}
}

func TestClassify_ThumbDistanceSeparatesDoubleClickAndScreenshot(t *testing.T) {
	for _, d := range []float64{0, 10, 30, 49, 51, 75, 200, 900} {
		got := Classify(makeHand(6, 6, d)).Gesture
		want := DoubleClick
		if d < ThumbDistanceThreshold {
			want = Screenshot
		}
		if got != want {
			t.Errorf("thumb distance %v: Classify() = %v, want %v", d, got, want)
		}
	}
}

func TestClassify_IndependentFrames(t *testing.T) {
	if got := Classify(makeHand(6, 6, 30)).Gesture; got != Screenshot {
		t.Fatalf("first frame = %v, want %v", got, Screenshot)
	}
	if got := Classify(nil).Gesture; got != None {
		t.Errorf("frame without hand = %v, want %v", got, None)
	}
}

func TestRules_Order(t *testing.T) {
	want := []Gesture{CursorMove, LeftClick, RightClick, DoubleClick, Screenshot}
	if len(Rules) != len(want) {
		t.Fatalf("len(Rules) = %d, want %d", len(Rules), len(want))
	}
	for i, g := range want {
		if Rules[i].Gesture != g {
			t.Errorf("Rules[%d] = %v, want %v", i, Rules[i].Gesture, g)
		}
	}
}

func TestGesture_Label(t *testing.T) {
	if CursorMove.Label() != "" {
		t.Errorf("CursorMove.Label() = %q, want empty", CursorMove.Label())
	}
	if Screenshot.Label() != "Screenshot Taken" {
		t.Errorf("Screenshot.Label() = %q", Screenshot.Label())
	}
}

func TestGesture_Color(t *testing.T) {
	if c := LeftClick.Color(); c.G != 255 || c.R != 0 {
		t.Errorf("LeftClick.Color() = %v, want green", c)
	}
	if c := RightClick.Color(); c.R != 255 || c.G != 0 {
		t.Errorf("RightClick.Color() = %v, want red", c)
	}
	if DoubleClick.Color() != Screenshot.Color() {
		t.Errorf("double click and screenshot labels differ in color")
	}
}

func TestFirstHand(t *testing.T) {
	if got := FirstHand(nil); len(got) != 0 {
		t.Errorf("FirstHand(nil) = %v, want empty", got)
	}
	a, b := makeHand(1, 1, 1), makeHand(2, 2, 2)
	got := FirstHand([]Landmarks{a, b})
	if len(got) != NumLandmarks || got[IndexTip] != a[IndexTip] {
		t.Errorf("FirstHand() did not return the first hand")
	}
}
