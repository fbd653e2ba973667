package gesture

import (
	"math"
	"testing"
)

const eps = 1e-9

func polar(center Point, r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: center.X + r*math.Cos(rad), Y: center.Y + r*math.Sin(rad)}
}

func TestAngle(t *testing.T) {
	o := Point{}
	tests := []struct {
		name    string
		a, b, c Point
		want    float64
	}{
		{name: "right angle", a: Point{X: 1}, b: o, c: Point{Y: 1}, want: 90},
		{name: "straight", a: Point{X: -1}, b: o, c: Point{X: 1}, want: 180},
		{name: "collinear same side", a: Point{X: 1}, b: o, c: Point{X: 2}, want: 0},
		{name: "order does not change magnitude", a: Point{Y: 1}, b: o, c: Point{X: 1}, want: 90},
		{name: "reflex angle is not folded", a: polar(o, 1, -170), b: o, c: polar(o, 1, 170), want: 340},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Angle(tt.a, tt.b, tt.c)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngle_ScaleInvariant(t *testing.T) {
	a, b, c := Point{X: 0.2, Y: 0.7}, Point{X: 0.4, Y: 0.5}, Point{X: 0.9, Y: 0.6}
	base := Angle(a, b, c)
	for _, k := range []float64{0.01, 0.5, 3, 250} {
		scale := func(p Point) Point { return Point{X: p.X * k, Y: p.Y * k} }
		got := Angle(scale(a), scale(b), scale(c))
		if math.Abs(got-base) > 1e-6 {
			t.Errorf("scale %v: Angle() = %v, want %v", k, got, base)
		}
	}
}

func TestAngle_RotationAboutVertex(t *testing.T) {
	b := Point{X: 0.5, Y: 0.5}
	a, c := polar(b, 0.1, 30), polar(b, 0.2, 100)
	base := Angle(a, b, c)

	rot := func(p Point) Point { return Point{X: 2*b.X - p.X, Y: 2*b.Y - p.Y} }
	got := Angle(rot(a), b, rot(c))
	if math.Abs(got-base) > 1e-6 && math.Abs(got-(360-base)) > 1e-6 {
		t.Errorf("rotated Angle() = %v, base %v", got, base)
	}
	if got < 0 || got >= 360 {
		t.Errorf("Angle() = %v out of [0,360)", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{name: "same point", a: Point{X: 0.3, Y: 0.3}, b: Point{X: 0.3, Y: 0.3}, want: 0},
		{name: "unit", a: Point{}, b: Point{X: 1}, want: 1000},
		{name: "3-4-5", a: Point{}, b: Point{X: 0.03, Y: 0.04}, want: 50},
		{name: "beyond nominal domain extrapolates", a: Point{}, b: Point{X: 2}, want: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_Monotonic(t *testing.T) {
	origin := Point{X: 0.1, Y: 0.1}
	prev := -1.0
	for r := 0.0; r <= 1.5; r += 0.05 {
		d := Distance(origin, polar(origin, r, 37))
		if d < prev {
			t.Fatalf("Distance decreased at r=%v: %v < %v", r, d, prev)
		}
		prev = d
	}
}
