package geometry

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if r.Right() != 110 {
		t.Errorf("Right() = %v, want 110", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", r.Bottom())
	}
	if r.CenterX() != 60 {
		t.Errorf("CenterX() = %v, want 60", r.CenterX())
	}
	if r.CenterY() != 45 {
		t.Errorf("CenterY() = %v, want 45", r.CenterY())
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Rect
		padding float64
		want    bool
	}{
		{
			name: "clear overlap",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 50, Y: 50, Width: 100, Height: 100},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 200, Y: 200, Width: 50, Height: 50},
			want: false,
		},
		{
			name: "touching edges do not overlap",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 100, Y: 0, Width: 100, Height: 100},
			want: false,
		},
		{
			name:    "padding bridges a gap",
			a:       Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:       Rect{X: 105, Y: 0, Width: 100, Height: 100},
			padding: 10,
			want:    true,
		},
		{
			name:    "padding too small to bridge",
			a:       Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:       Rect{X: 150, Y: 0, Width: 100, Height: 100},
			padding: 10,
			want:    false,
		},
		{
			name: "contained rectangle",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 25, Y: 25, Width: 10, Height: 10},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b, tt.padding); got != tt.want {
				t.Errorf("Overlaps(a, b, %v) = %v, want %v", tt.padding, got, tt.want)
			}
			// Symmetry must hold for every case.
			if got := Overlaps(tt.b, tt.a, tt.padding); got != tt.want {
				t.Errorf("Overlaps(b, a, %v) = %v, want %v", tt.padding, got, tt.want)
			}
		})
	}
}

func TestResolveBounds(t *testing.T) {
	size := Size{Width: 200, Height: 80}
	pos := Point{X: 500, Y: 100}

	tests := []struct {
		name     string
		anchor   Anchor
		wantLeft float64
	}{
		{name: "start keeps x as left edge", anchor: AnchorStart, wantLeft: 500},
		{name: "middle centers on x", anchor: AnchorMiddle, wantLeft: 400},
		{name: "end treats x as right edge", anchor: AnchorEnd, wantLeft: 300},
		{name: "unknown falls back to start", anchor: Anchor("weird"), wantLeft: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBounds(pos, tt.anchor, size)
			if got.X != tt.wantLeft {
				t.Errorf("ResolveBounds(...).X = %v, want %v", got.X, tt.wantLeft)
			}
			if got.Y != 100 || got.Width != 200 || got.Height != 80 {
				t.Errorf("ResolveBounds(...) = %+v, want y=100 w=200 h=80", got)
			}
		})
	}
}

func TestRectScale(t *testing.T) {
	r := Rect{X: 1750, Y: 1000, Width: 170, Height: 80}
	got := r.Scale(1280.0/1920.0, 720.0/1080.0)

	want := Rect{X: 1166.6666666666667, Y: 666.6666666666666, Width: 113.33333333333334, Height: 53.333333333333336}
	const eps = 1e-9
	if diff := got.X - want.X; diff > eps || diff < -eps {
		t.Errorf("Scale().X = %v, want %v", got.X, want.X)
	}
	if diff := got.Width - want.Width; diff > eps || diff < -eps {
		t.Errorf("Scale().Width = %v, want %v", got.Width, want.Width)
	}
}

func TestClamp(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{
			name: "already inside",
			r:    Rect{X: 100, Y: 100, Width: 200, Height: 100},
			want: Rect{X: 100, Y: 100, Width: 200, Height: 100},
		},
		{
			name: "off the left edge",
			r:    Rect{X: -50, Y: 100, Width: 200, Height: 100},
			want: Rect{X: 0, Y: 100, Width: 200, Height: 100},
		},
		{
			name: "off the bottom right",
			r:    Rect{X: 1900, Y: 1050, Width: 200, Height: 100},
			want: Rect{X: 1720, Y: 980, Width: 200, Height: 100},
		},
		{
			name: "wider than bounds pins to left",
			r:    Rect{X: 500, Y: 0, Width: 3000, Height: 100},
			want: Rect{X: 0, Y: 0, Width: 3000, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.r, bounds); got != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if !outer.ContainsRect(Rect{X: 10, Y: 10, Width: 50, Height: 50}) {
		t.Error("inner rect should be contained")
	}
	if outer.ContainsRect(Rect{X: 90, Y: 90, Width: 20, Height: 20}) {
		t.Error("overhanging rect should not be contained")
	}
	if !outer.ContainsRect(outer) {
		t.Error("rect should contain itself")
	}
}
