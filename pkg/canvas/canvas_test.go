package canvas

import "testing"

func TestScaleFactors(t *testing.T) {
	tests := []struct {
		name   string
		canvas Canvas
		wantX  float64
		wantY  float64
		want   float64
	}{
		{
			name:   "reference canvas",
			canvas: Canvas{Width: 1920, Height: 1080},
			wantX:  1.0,
			wantY:  1.0,
			want:   1.0,
		},
		{
			name:   "720p canvas",
			canvas: Canvas{Width: 1280, Height: 720},
			wantX:  1280.0 / 1920.0,
			wantY:  720.0 / 1080.0,
			want:   1280.0 / 1920.0,
		},
		{
			name:   "non 16x9 uses smaller factor",
			canvas: Canvas{Width: 1920, Height: 540},
			wantX:  1.0,
			wantY:  0.5,
			want:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.canvas.ScaleX(); got != tt.wantX {
				t.Errorf("ScaleX() = %v, want %v", got, tt.wantX)
			}
			if got := tt.canvas.ScaleY(); got != tt.wantY {
				t.Errorf("ScaleY() = %v, want %v", got, tt.wantY)
			}
			if got := tt.canvas.Scale(); got != tt.want {
				t.Errorf("Scale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThirdsX(t *testing.T) {
	c := Canvas{Width: 1920, Height: 1080}
	thirds := c.ThirdsX()
	if thirds[0] != 640 || thirds[1] != 1280 {
		t.Errorf("ThirdsX() = %v, want [640 1280]", thirds)
	}
}

func TestValid(t *testing.T) {
	if !(Canvas{Width: 1280, Height: 720}).Valid() {
		t.Error("720p canvas should be valid")
	}
	if (Canvas{Width: 0, Height: 720}).Valid() {
		t.Error("zero-width canvas should be invalid")
	}
	if (Canvas{Width: 1280, Height: -1}).Valid() {
		t.Error("negative-height canvas should be invalid")
	}
}
