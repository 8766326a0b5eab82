package scenes

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

// TestWorldScreenRoundTrip 测试坐标转换
func TestWorldScreenRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		wx, wy float64
		sx, sy float32
	}{
		{"origin", 0, 0, 400, 300},
		{"north wall", 0, 50, 400, 275},
		{"east spawner", 500, 0, 650, 300},
		{"south west", -200, -400, 300, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.wx, tt.wy)
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
			}
			wx, wy := ScreenToWorld(int(tt.sx), int(tt.sy))
			if wx != tt.wx || wy != tt.wy {
				t.Errorf("ScreenToWorld(%v, %v) = (%v, %v), want (%v, %v)", tt.sx, tt.sy, wx, wy, tt.wx, tt.wy)
			}
		})
	}
}

// TestTextWidth 等宽字体下宽度等于字符数乘以字宽
func TestTextWidth(t *testing.T) {
	tests := []string{"", "a", "PAUSED", "[R] Restart   [M] Main menu"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			want := float64(len(s) * basicfont.Face7x13.Advance)
			if got := textWidth(s); got != want {
				t.Errorf("textWidth(%q) = %v, want %v", s, got, want)
			}
		})
	}
}
