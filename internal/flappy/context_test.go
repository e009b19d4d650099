package flappy

import "testing"

func TestClockSeconds(t *testing.T) {
	tests := []struct {
		name   string
		fps    int
		frames int
		want   float64
	}{
		{"start", 30, 0, 0},
		{"one second", 30, 30, 1},
		{"half second", 60, 30, 0.5},
		{"no rate", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Clock{fps: tt.fps}
			for i := 0; i < tt.frames; i++ {
				c.Tick()
			}
			if c.Frame() != tt.frames {
				t.Errorf("Frame() = %d, want %d", c.Frame(), tt.frames)
			}
			if got := c.Seconds(); got != tt.want {
				t.Errorf("Seconds() = %v, want %v", got, tt.want)
			}
		})
	}
}
