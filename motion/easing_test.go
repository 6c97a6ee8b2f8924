package motion

import "testing"

func TestEasingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
	}{
		{"Linear", Linear},
		{"QuartOut", QuartOut},
		{"CubicOut", CubicOut},
		{"CubicInOut", CubicInOut},
	}

	for _, tt := range tests {
		if got := tt.fn(0); got != 0 {
			t.Errorf("Expected %s(0) to be 0, got %v", tt.name, got)
		}
		if got := tt.fn(1); got != 1 {
			t.Errorf("Expected %s(1) to be 1, got %v", tt.name, got)
		}
	}
}

func TestCubicInOutMidpoint(t *testing.T) {
	if got := CubicInOut(0.5); got != 0.5 {
		t.Errorf("Expected midpoint to be 0.5, got %v", got)
	}
}

func TestQuartOutMonotonic(t *testing.T) {
	prev := 0.0
	for i := 0; i <= 100; i++ {
		v := QuartOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("QuartOut decreased at step %d: %v after %v", i, v, prev)
		}
		prev = v
	}
}

func TestPulseWaveShape(t *testing.T) {
	if got := pulseWave(0); got != 0 {
		t.Errorf("Expected rest at start, got %v", got)
	}
	if got := pulseWave(1); got != 0 {
		t.Errorf("Expected rest at end, got %v", got)
	}
	if got := pulseWave(0.5); got != 1 {
		t.Errorf("Expected peak at midpoint, got %v", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("Expected clamp01(%v) to be %v, got %v", tt.in, tt.want, got)
		}
	}
}
