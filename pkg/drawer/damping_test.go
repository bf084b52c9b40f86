package drawer

import (
	"math"
	"testing"
)

func TestDamp_Zero(t *testing.T) {
	if got := Damp(0, DampingFactor); got != 0 {
		t.Errorf("Damp(0) = %v, want 0", got)
	}
	if got := Damp(-5, DampingFactor); got != 0 {
		t.Errorf("Damp(-5) = %v, want 0", got)
	}
}

func TestDamp_MonotonicAndResistant(t *testing.T) {
	prev := 0.0
	for x := 1.0; x <= 1000; x += 1 {
		v := Damp(x, DampingFactor)
		if v <= prev {
			t.Fatalf("Damp 在 %v 处不是严格递增: %v <= %v", x, v, prev)
		}
		if v >= x {
			t.Fatalf("Damp(%v) = %v 不应超过原始越界距离", x, v)
		}
		prev = v
	}
}

func TestDamp_Formula(t *testing.T) {
	k := 20 / math.Ln10
	want := 20 * (math.Log10(100+k) - math.Log10(k))
	if got := Damp(100, 20); math.Abs(got-want) > 1e-12 {
		t.Errorf("Damp(100, 20) = %v, want %v", got, want)
	}
}

func TestDampToBounds(t *testing.T) {
	tests := []struct {
		name      string
		candidate float64
		want      float64
	}{
		{"范围内不变", 250, 250},
		{"上界", 500, 500},
		{"超出上界", 560, 500 + Damp(60, DampingFactor)},
		{"超出下界", -40, -Damp(40, DampingFactor)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DampToBounds(tt.candidate, 0, 500, DampingFactor)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DampToBounds(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}
