package drawer

import (
	"math"
	"testing"
)

func TestInterpolate_TwoPoints(t *testing.T) {
	samples := []Sample{{Offset: 100, Value: 0}, {Offset: 300, Value: 1}}
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"中点", 200, 0.5},
		{"左侧外", 50, 0},
		{"右侧外", 400, 1},
		{"左端点", 100, 0},
		{"四分之一", 150, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(samples, tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Interpolate(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestInterpolate_UnsortedAndDuplicates(t *testing.T) {
	samples := []Sample{
		{Offset: 500, Value: 0},
		{Offset: 0, Value: 1},
		{Offset: 200, Value: 0},
		{Offset: 200, Value: 0},
	}
	if got := Interpolate(samples, 100); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Interpolate(100) = %v, want 0.5", got)
	}
	if got := Interpolate(samples, 350); got != 0 {
		t.Errorf("Interpolate(350) = %v, want 0", got)
	}
	if got := Interpolate(nil, 10); got != 0 {
		t.Errorf("空表应返回 0，得到 %v", got)
	}
}

func TestChildFadeAlpha(t *testing.T) {
	tests := []struct {
		name  string
		live  float64
		inset float64
		want  float64
	}{
		{"位于 collapsed", 380, 20, 0},
		{"比 collapsed 更靠近 closed", 450, 20, 0},
		{"越过一半 inset", 370, 20, 0.5},
		{"越过整个 inset", 360, 20, 1},
		{"远离 collapsed", 0, 20, 1},
		{"无 inset 时位于 collapsed", 380, 0, 0},
		{"无 inset 时向 open 方向", 379, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChildFadeAlpha(tt.live, 380, tt.inset); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ChildFadeAlpha(%v) = %v, want %v", tt.live, got, tt.want)
			}
		})
	}
}

type mockChild struct {
	start, end float64
	alpha      float64
}

func (c *mockChild) AxisSpan() (float64, float64) { return c.start, c.end }
func (c *mockChild) SetAlpha(a float64)           { c.alpha = a }

func TestSelectFadeChildren(t *testing.T) {
	inside := &mockChild{start: 0, end: 60}
	straddling := &mockChild{start: 80, end: 120}
	beyond := &mockChild{start: 120, end: 160}
	children := []Fadeable{inside, straddling, beyond}

	tests := []struct {
		name   string
		policy ChildFadePolicy
		want   []Fadeable
	}{
		{"automatic", ChildFadeAutomatic, []Fadeable{straddling, beyond}},
		{"allowPartial", ChildFadeAllowPartial, []Fadeable{beyond}},
		{"custom", ChildFadeCustom, children},
		{"never", ChildFadeNever, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectFadeChildren(tt.policy, children, 100)
			if len(got) != len(tt.want) {
				t.Fatalf("选中 %d 个，want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("第 %d 个选中项不正确", i)
				}
			}
		})
	}
}

func TestParseChildFadePolicy(t *testing.T) {
	for p, name := range childFadeNames {
		got, err := ParseChildFadePolicy(name)
		if err != nil || got != p {
			t.Errorf("ParseChildFadePolicy(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseChildFadePolicy("sometimes"); err == nil {
		t.Error("未知策略应返回错误")
	}
}
