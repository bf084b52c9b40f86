package drawer

import (
	"errors"
	"testing"
)

func scenarioResolver(t *testing.T) Resolver {
	t.Helper()
	set, err := NewSnapSet(PositionClosed, PositionCollapsed, PositionPartiallyOpen, PositionOpen)
	if err != nil {
		t.Fatalf("NewSnapSet() error: %v", err)
	}
	offsets := map[Position]float64{
		PositionClosed:        500,
		PositionCollapsed:     400,
		PositionPartiallyOpen: 200,
		PositionOpen:          0,
	}
	return NewResolver(set, func(p Position) float64 { return offsets[p] })
}

func TestNewSnapSet(t *testing.T) {
	if _, err := NewSnapSet(); !errors.Is(err, ErrEmptySnapSet) {
		t.Errorf("空集合应返回 ErrEmptySnapSet，得到 %v", err)
	}
	if _, err := NewSnapSet(Position(42)); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("非法位置应返回 ErrInvalidPosition，得到 %v", err)
	}
	set, err := NewSnapSet(PositionOpen, PositionCollapsed, PositionOpen)
	if err != nil {
		t.Fatalf("NewSnapSet() error: %v", err)
	}
	if len(set) != 2 || set[0] != PositionOpen || set[1] != PositionCollapsed {
		t.Errorf("去重后应保持输入顺序，得到 %v", set)
	}
	if set.MostClosed() != PositionCollapsed || set.MostOpen() != PositionOpen {
		t.Errorf("MostClosed/MostOpen 不正确: %v %v", set.MostClosed(), set.MostOpen())
	}
}

func TestResolver_Nearest(t *testing.T) {
	r := scenarioResolver(t)
	tests := []struct {
		offset float64
		want   Position
	}{
		{410, PositionCollapsed},
		{460, PositionClosed},
		{290, PositionPartiallyOpen},
		{-30, PositionOpen},
		{900, PositionClosed},
	}
	for _, tt := range tests {
		if got := r.Nearest(tt.offset); got != tt.want {
			t.Errorf("Nearest(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestResolver_NearestTieUsesInputOrder(t *testing.T) {
	offsets := map[Position]float64{PositionCollapsed: 400, PositionPartiallyOpen: 200}
	offset := func(p Position) float64 { return offsets[p] }

	a := NewResolver(SnapSet{PositionCollapsed, PositionPartiallyOpen}, offset)
	if got := a.Nearest(300); got != PositionCollapsed {
		t.Errorf("距离相等时应取集合中靠前的 collapsed，得到 %v", got)
	}
	b := NewResolver(SnapSet{PositionPartiallyOpen, PositionCollapsed}, offset)
	if got := b.Nearest(300); got != PositionPartiallyOpen {
		t.Errorf("距离相等时应取集合中靠前的 partiallyOpen，得到 %v", got)
	}
}

func TestResolver_ResolveRelease(t *testing.T) {
	r := scenarioResolver(t)
	const threshold = 500
	tests := []struct {
		name     string
		live     float64
		velocity float64
		start    Position
		want     Position
	}{
		{"低速松手取最近", 410, 300, PositionCollapsed, PositionCollapsed},
		{"高速朝 closed 越级", 400, 1500, PositionCollapsed, PositionClosed},
		{"高速朝 open 越级", 400, -1500, PositionCollapsed, PositionPartiallyOpen},
		{"目标已不是起点时不再越级", 250, -1500, PositionCollapsed, PositionPartiallyOpen},
		{"最展开处没有更远的邻居", 0, -3000, PositionOpen, PositionOpen},
		{"最收起处没有更远的邻居", 500, 3000, PositionClosed, PositionClosed},
		{"速度恰好等于阈值不越级", 200, 500, PositionPartiallyOpen, PositionPartiallyOpen},
		{"速度投影改变最近位置", 300, 12000, PositionPartiallyOpen, PositionCollapsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ResolveRelease(tt.live, tt.velocity, tt.start, threshold); got != tt.want {
				t.Errorf("ResolveRelease(%v, %v, %v) = %v, want %v", tt.live, tt.velocity, tt.start, got, tt.want)
			}
		})
	}
}

func TestResolver_StepTowardClosed(t *testing.T) {
	r := scenarioResolver(t)
	tests := []struct {
		current Position
		want    Position
		ok      bool
	}{
		{PositionOpen, PositionPartiallyOpen, true},
		{PositionPartiallyOpen, PositionCollapsed, true},
		{PositionCollapsed, PositionClosed, true},
		{PositionClosed, PositionClosed, false},
	}
	for _, tt := range tests {
		got, ok := r.StepTowardClosed(tt.current)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StepTowardClosed(%v) = %v, %v; want %v, %v", tt.current, got, ok, tt.want, tt.ok)
		}
	}

	noClosed := NewResolver(SnapSet{PositionCollapsed, PositionOpen}, func(p Position) float64 {
		return map[Position]float64{PositionCollapsed: 400, PositionOpen: 0}[p]
	})
	if _, ok := noClosed.StepTowardClosed(PositionCollapsed); ok {
		t.Error("集合中没有 closed 时 collapsed 不应再后退")
	}
}

func TestResolver_TiedOffsetsOrderByPosition(t *testing.T) {
	offsets := map[Position]float64{
		PositionCollapsed:     100,
		PositionPartiallyOpen: 0,
		PositionOpen:          0,
	}
	r := NewResolver(SnapSet{PositionOpen, PositionPartiallyOpen, PositionCollapsed},
		func(p Position) float64 { return offsets[p] })

	desc := r.Descending()
	order := []Position{PositionCollapsed, PositionPartiallyOpen, PositionOpen}
	for i, p := range order {
		if desc[i].Position != p {
			t.Fatalf("Descending()[%d] = %v, want %v", i, desc[i].Position, p)
		}
	}

	tests := []struct {
		name    string
		current Position
		want    Position
	}{
		{"partiallyOpen 退到 collapsed", PositionPartiallyOpen, PositionCollapsed},
		{"open 退到 partiallyOpen", PositionOpen, PositionPartiallyOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.StepTowardClosed(tt.current)
			if !ok || got != tt.want {
				t.Errorf("StepTowardClosed(%v) = %v, %v; want %v, true", tt.current, got, ok, tt.want)
			}
		})
	}

	// 从 open 朝 closed 甩动：越级只前进到相邻的 partiallyOpen
	if got := r.ResolveRelease(0, 600, PositionOpen, DefaultVelocityThreshold); got != PositionPartiallyOpen {
		t.Errorf("ResolveRelease = %v, want partiallyOpen", got)
	}
}

func TestResolver_Bounds(t *testing.T) {
	lo, hi := scenarioResolver(t).Bounds()
	if lo != 0 || hi != 500 {
		t.Errorf("Bounds() = %v, %v; want 0, 500", lo, hi)
	}
	lo, hi = Resolver{}.Bounds()
	if lo != 0 || hi != 0 {
		t.Errorf("空解析器 Bounds() = %v, %v", lo, hi)
	}
}
