package drawer

import (
	"fmt"
	"testing"
	"time"
)

// mockHost 测试用宿主
type mockHost struct {
	extent      float64
	safeArea    float64
	edgeGap     float64
	declared    float64
	offsets     []float64
	visuals     []Visuals
	scrollables []Scrollable
	children    []Fadeable
}

func (h *mockHost) ContainerExtent() float64       { return h.extent }
func (h *mockHost) SetDrawerOffset(v float64)      { h.offsets = append(h.offsets, v) }
func (h *mockHost) SafeAreaInset() float64         { return h.safeArea }
func (h *mockHost) EdgeGap() float64               { return h.edgeGap }
func (h *mockHost) DeclaredInset() float64         { return h.declared }
func (h *mockHost) ApplyVisuals(v Visuals)         { h.visuals = append(h.visuals, v) }
func (h *mockHost) ActiveScrollables() []Scrollable { return h.scrollables }
func (h *mockHost) DrawerChildren() []Fadeable     { return h.children }

func (h *mockHost) lastOffset() float64 {
	if len(h.offsets) == 0 {
		return -1
	}
	return h.offsets[len(h.offsets)-1]
}

// mockScrollable 测试用嵌套滚动视图
type mockScrollable struct {
	enabled  bool
	offset   float64
	gestures []NestedGesture
	setCalls int
}

func (s *mockScrollable) ScrollEnabled() bool { return s.enabled }
func (s *mockScrollable) SetScrollEnabled(enabled bool) {
	s.setCalls++
	s.enabled = enabled
}
func (s *mockScrollable) ContentOffset() float64          { return s.offset }
func (s *mockScrollable) ActiveGestures() []NestedGesture { return s.gestures }

// fakeAnimation 手动推进的动画
type fakeAnimation struct {
	spec   AnimationSpec
	update func(float64)
	done   func(bool)
	value  float64
	ended  bool
}

func (a *fakeAnimation) Cancel() float64 {
	if !a.ended {
		a.ended = true
		a.done(false)
	}
	return a.value
}

func (a *fakeAnimation) advance(progress float64) {
	a.value = a.spec.From + (a.spec.To-a.spec.From)*progress
	a.update(a.value)
}

func (a *fakeAnimation) finish() {
	a.value = a.spec.To
	a.update(a.value)
	a.ended = true
	a.done(true)
}

type fakeAnimator struct {
	started []*fakeAnimation
}

func (f *fakeAnimator) Animate(spec AnimationSpec, update func(float64), done func(bool)) Animation {
	a := &fakeAnimation{spec: spec, update: update, done: done, value: spec.From}
	f.started = append(f.started, a)
	return a
}

func (f *fakeAnimator) last(t *testing.T) *fakeAnimation {
	t.Helper()
	if len(f.started) == 0 {
		t.Fatal("没有启动任何动画")
	}
	return f.started[len(f.started)-1]
}

// recorder 记录观察者事件
type recorder struct {
	events []string
}

func (r *recorder) observer() *ObserverFuncs {
	return &ObserverFuncs{
		WillTransition: func(_ *Drawer, from, to Position) {
			r.events = append(r.events, fmt.Sprintf("will %s->%s", from, to))
		},
		DidTransition: func(_ *Drawer, to Position) {
			r.events = append(r.events, fmt.Sprintf("did %s", to))
		},
		WillBeginDrag: func(*Drawer) { r.events = append(r.events, "begin") },
		WillEndDrag:   func(*Drawer) { r.events = append(r.events, "end") },
	}
}

// 测试几何：容器 500，无 inset，closed=500 collapsed=400 partiallyOpen=200 open=0
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SnapSet = []Position{PositionClosed, PositionCollapsed, PositionPartiallyOpen, PositionOpen}
	cfg.CollapsedExtent = 100
	cfg.PartiallyOpenExtent = 300
	cfg.OpenExtent = 0
	cfg.InsetMode = InsetNone
	cfg.ChildFade = ChildFadeNever
	cfg.InitialPosition = PositionCollapsed
	cfg.Clock = func() time.Time { return time.Unix(0, 0) }
	return cfg
}

func newTestDrawer(t *testing.T, mutate func(*Config)) (*Drawer, *mockHost, *fakeAnimator) {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	animator := &fakeAnimator{}
	d, err := New(cfg, animator)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	host := &mockHost{extent: 500}
	if err := d.Attach(host); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	return d, host, animator
}

func assertOffset(t *testing.T, d *Drawer, want float64) {
	t.Helper()
	if diff := d.Offset() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Offset() = %v, want %v", d.Offset(), want)
	}
}
