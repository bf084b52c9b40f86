package app

import (
	"testing"

	"github.com/decker502/snapdrawer/pkg/anim"
	"github.com/decker502/snapdrawer/pkg/drawer"
	"github.com/decker502/snapdrawer/pkg/utils"
)

// 默认配置下：容器 800，collapsed=732，partiallyOpen=536，open=0
func newTestApp(t *testing.T) *App {
	t.Helper()
	driver := anim.NewDriver()
	d, err := drawer.New(drawer.DefaultConfig(), driver)
	if err != nil {
		t.Fatalf("drawer.New() error: %v", err)
	}
	list := NewScrollList(ListRows)
	host := newScreenHost(ScreenWidth, ScreenHeight, drawer.OrientationBottom, 0, list)
	if err := d.Attach(host); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	return &App{drawer: d, host: host, list: list, driver: driver}
}

func dragEvent(phase drawer.GesturePhase, origin drawer.Vec2, dy float64) utils.PointerEvent {
	return utils.PointerEvent{
		Kind:    utils.PointerDrag,
		Origin:  origin,
		Gesture: drawer.GestureEvent{Phase: phase, Translation: drawer.Vec2{Y: dy}},
	}
}

func TestApp_TapOutsidePanelStepsBack(t *testing.T) {
	a := newTestApp(t)
	_ = a.drawer.SetPosition(drawer.PositionOpen, false)
	_ = a.drawer.SetPosition(drawer.PositionPartiallyOpen, false)

	// 面板内点击不处理
	a.handlePointer(utils.PointerEvent{Kind: utils.PointerTap, Origin: drawer.Vec2{X: 100, Y: 700}})
	if a.drawer.Position() != drawer.PositionPartiallyOpen {
		t.Fatalf("面板内点击不应改变位置，得到 %v", a.drawer.Position())
	}

	a.handlePointer(utils.PointerEvent{Kind: utils.PointerTap, Origin: drawer.Vec2{X: 100, Y: 100}})
	if a.drawer.Position() != drawer.PositionCollapsed {
		t.Errorf("遮罩点击后位置 = %v, want collapsed", a.drawer.Position())
	}
	a.driver.Settle(1.0/60, 120)
	if got := a.host.offset; got != 732 {
		t.Errorf("宿主偏移 = %v, want 732", got)
	}
}

func TestApp_DragListHandsOffToDrawer(t *testing.T) {
	a := newTestApp(t)
	_ = a.drawer.SetPosition(drawer.PositionPartiallyOpen, false)
	origin := drawer.Vec2{X: 240, Y: 600}

	a.handlePointer(dragEvent(drawer.GestureBegan, origin, 0))
	if !a.list.Tracking() {
		t.Fatal("落在列表上的指针应被列表跟踪")
	}
	a.handlePointer(dragEvent(drawer.GestureChanged, origin, -40))
	if a.list.ScrollEnabled() {
		t.Error("抽屉未完全展开时应接管手势并禁用列表滚动")
	}
	a.handlePointer(dragEvent(drawer.GestureChanged, origin, -100))
	if got := a.drawer.Offset(); got != 476 {
		t.Errorf("Offset() = %v, want 476", got)
	}
	if a.list.ContentOffset() != 0 {
		t.Errorf("交接后列表不应滚动，ContentOffset = %v", a.list.ContentOffset())
	}

	a.handlePointer(dragEvent(drawer.GestureEnded, origin, -100))
	if a.list.Tracking() || !a.list.ScrollEnabled() {
		t.Error("拖拽结束应停止跟踪并恢复列表滚动")
	}
	if a.drawer.Position() != drawer.PositionPartiallyOpen {
		t.Errorf("Position() = %v, want partiallyOpen", a.drawer.Position())
	}
}

func TestApp_FullyOpenListScrolls(t *testing.T) {
	a := newTestApp(t)
	_ = a.drawer.SetPosition(drawer.PositionOpen, false)
	origin := drawer.Vec2{X: 240, Y: 300}

	a.handlePointer(dragEvent(drawer.GestureBegan, origin, 0))
	a.handlePointer(dragEvent(drawer.GestureChanged, origin, -50))
	a.handlePointer(dragEvent(drawer.GestureChanged, origin, -80))
	if got := a.list.ContentOffset(); got != 80 {
		t.Fatalf("ContentOffset = %v, want 80", got)
	}
	// 手指回拉，内容未到边界时仍由列表滚动
	a.handlePointer(dragEvent(drawer.GestureChanged, origin, -60))
	if got := a.list.ContentOffset(); got != 60 {
		t.Errorf("ContentOffset = %v, want 60", got)
	}
	if a.drawer.Offset() != 0 {
		t.Errorf("列表滚动时抽屉不应移动，Offset = %v", a.drawer.Offset())
	}

	a.handlePointer(dragEvent(drawer.GestureEnded, origin, -60))
	if a.drawer.Animating() || a.drawer.Position() != drawer.PositionOpen {
		t.Error("列表仍在滚动时松手不应移动抽屉")
	}
}

func TestApp_CollapsedRowsFade(t *testing.T) {
	a := newTestApp(t)
	if a.list.Header().Alpha != 1 {
		t.Errorf("标题栏在折叠线内，不应淡出: %v", a.list.Header().Alpha)
	}
	if a.list.Rows()[0].Alpha != 0 {
		t.Errorf("collapsed 时越过折叠线的行应隐藏: %v", a.list.Rows()[0].Alpha)
	}

	_ = a.drawer.SetPosition(drawer.PositionOpen, false)
	if a.list.Rows()[0].Alpha != 1 {
		t.Errorf("open 时行应完全可见: %v", a.list.Rows()[0].Alpha)
	}
}

func TestApp_LayoutResizesDrawer(t *testing.T) {
	a := newTestApp(t)
	w, h := a.Layout(400, 600)
	if w != 400 || h != 600 {
		t.Errorf("Layout() = %d,%d", w, h)
	}
	if got := a.drawer.Offset(); got != 532 {
		t.Errorf("布局后 Offset = %v, want 532", got)
	}
}

func TestScreenHost_PanelRect(t *testing.T) {
	tests := []struct {
		name   string
		o      drawer.Orientation
		offset float64
		want   Rect
	}{
		{"底部", drawer.OrientationBottom, 600, Rect{X: 0, Y: 600, W: 480, H: 200}},
		{"顶部", drawer.OrientationTop, 150, Rect{X: 0, Y: 0, W: 480, H: 150}},
		{"左侧", drawer.OrientationLeft, 120, Rect{X: 0, Y: 0, W: 120, H: 800}},
		{"右侧", drawer.OrientationRight, 400, Rect{X: 400, Y: 0, W: 80, H: 800}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newScreenHost(ScreenWidth, ScreenHeight, tt.o, 0, nil)
			h.SetDrawerOffset(tt.offset)
			if got := h.panelRect(); got != tt.want {
				t.Errorf("panelRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScrollList_ScrollBounds(t *testing.T) {
	l := NewScrollList(10) // 内容 440
	l.SetViewport(300)

	l.ScrollBy(-500)
	if l.ContentOffset() != 140 {
		t.Errorf("滚动应限制在内容末尾，得到 %v", l.ContentOffset())
	}
	l.ScrollBy(1000)
	if l.ContentOffset() != 0 {
		t.Errorf("滚动应限制在起始边界，得到 %v", l.ContentOffset())
	}

	l.SetScrollEnabled(false)
	l.ScrollBy(-50)
	if l.ContentOffset() != 0 {
		t.Error("禁用时不应滚动")
	}

	l.SetScrollEnabled(true)
	l.ScrollBy(-100)
	start, end := l.Rows()[0].AxisSpan()
	if start != HeaderHeight-100 || end != HeaderHeight-100+RowHeight {
		t.Errorf("滚动后第一行区间 = %v..%v", start, end)
	}
	if s, _ := l.Header().AxisSpan(); s != 0 {
		t.Error("标题栏不随内容滚动")
	}
}

func TestScrollList_ActiveGestures(t *testing.T) {
	l := NewScrollList(3)
	if len(l.ActiveGestures()) != 0 {
		t.Error("未跟踪时不应报告手势")
	}
	l.Track(true)
	l.SetTranslation(drawer.Vec2{Y: -12})
	g := l.ActiveGestures()
	if len(g) != 1 || g[0].Translation.Y != -12 {
		t.Errorf("ActiveGestures() = %+v", g)
	}
}
