package preview

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/decker502/snapdrawer/pkg/drawer"
)

// 终端单元格对应的虚拟像素，抽屉核心始终按像素工作
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// termHost 以终端行作为容器的底部抽屉宿主
type termHost struct {
	cols, rows int
	offset     float64
	visuals    drawer.Visuals
	list       *viewportList
}

func (h *termHost) ContainerExtent() float64       { return float64(h.rows) * CellHeight }
func (h *termHost) SetDrawerOffset(v float64)      { h.offset = v; h.list.resize(h.cols, h.panelRows()-1) }
func (h *termHost) ApplyVisuals(v drawer.Visuals) { h.visuals = v }

func (h *termHost) ActiveScrollables() []drawer.Scrollable {
	if !h.list.tracking {
		return nil
	}
	return []drawer.Scrollable{h.list}
}

// panelTop 面板第一行所在的终端行
func (h *termHost) panelTop() int {
	return int(math.Round(h.offset / CellHeight))
}

// panelRows 面板占用的终端行数
func (h *termHost) panelRows() int {
	n := h.rows - h.panelTop()
	if n < 0 {
		return 0
	}
	return n
}

// viewportList 把 bubbles viewport 包装成抽屉内的嵌套滚动视图
type viewportList struct {
	vp       viewport.Model
	enabled  bool
	offset   float64
	tracking bool
	gesture  drawer.Vec2
}

func newViewportList(content string) *viewportList {
	vp := viewport.New(0, 0)
	vp.SetContent(content)
	return &viewportList{vp: vp, enabled: true}
}

func (l *viewportList) resize(cols, rows int) {
	if rows < 0 {
		rows = 0
	}
	l.vp.Width = cols
	l.vp.Height = rows
	l.sync()
}

// sync 把像素偏移同步到 viewport 的行偏移，并按 viewport 的边界回写
func (l *viewportList) sync() {
	l.vp.SetYOffset(int(l.offset / CellHeight))
	maxOffset := float64(l.maxRows()) * CellHeight
	l.offset = math.Max(0, math.Min(l.offset, maxOffset))
}

func (l *viewportList) maxRows() int {
	n := l.vp.TotalLineCount() - l.vp.Height
	if n < 0 {
		return 0
	}
	return n
}

// scrollBy 手指向上（delta<0）时内容前进
func (l *viewportList) scrollBy(delta float64) {
	if !l.enabled {
		return
	}
	l.offset -= delta
	l.sync()
}

func (l *viewportList) track(active bool) {
	l.tracking = active
	l.gesture = drawer.Vec2{}
}

func (l *viewportList) ScrollEnabled() bool           { return l.enabled }
func (l *viewportList) SetScrollEnabled(enabled bool) { l.enabled = enabled }
func (l *viewportList) ContentOffset() float64        { return l.offset }

func (l *viewportList) ActiveGestures() []drawer.NestedGesture {
	if !l.tracking {
		return nil
	}
	return []drawer.NestedGesture{{Translation: l.gesture}}
}
