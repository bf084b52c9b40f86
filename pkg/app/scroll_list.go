package app

import (
	"fmt"
	"math"

	"github.com/decker502/snapdrawer/pkg/drawer"
)

// 列表布局参数（像素）
const (
	HeaderHeight = 48.0
	RowHeight    = 44.0
)

// ScrollList 抽屉内的可滚动列表，实现 drawer.Scrollable
//
// 坐标沿抽屉主轴、从抽屉前沿向内计算；ContentOffset 为 0 时第一行紧贴标题栏。
type ScrollList struct {
	rows     []*ListRow
	header   *ListRow
	viewport float64
	offset   float64
	enabled  bool

	tracking    bool
	translation drawer.Vec2
}

// ListRow 列表中的一行，实现 drawer.Fadeable
type ListRow struct {
	Label string
	Alpha float64
	start float64
	size  float64
	list  *ScrollList
}

// AxisSpan 当前滚动位置下该行沿主轴的区间
func (r *ListRow) AxisSpan() (start, end float64) {
	start = r.start
	if r != r.list.header {
		start -= r.list.offset
	}
	return start, start + r.size
}

// SetAlpha 实现 drawer.Fadeable
func (r *ListRow) SetAlpha(alpha float64) { r.Alpha = alpha }

// NewScrollList 创建包含 n 行的列表
func NewScrollList(n int) *ScrollList {
	l := &ScrollList{enabled: true}
	l.header = &ListRow{Label: "Drawer", Alpha: 1, size: HeaderHeight, list: l}
	for i := 0; i < n; i++ {
		l.rows = append(l.rows, &ListRow{
			Label: fmt.Sprintf("Item %d", i+1),
			Alpha: 1,
			start: HeaderHeight + float64(i)*RowHeight,
			size:  RowHeight,
			list:  l,
		})
	}
	return l
}

// Rows 列表行（不含标题栏）
func (l *ScrollList) Rows() []*ListRow { return l.rows }

// Header 标题栏
func (l *ScrollList) Header() *ListRow { return l.header }

// Children 参与折叠淡出判定的全部子内容
func (l *ScrollList) Children() []drawer.Fadeable {
	children := make([]drawer.Fadeable, 0, len(l.rows)+1)
	children = append(children, l.header)
	for _, r := range l.rows {
		children = append(children, r)
	}
	return children
}

// SetViewport 设置列表可见区域长度（抽屉露出部分减去标题栏）
func (l *ScrollList) SetViewport(length float64) {
	l.viewport = math.Max(0, length)
	l.offset = math.Min(l.offset, l.maxOffset())
}

func (l *ScrollList) maxOffset() float64 {
	content := float64(len(l.rows)) * RowHeight
	return math.Max(0, content-l.viewport)
}

// ScrollBy 按指针位移滚动内容，delta 为屏幕坐标增量（向上为负）
//
// 禁用滚动时忽略。
func (l *ScrollList) ScrollBy(delta float64) {
	if !l.enabled {
		return
	}
	l.offset = math.Max(0, math.Min(l.offset-delta, l.maxOffset()))
}

// Track 开始或结束跟踪落在列表上的指针
func (l *ScrollList) Track(active bool) {
	l.tracking = active
	l.translation = drawer.Vec2{}
}

// Tracking 是否有指针落在列表上
func (l *ScrollList) Tracking() bool { return l.tracking }

// SetTranslation 更新跟踪中指针的累计位移
func (l *ScrollList) SetTranslation(t drawer.Vec2) {
	if l.tracking {
		l.translation = t
	}
}

func (l *ScrollList) ScrollEnabled() bool           { return l.enabled }
func (l *ScrollList) SetScrollEnabled(enabled bool) { l.enabled = enabled }
func (l *ScrollList) ContentOffset() float64        { return l.offset }

func (l *ScrollList) ActiveGestures() []drawer.NestedGesture {
	if !l.tracking {
		return nil
	}
	return []drawer.NestedGesture{{Translation: l.translation}}
}
