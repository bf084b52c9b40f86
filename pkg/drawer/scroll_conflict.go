package drawer

import "math"

// Scrollable 抽屉内嵌套的可滚动内容
type Scrollable interface {
	ScrollEnabled() bool
	SetScrollEnabled(enabled bool)
	// ContentOffset 沿主轴的内容偏移：0 为起始边界，负值表示越界回弹
	ContentOffset() float64
	// ActiveGestures 当前在该视图上同时活动的指针手势
	ActiveGestures() []NestedGesture
}

// NestedGesture 嵌套视图上活动手势的累计位移
type NestedGesture struct {
	Translation Vec2
}

// LockAxis 方向锁判定结果
type LockAxis int

const (
	LockUndetermined LockAxis = iota
	LockAlong
	LockAcross
)

// 方向锁判定参数：位移不足 slop 时无法判定；一个分量至少是另一个的 ratio 倍才算明确
const (
	DirectionalLockSlop  = 4.0
	DirectionalLockRatio = 2.0
)

// DirectionalLock 判定一次位移是沿抽屉主轴还是垂直于主轴
func DirectionalLock(o Orientation, t Vec2) LockAxis {
	along := math.Abs(o.Along(t))
	across := math.Abs(o.Across(t))
	if math.Hypot(along, across) < DirectionalLockSlop {
		return LockUndetermined
	}
	switch {
	case along >= across*DirectionalLockRatio:
		return LockAlong
	case across >= along*DirectionalLockRatio:
		return LockAcross
	default:
		return LockUndetermined
	}
}

type scrollEntry struct {
	view       Scrollable
	wasEnabled bool
}

// ScrollConflict 单次拖拽期间的嵌套滚动冲突记录
//
// 在拖拽开始时根据宿主报告的活动滚动视图创建，拖拽结束时恢复所有视图的
// 滚动开关并丢弃。
type ScrollConflict struct {
	entries   []scrollEntry
	handedOff bool
}

func newScrollConflict(views []Scrollable) *ScrollConflict {
	c := &ScrollConflict{}
	for _, v := range views {
		if v == nil {
			continue
		}
		c.entries = append(c.entries, scrollEntry{view: v, wasEnabled: v.ScrollEnabled()})
	}
	return c
}

// Len 记录的滚动视图数量
func (c *ScrollConflict) Len() int { return len(c.entries) }

// active 当前仍有活动手势的视图
func (c *ScrollConflict) active() []scrollEntry {
	var out []scrollEntry
	for _, e := range c.entries {
		if len(e.view.ActiveGestures()) > 0 {
			out = append(out, e)
		}
	}
	return out
}

// lock 对所有活动视图的手势做方向锁判定
//
// 任一手势无法判定时返回 LockUndetermined；全部沿主轴时返回 LockAlong；否则 LockAcross。
func (c *ScrollConflict) lock(o Orientation, active []scrollEntry) LockAxis {
	result := LockAlong
	for _, e := range active {
		for _, g := range e.view.ActiveGestures() {
			switch DirectionalLock(o, g.Translation) {
			case LockUndetermined:
				return LockUndetermined
			case LockAcross:
				result = LockAcross
			}
		}
	}
	return result
}

// shouldScroll 决定本次位移是否交给嵌套视图
//
// motion 为本次事件的轴空间增量（负值 = 朝 open，把更多内容拉进视野）。
//   - 抽屉未完全展开：抽屉处理
//   - 完全展开且朝 open 移动：视图滚动
//   - 完全展开、朝 closed 移动且内容尚未回到边界：视图滚动
//   - 其余情况（内容已到边界或视图不可滚动）：抽屉处理
func (c *ScrollConflict) shouldScroll(active []scrollEntry, motion float64, fullyOpen bool) bool {
	if !fullyOpen {
		return false
	}
	for _, e := range active {
		if !e.view.ScrollEnabled() {
			continue
		}
		if motion <= 0 || e.view.ContentOffset() > 0 {
			return true
		}
	}
	return false
}

// handOff 把手势交给抽屉：禁用所有视图的滚动，并返回已被内容消耗的越界距离
func (c *ScrollConflict) handOff() float64 {
	var absorbed float64
	for _, e := range c.entries {
		if off := e.view.ContentOffset(); off < 0 {
			absorbed = math.Max(absorbed, -off)
		}
		if e.view.ScrollEnabled() {
			e.view.SetScrollEnabled(false)
		}
	}
	c.handedOff = true
	return absorbed
}

// stillScrolling 是否有未交接的视图仍停在边界之外
func (c *ScrollConflict) stillScrolling() bool {
	if c.handedOff {
		return false
	}
	for _, e := range c.entries {
		if e.view.ScrollEnabled() && e.view.ContentOffset() > 0 {
			return true
		}
	}
	return false
}

// restore 恢复拖拽前的滚动开关
func (c *ScrollConflict) restore() {
	for _, e := range c.entries {
		if e.view.ScrollEnabled() != e.wasEnabled {
			e.view.SetScrollEnabled(e.wasEnabled)
		}
	}
}
