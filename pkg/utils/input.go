// Package utils 提供输入、缓动和平台相关的通用工具
package utils

import (
	"math"

	"github.com/decker502/snapdrawer/pkg/drawer"
)

// PointerSource 指针输入接口
// 用于依赖注入，测试时可替换为 mock
type PointerSource interface {
	// PointerState 返回是否按下以及当前位置
	PointerState() (pressed bool, x, y int)
}

// TouchSlop 按下后移动超过该距离（像素）才识别为拖拽
const TouchSlop = 8.0

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStatePressed 已按下，尚未越过 TouchSlop
	DragStatePressed
	// DragStateDragging 拖拽中
	DragStateDragging
)

// PointerEventKind 跟踪器输出的事件类型
type PointerEventKind int

const (
	PointerNone PointerEventKind = iota
	// PointerTap 未越过 TouchSlop 就松开
	PointerTap
	// PointerDrag Gesture 字段有效
	PointerDrag
)

// PointerEvent 一帧的跟踪结果
type PointerEvent struct {
	Kind    PointerEventKind
	Gesture drawer.GestureEvent
	// Origin 按下位置（拖拽）或点击位置（点击）
	Origin drawer.Vec2
}

// GestureTracker 把逐帧的指针状态转换成拖拽手势阶段
//
// 状态流转：None -> Pressed -> Dragging -> None。
// 越过 TouchSlop 时发出 began，之后每帧位置变化发出 changed，松开时发出 ended；
// Cancel 会让下一帧以 failed 结束。
type GestureTracker struct {
	source   PointerSource
	state    DragState
	start    drawer.Vec2
	current  drawer.Vec2
	clock    float64
	velocity VelocityTracker
	cancel   bool
}

// NewGestureTracker 创建跟踪器
func NewGestureTracker(source PointerSource) *GestureTracker {
	return &GestureTracker{source: source}
}

// State 当前状态
func (g *GestureTracker) State() DragState {
	return g.state
}

// Cancel 请求中止当前拖拽（例如窗口失焦）
func (g *GestureTracker) Cancel() {
	if g.state != DragStateNone {
		g.cancel = true
	}
}

// Update 推进一帧，deltaTime 单位为秒
func (g *GestureTracker) Update(deltaTime float64) PointerEvent {
	g.clock += deltaTime
	pressed, x, y := g.source.PointerState()
	pos := drawer.Vec2{X: float64(x), Y: float64(y)}

	if g.cancel {
		g.cancel = false
		wasDragging := g.state == DragStateDragging
		g.reset()
		if wasDragging {
			return PointerEvent{Kind: PointerDrag, Gesture: drawer.GestureEvent{Phase: drawer.GestureFailed}, Origin: g.start}
		}
		return PointerEvent{}
	}

	switch g.state {
	case DragStateNone:
		if pressed {
			g.state = DragStatePressed
			g.start, g.current = pos, pos
			g.velocity.Reset()
			g.velocity.Add(g.clock, pos)
		}
		return PointerEvent{}

	case DragStatePressed:
		if !pressed {
			origin := g.start
			g.reset()
			return PointerEvent{Kind: PointerTap, Origin: origin}
		}
		g.current = pos
		g.velocity.Add(g.clock, pos)
		if math.Hypot(pos.X-g.start.X, pos.Y-g.start.Y) < TouchSlop {
			return PointerEvent{}
		}
		g.state = DragStateDragging
		origin := g.start
		// 从识别点开始计算位移，避免首帧跳变
		g.start = pos
		return PointerEvent{
			Kind:    PointerDrag,
			Gesture: drawer.GestureEvent{Phase: drawer.GestureBegan, Velocity: g.velocity.Velocity()},
			Origin:  origin,
		}

	case DragStateDragging:
		if !pressed {
			ev := drawer.GestureEvent{
				Phase:       drawer.GestureEnded,
				Translation: g.translation(),
				Velocity:    g.velocity.Velocity(),
			}
			origin := g.start
			g.reset()
			return PointerEvent{Kind: PointerDrag, Gesture: ev, Origin: origin}
		}
		g.current = pos
		g.velocity.Add(g.clock, pos)
		return PointerEvent{
			Kind: PointerDrag,
			Gesture: drawer.GestureEvent{
				Phase:       drawer.GestureChanged,
				Translation: g.translation(),
				Velocity:    g.velocity.Velocity(),
			},
			Origin: g.start,
		}
	}
	return PointerEvent{}
}

func (g *GestureTracker) translation() drawer.Vec2 {
	return drawer.Vec2{X: g.current.X - g.start.X, Y: g.current.Y - g.start.Y}
}

func (g *GestureTracker) reset() {
	g.state = DragStateNone
}
