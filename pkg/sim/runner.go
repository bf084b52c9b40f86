package sim

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/decker502/snapdrawer/pkg/anim"
	"github.com/decker502/snapdrawer/pkg/drawer"
)

// FrameTime 回放使用的固定帧间隔（秒）
const FrameTime = 1.0 / 60.0

// maxSettleFrames settle 步骤最多推进的帧数
const maxSettleFrames = 600

// simScrollable 脚本中的嵌套滚动视图
type simScrollable struct {
	spec        ScrollableSpec
	enabled     bool
	offset      float64
	tracking    bool
	translation drawer.Vec2
}

func (v *simScrollable) ScrollEnabled() bool           { return v.enabled }
func (v *simScrollable) SetScrollEnabled(enabled bool) { v.enabled = enabled }
func (v *simScrollable) ContentOffset() float64        { return v.offset }

func (v *simScrollable) ActiveGestures() []drawer.NestedGesture {
	if !v.tracking {
		return nil
	}
	return []drawer.NestedGesture{{Translation: v.translation}}
}

// scrollBy 模拟视图自身的滚动：手指向上（delta<0）时内容偏移增加
func (v *simScrollable) scrollBy(delta float64) {
	if !v.enabled {
		return
	}
	v.offset = math.Max(0, v.offset-delta)
	if v.spec.MaxOffset > 0 {
		v.offset = math.Min(v.offset, v.spec.MaxOffset)
	}
}

// simHost 脚本宿主
type simHost struct {
	container Container
	offset    float64
	visuals   drawer.Visuals
	views     []*simScrollable
}

func (h *simHost) ContainerExtent() float64       { return h.container.Extent }
func (h *simHost) SetDrawerOffset(v float64)      { h.offset = v }
func (h *simHost) SafeAreaInset() float64         { return h.container.SafeArea }
func (h *simHost) EdgeGap() float64               { return h.container.EdgeGap }
func (h *simHost) DeclaredInset() float64         { return h.container.Declared }
func (h *simHost) ApplyVisuals(v drawer.Visuals)  { h.visuals = v }

func (h *simHost) ActiveScrollables() []drawer.Scrollable {
	var out []drawer.Scrollable
	for _, v := range h.views {
		if v.tracking {
			out = append(out, v)
		}
	}
	return out
}

// Transcript 回放记录
type Transcript struct {
	Lines []string
}

func (t *Transcript) add(format string, args ...any) {
	t.Lines = append(t.Lines, fmt.Sprintf(format, args...))
}

// String 每行一条记录，以换行结尾
func (t *Transcript) String() string {
	if len(t.Lines) == 0 {
		return ""
	}
	return strings.Join(t.Lines, "\n") + "\n"
}

// Runner 执行脚本
type Runner struct {
	script *Script
	drawer *drawer.Drawer
	host   *simHost
	driver *anim.Driver
	now    time.Time
	out    *Transcript

	lastDrag drawer.Vec2
}

// NewRunner 按脚本创建抽屉和宿主
func NewRunner(s *Script) (*Runner, error) {
	cfg, err := s.Drawer.Build()
	if err != nil {
		return nil, err
	}
	r := &Runner{
		script: s,
		host:   &simHost{container: s.Container},
		driver: anim.NewDriver(),
		now:    time.Unix(0, 0),
		out:    &Transcript{},
	}
	cfg.Clock = func() time.Time { return r.now }
	for _, spec := range s.Scrollables {
		r.host.views = append(r.host.views, &simScrollable{
			spec:    spec,
			enabled: !spec.Disabled,
			offset:  spec.ContentOffset,
		})
	}

	d, err := drawer.New(cfg, r.driver)
	if err != nil {
		return nil, err
	}
	r.drawer = d
	d.AddObserver(&drawer.ObserverFuncs{
		WillTransition: func(_ *drawer.Drawer, from, to drawer.Position) {
			r.out.add("  will %s -> %s", from, to)
		},
		DidTransition: func(_ *drawer.Drawer, to drawer.Position) {
			r.out.add("  did %s", to)
		},
		WillBeginDrag: func(*drawer.Drawer) { r.out.add("  begin drag") },
		WillEndDrag:   func(*drawer.Drawer) { r.out.add("  end drag") },
	})
	if err := d.Attach(r.host); err != nil {
		return nil, err
	}
	return r, nil
}

// Drawer 回放中的抽屉
func (r *Runner) Drawer() *drawer.Drawer { return r.drawer }

// Run 执行全部步骤并返回记录
func (r *Runner) Run() (*Transcript, error) {
	r.out.add("# %s", r.script.Name)
	r.snapshot("start")
	for i, step := range r.script.Steps {
		op, err := step.Op()
		if err != nil {
			return r.out, fmt.Errorf("steps[%d]: %w", i, err)
		}
		r.out.add("%d %s", i+1, describe(op, step))
		if err := r.apply(op, step); err != nil {
			r.out.add("  error %v", err)
		}
		r.snapshot("")
	}
	return r.out, nil
}

// Run 便捷函数：创建 Runner 并执行
func Run(s *Script) (*Transcript, error) {
	r, err := NewRunner(s)
	if err != nil {
		return nil, err
	}
	return r.Run()
}

func (r *Runner) apply(op string, step Step) error {
	d := r.drawer
	switch op {
	case "begin":
		r.lastDrag = drawer.Vec2{}
		for _, v := range r.host.views {
			v.tracking = v.spec.UnderPointer
			v.translation = drawer.Vec2{}
		}
		d.HandleGesture(drawer.GestureEvent{Phase: drawer.GestureBegan})
	case "drag":
		t := drawer.Vec2{X: step.Drag.X, Y: step.Drag.Y}
		for _, v := range r.host.views {
			if v.tracking {
				v.translation = t
			}
		}
		d.HandleGesture(drawer.GestureEvent{Phase: drawer.GestureChanged, Translation: t})
		for _, v := range r.host.views {
			if v.tracking {
				v.scrollBy(t.Y - r.lastDrag.Y)
			}
		}
		r.lastDrag = t
	case "release", "fail":
		ev := drawer.GestureEvent{Phase: drawer.GestureEnded, Translation: r.lastDrag}
		if op == "fail" {
			ev.Phase = drawer.GestureFailed
		} else {
			ev.Velocity = drawer.Vec2{X: step.Release.X, Y: step.Release.Y}
		}
		d.HandleGesture(ev)
		for _, v := range r.host.views {
			v.tracking = false
		}
	case "tap":
		if !d.TapOverlay() {
			r.out.add("  tap ignored")
		}
	case "tick":
		frames := int(math.Round(step.Tick / FrameTime))
		for i := 0; i < frames; i++ {
			r.advance()
		}
	case "settle":
		for i := 0; i < maxSettleFrames && r.driver.Active() > 0; i++ {
			r.advance()
		}
	case "set":
		p, err := drawer.ParsePosition(step.Set)
		if err != nil {
			return err
		}
		return d.SetPosition(p, step.animated())
	case "conceal":
		d.SetConcealed(*step.Conceal, step.animated())
	case "snapSet":
		positions := make([]drawer.Position, 0, len(step.SnapSet))
		for _, s := range step.SnapSet {
			p, err := drawer.ParsePosition(s)
			if err != nil {
				return err
			}
			positions = append(positions, p)
		}
		return d.SetSnapSet(positions...)
	case "resize":
		r.host.container.Extent = step.Resize
		d.Layout()
	}
	return nil
}

func (r *Runner) advance() {
	frameTime := FrameTime
	r.now = r.now.Add(time.Duration(frameTime * float64(time.Second)))
	r.driver.Update(FrameTime)
}

func (r *Runner) snapshot(label string) {
	d := r.drawer
	prefix := "  "
	if label != "" {
		prefix += label + " "
	}
	line := fmt.Sprintf("%soffset=%.1f position=%s visible=%s overlay=%.2f shadow=%.2f",
		prefix, d.Offset(), d.Position(), d.VisiblePosition(), r.host.visuals.OverlayOpacity, r.host.visuals.ShadowOpacity)
	if d.Animating() {
		line += " animating"
	}
	if d.Dragging() {
		line += " dragging"
	}
	for i, v := range r.host.views {
		line += fmt.Sprintf(" view%d=%.1f", i, v.offset)
		if !v.enabled {
			line += "(off)"
		}
	}
	r.out.Lines = append(r.out.Lines, line)
}

func describe(op string, s Step) string {
	switch op {
	case "drag":
		return fmt.Sprintf("drag (%.0f, %.0f)", s.Drag.X, s.Drag.Y)
	case "release":
		return fmt.Sprintf("release v=(%.0f, %.0f)", s.Release.X, s.Release.Y)
	case "tick":
		return fmt.Sprintf("tick %.3fs", s.Tick)
	case "set":
		return fmt.Sprintf("set %s animated=%t", s.Set, s.animated())
	case "conceal":
		return fmt.Sprintf("conceal %t animated=%t", *s.Conceal, s.animated())
	case "snapSet":
		return fmt.Sprintf("snapSet %v", s.SnapSet)
	case "resize":
		return fmt.Sprintf("resize %.0f", s.Resize)
	}
	return op
}
