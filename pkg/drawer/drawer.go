package drawer

import (
	"fmt"
	"log"
	"time"
)

// Drawer 抽屉状态机
//
// 逻辑位置（current）与可见位置分开维护：隐藏（concealed）时可见偏移被强制为 closed，
// current 保持不变，位置通知也被抑制。
type Drawer struct {
	cfg      Config
	snapSet  SnapSet
	host     Host
	attached bool
	animator Animator

	observers      []observerEntry
	nextObserverID int

	current   Position
	concealed bool
	live      float64
	visuals   Visuals

	active *transition
	drag   *dragSession

	ambiguityWarn *warnThrottle
}

// New 创建抽屉
//
// animator 为 nil 时所有过渡立即生效。
func New(cfg Config, animator Animator) (*Drawer, error) {
	set, err := NewSnapSet(cfg.SnapSet...)
	if err != nil {
		return nil, err
	}
	if _, ok := axisTable[cfg.Orientation]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(cfg.Orientation))
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	cfg.SnapSet = set

	initial := cfg.InitialPosition
	if initial != PositionClosed && !set.Contains(initial) {
		initial = set.MostClosed()
	}

	d := &Drawer{
		cfg:           cfg,
		snapSet:       set,
		animator:      animator,
		current:       initial,
		ambiguityWarn: newWarnThrottle(AmbiguityWarnInterval, cfg.Clock),
	}
	d.updateVisuals()
	return d, nil
}

// Attach 绑定宿主并把抽屉放到初始位置
//
// 一个抽屉只能绑定一次，重复绑定返回 ErrAlreadyAttached。
func (d *Drawer) Attach(host Host) error {
	if d.attached {
		return ErrAlreadyAttached
	}
	d.host = host
	d.attached = true
	d.applyLive(d.SnapOffset(d.VisiblePosition()))
	log.Printf("[Drawer] Attached (%s, position=%s, extent=%.1f)", d.cfg.Orientation, d.current, d.containerExtent())
	return nil
}

// MustAttach 与 Attach 相同，但重复绑定时直接 panic（开发期快速失败）
func (d *Drawer) MustAttach(host Host) {
	if err := d.Attach(host); err != nil {
		panic(err)
	}
}

// Config 返回当前配置的副本
func (d *Drawer) Config() Config {
	cfg := d.cfg
	cfg.SnapSet = append(SnapSet(nil), d.snapSet...)
	return cfg
}

// Orientation 抽屉方向
func (d *Drawer) Orientation() Orientation { return d.cfg.Orientation }

// SnapSet 当前吸附集合
func (d *Drawer) SnapSet() SnapSet { return append(SnapSet(nil), d.snapSet...) }

// Position 逻辑位置
func (d *Drawer) Position() Position { return d.current }

// VisiblePosition 考虑隐藏标志后的可见位置
func (d *Drawer) VisiblePosition() Position {
	if d.concealed {
		return PositionClosed
	}
	return d.current
}

// Concealed 是否处于隐藏状态
func (d *Drawer) Concealed() bool { return d.concealed }

// Offset 当前轴空间偏移
func (d *Drawer) Offset() float64 { return d.live }

// Extension 当前露出的长度，closed 时为 0
func (d *Drawer) Extension() float64 {
	return d.containerExtent() - d.live
}

// Visuals 最近一次计算的视觉参数
func (d *Drawer) Visuals() Visuals { return d.visuals }

// Dragging 是否正在拖拽
func (d *Drawer) Dragging() bool { return d.drag != nil }

// Animating 是否有过渡正在进行
func (d *Drawer) Animating() bool { return d.active != nil }

func (d *Drawer) containerExtent() float64 {
	if d.host == nil {
		return 0
	}
	extent := d.host.ContainerExtent()
	if extent < 0 {
		return 0
	}
	return extent
}

// Inset 按配置模式计算的当前 inset
func (d *Drawer) Inset() float64 {
	return d.cfg.resolveInset(d.host)
}

// SnapOffset 当前容器几何下某个位置的轴空间偏移
func (d *Drawer) SnapOffset(p Position) float64 {
	return d.cfg.SnapOffset(p, d.containerExtent(), d.Inset())
}

// Resolver 基于当前几何和吸附集合的解析器
func (d *Drawer) Resolver() Resolver {
	extent, inset := d.containerExtent(), d.Inset()
	return NewResolver(d.snapSet, func(p Position) float64 {
		return d.cfg.SnapOffset(p, extent, inset)
	})
}

// SetPosition 切换到指定位置
//
// closed 始终可用；其它位置必须在吸附集合中。
func (d *Drawer) SetPosition(p Position, animated bool) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, int(p))
	}
	if p != PositionClosed && !d.snapSet.Contains(p) {
		log.Printf("[Drawer] Ignoring unsupported position %s", p)
		return fmt.Errorf("%w: %s", ErrUnsupportedPosition, p)
	}
	d.setPosition(p, animated)
	return nil
}

func (d *Drawer) setPosition(p Position, animated bool) {
	d.cancelTransition()

	from := d.VisiblePosition()
	d.current = p
	to := d.VisiblePosition()

	notify := !d.concealed
	if notify && from != to {
		d.emitWillTransition(from, to)
	}
	d.transitionTo(d.SnapOffset(to), animated, transitionPosition, func() {
		if notify && !d.concealed {
			d.emitDidTransition(d.VisiblePosition())
		}
	})
}

// SetSnapSet 替换吸附集合
//
// 当前位置不在新集合中（closed 除外）时，无动画地回到新集合中最接近 closed 的位置。
func (d *Drawer) SetSnapSet(positions ...Position) error {
	set, err := NewSnapSet(positions...)
	if err != nil {
		return err
	}
	d.snapSet = set
	d.cfg.SnapSet = set
	if d.current != PositionClosed && !set.Contains(d.current) {
		log.Printf("[Drawer] Position %s no longer supported, resetting to %s", d.current, set.MostClosed())
		d.setPosition(set.MostClosed(), false)
		return nil
	}
	d.updateVisuals()
	return nil
}

// SetConcealed 设置隐藏标志
//
// 只做几何过渡，不改变逻辑位置，也不发出位置通知。
func (d *Drawer) SetConcealed(concealed, animated bool) {
	if d.concealed == concealed {
		return
	}
	d.concealed = concealed
	d.transitionTo(d.SnapOffset(d.VisiblePosition()), animated, transitionPosition, nil)
}

// TapOverlay 处理点击遮罩：向 closed 方向退一个吸附位置
//
// 返回是否发生了位置变化。
func (d *Drawer) TapOverlay() bool {
	if !d.cfg.OverlayTapDismiss || d.drag != nil || d.concealed {
		return false
	}
	next, ok := d.Resolver().StepTowardClosed(d.current)
	if !ok {
		return false
	}
	d.setPosition(next, true)
	return true
}

// Layout 容器几何变化后调用
//
// 空闲时把抽屉重新放到当前位置；位置过渡进行中时改为过渡到新几何下的目标。
func (d *Drawer) Layout() {
	if t := d.active; t != nil && t.kind == transitionPosition && d.drag == nil {
		// 位置过渡中：目标变化时从当前值重新过渡到新几何下的目标
		if target := d.SnapOffset(d.VisiblePosition()); target != t.target {
			d.transitionTo(target, true, transitionPosition, t.onDone)
			return
		}
	}
	if d.drag != nil || d.active != nil {
		d.updateVisuals()
		return
	}
	d.applyLive(d.SnapOffset(d.VisiblePosition()))
}

// applyLive 更新偏移并同步宿主、视觉参数和观察者
func (d *Drawer) applyLive(offset float64) {
	d.live = offset
	extent := d.containerExtent()
	if d.host != nil {
		d.host.SetDrawerOffset(d.cfg.Orientation.ToHost(offset, extent))
	}
	d.updateVisuals()
	d.emitDidMove(extent - offset)
}

// updateVisuals 根据当前偏移重新计算遮罩、阴影和子内容透明度
func (d *Drawer) updateVisuals() {
	extent, inset := d.containerExtent(), d.Inset()
	offsets := make(map[Position]float64, len(AllPositions))
	for _, p := range AllPositions {
		offsets[p] = d.cfg.SnapOffset(p, extent, inset)
	}

	var v Visuals
	if d.cfg.OverlayEnabled {
		v.OverlayOpacity = Interpolate(positionTable(offsets, func(p Position) float64 {
			if p == PositionOpen {
				return 1
			}
			return 0
		}), d.live)
	}
	if d.cfg.ShadowEnabled {
		v.ShadowOpacity = Interpolate(positionTable(offsets, func(p Position) float64 {
			if p == PositionClosed {
				return 0
			}
			return d.cfg.ShadowOpacity
		}), d.live)
	}

	v.ChildAlpha = 1
	if d.cfg.ChildFade != ChildFadeNever {
		v.ChildAlpha = ChildFadeAlpha(d.live, offsets[PositionCollapsed], inset)
		d.fadeChildren(v.ChildAlpha)
	}

	d.visuals = v
	if sink, ok := d.host.(VisualsSink); ok {
		sink.ApplyVisuals(v)
	}
}

func (d *Drawer) fadeChildren(alpha float64) {
	var children []Fadeable
	switch d.cfg.ChildFade {
	case ChildFadeCustom:
		if d.cfg.ChildFadeFunc != nil {
			children = d.cfg.ChildFadeFunc()
		}
	default:
		if src, ok := d.host.(ChildSource); ok {
			children = src.DrawerChildren()
		}
	}
	if len(children) == 0 {
		return
	}
	selected := SelectFadeChildren(d.cfg.ChildFade, children, d.cfg.CollapsedExtent)
	for _, c := range children {
		c.SetAlpha(1)
	}
	for _, c := range selected {
		c.SetAlpha(alpha)
	}
}

func positionTable(offsets map[Position]float64, value func(Position) float64) []Sample {
	samples := make([]Sample, 0, len(AllPositions))
	for _, p := range AllPositions {
		samples = append(samples, Sample{Offset: offsets[p], Value: value(p)})
	}
	return samples
}
