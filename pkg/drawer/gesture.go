package drawer

import "log"

// GesturePhase 单指拖拽手势的阶段
type GesturePhase int

const (
	GestureBegan GesturePhase = iota
	GestureChanged
	GestureEnded
	GestureFailed
)

func (p GesturePhase) String() string {
	switch p {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureFailed:
		return "failed"
	}
	return "unknown"
}

// GestureEvent 宿主坐标系下的拖拽事件
type GestureEvent struct {
	Phase GesturePhase
	// Translation 自手势开始以来的累计位移
	Translation Vec2
	// Velocity 当前速度（像素/秒）
	Velocity Vec2
}

// dragSession 单次拖拽的状态，只在 began 到 ended/failed 之间存在
type dragSession struct {
	origin        float64
	startPosition Position
	lastAlong     float64
	// axisGuard 为 true 时抽屉不跟随，交由嵌套视图处理；一旦确认沿主轴就永久关闭
	axisGuard bool
	conflict  *ScrollConflict
	moved     bool

	catchingUp bool
	pending    float64
	hasPending bool
}

// HandleGesture 处理一帧拖拽事件
func (d *Drawer) HandleGesture(ev GestureEvent) {
	switch ev.Phase {
	case GestureBegan:
		d.beginDrag()
	case GestureChanged:
		if d.drag == nil {
			d.beginDrag()
		}
		d.changeDrag(ev)
	case GestureEnded, GestureFailed:
		if d.drag == nil {
			return
		}
		d.endDrag(ev)
	}
}

func (d *Drawer) beginDrag() {
	if d.drag != nil {
		d.endDrag(GestureEvent{Phase: GestureFailed})
	}
	interrupted := d.active != nil
	d.cancelTransition()

	s := &dragSession{
		origin:        d.live,
		startPosition: d.current,
		axisGuard:     true,
		moved:         interrupted,
	}
	if src, ok := d.host.(ScrollableSource); ok {
		if views := src.ActiveScrollables(); len(views) > 0 {
			s.conflict = newScrollConflict(views)
		}
	}
	d.drag = s
	d.emitWillBeginDrag()
}

func (d *Drawer) changeDrag(ev GestureEvent) {
	s := d.drag
	o := d.cfg.Orientation
	along := o.Along(ev.Translation)
	motion := along - s.lastAlong
	s.lastAlong = along

	if c := s.conflict; c != nil && !c.handedOff {
		if active := c.active(); len(active) > 0 {
			if s.axisGuard {
				switch c.lock(o, active) {
				case LockUndetermined:
					if d.ambiguityWarn.allow() {
						log.Printf("[Gesture] Warning: cannot resolve directional lock for %d nested scrollable(s), skipping drawer movement", len(active))
					}
					return
				case LockAlong:
					s.axisGuard = false
				default:
					return
				}
			}

			lo, _ := d.Resolver().Bounds()
			fullyOpen := d.live <= lo+0.5
			if c.shouldScroll(active, motion, fullyOpen) {
				return
			}

			absorbed := c.handOff()
			s.origin = d.live - along + absorbed
			s.moved = true
			target := d.dampedCandidate(s.origin + along)
			if target != d.live {
				s.catchingUp = true
				d.transitionTo(target, true, transitionCatchUp, nil)
			}
			return
		}
	}

	candidate := d.dampedCandidate(s.origin + along)
	s.moved = true
	if s.catchingUp {
		s.pending = candidate
		s.hasPending = true
		return
	}
	d.applyLive(candidate)
}

// dampedCandidate 对超出吸附范围的候选偏移施加阻尼
func (d *Drawer) dampedCandidate(candidate float64) float64 {
	lo, hi := d.Resolver().Bounds()
	return DampToBounds(candidate, lo, hi, DampingFactor)
}

func (d *Drawer) endDrag(ev GestureEvent) {
	s := d.drag
	d.drag = nil
	d.emitWillEndDrag()

	if s.conflict != nil {
		defer s.conflict.restore()
		if s.conflict.stillScrolling() {
			return
		}
	}
	if !s.moved {
		return
	}

	d.cancelTransition()
	velocity := d.cfg.Orientation.Along(ev.Velocity)
	target := d.Resolver().ResolveRelease(d.live, velocity, s.startPosition, d.cfg.VelocityThreshold)
	log.Printf("[Gesture] Release at %.1f (v=%.0f) -> %s", d.live, velocity, target)
	d.setPosition(target, true)
}
