package drawer

import (
	"log"
	"time"
)

// Curve 过渡缓动曲线
type Curve int

const (
	// CurveSpring 高阻尼弹簧，用于位置之间的过渡
	CurveSpring Curve = iota
	// CurveEaseOut 快速缓出，用于滚动交接时的追赶
	CurveEaseOut
)

// AnimationSpec 一次插值动画的参数
type AnimationSpec struct {
	From, To float64
	Duration time.Duration
	Curve    Curve
	// Damping 弹簧阻尼比，仅 CurveSpring 使用
	Damping float64
}

// Animation 正在进行的动画句柄
type Animation interface {
	// Cancel 中止动画并返回中止时刻的实际插值；done 回调以 finished=false 调用
	Cancel() float64
}

// Animator 动画驱动器，由宿主提供（例如按帧推进的 anim.Driver）
//
// update 在每一帧收到插值；done 在动画结束或被取消时恰好调用一次。
type Animator interface {
	Animate(spec AnimationSpec, update func(value float64), done func(finished bool)) Animation
}

type transitionKind int

const (
	transitionPosition transitionKind = iota
	transitionCatchUp
)

// transition 单槽过渡：任意时刻最多一个
type transition struct {
	kind   transitionKind
	target float64
	handle Animation
	onDone func()
}

// transitionTo 从当前偏移过渡到 target
//
// 启动前会先取消并对齐已有过渡；非动画或没有驱动器时立即生效。
func (d *Drawer) transitionTo(target float64, animated bool, kind transitionKind, onDone func()) {
	d.cancelTransition()

	duration := d.cfg.AnimationDuration
	curve := CurveSpring
	if kind == transitionCatchUp {
		duration = d.cfg.CatchUpDuration
		curve = CurveEaseOut
	}

	if !animated || d.animator == nil || duration <= 0 || d.live == target {
		d.applyLive(target)
		d.settle(kind)
		if onDone != nil {
			onDone()
		}
		return
	}

	t := &transition{kind: kind, target: target, onDone: onDone}
	d.active = t
	spec := AnimationSpec{
		From:     d.live,
		To:       target,
		Duration: duration,
		Curve:    curve,
		Damping:  d.cfg.SpringDamping,
	}
	handle := d.animator.Animate(spec,
		func(v float64) {
			if d.active == t {
				d.applyLive(v)
			}
		},
		func(finished bool) {
			if d.active != t {
				return
			}
			d.active = nil
			if !finished {
				return
			}
			target := t.target
			if kind == transitionPosition {
				// 过渡期间容器可能变化，按当前几何落位
				target = d.SnapOffset(d.VisiblePosition())
			}
			d.applyLive(target)
			d.settle(kind)
			if onDone != nil {
				onDone()
			}
		})
	if d.active == t {
		t.handle = handle
	}
}

// cancelTransition 取消正在进行的过渡，并把偏移对齐到动画被打断时的实际值
func (d *Drawer) cancelTransition() {
	t := d.active
	if t == nil {
		return
	}
	d.active = nil
	if t.handle == nil {
		return
	}
	v := t.handle.Cancel()
	log.Printf("[Drawer] Transition interrupted at %.1f (target %.1f)", v, t.target)
	d.applyLive(v)
	if t.kind == transitionCatchUp && d.drag != nil {
		d.drag.catchingUp = false
	}
}

// settle 过渡结束后的收尾
func (d *Drawer) settle(kind transitionKind) {
	d.updateVisuals()
	if kind == transitionCatchUp && d.drag != nil {
		d.drag.catchingUp = false
		if d.drag.hasPending {
			d.drag.hasPending = false
			d.applyLive(d.drag.pending)
		}
	}
}
