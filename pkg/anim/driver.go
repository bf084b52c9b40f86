// Package anim 提供按帧推进的补间动画驱动器
//
// Driver 实现 drawer.Animator：宿主在每个 tick 调用 Update(deltaTime)，
// 动画在两次 tick 之间"挂起"，全部在同一线程上执行。
package anim

import (
	"log"
	"time"

	"github.com/decker502/snapdrawer/pkg/drawer"
	"github.com/decker502/snapdrawer/pkg/utils"
)

// Tween 一个正在进行的补间
type Tween struct {
	spec     drawer.AnimationSpec
	ease     func(float64) float64
	elapsed  float64
	value    float64
	finished bool
	update   func(float64)
	done     func(bool)
}

// Value 最近一次渲染的插值
func (t *Tween) Value() float64 { return t.value }

// Finished 是否已经结束（完成或取消）
func (t *Tween) Finished() bool { return t.finished }

// Cancel 中止补间，返回中止时刻的插值
func (t *Tween) Cancel() float64 {
	if t.finished {
		return t.value
	}
	t.finished = true
	if t.done != nil {
		t.done(false)
	}
	return t.value
}

// step 推进 dt 秒，返回是否已结束
func (t *Tween) step(dt float64) bool {
	if t.finished {
		return true
	}
	t.elapsed += dt
	duration := t.spec.Duration.Seconds()
	progress := 1.0
	if duration > 0 {
		progress = t.elapsed / duration
	}
	if progress >= 1 {
		t.value = t.spec.To
		t.finished = true
		if t.update != nil {
			t.update(t.value)
		}
		if t.done != nil {
			t.done(true)
		}
		return true
	}
	t.value = utils.Lerp(t.spec.From, t.spec.To, t.ease(progress))
	if t.update != nil {
		t.update(t.value)
	}
	return false
}

// Driver 补间调度器
type Driver struct {
	tweens []*Tween
}

// NewDriver 创建驱动器
func NewDriver() *Driver {
	return &Driver{}
}

// Animate 实现 drawer.Animator
func (d *Driver) Animate(spec drawer.AnimationSpec, update func(float64), done func(bool)) drawer.Animation {
	t := &Tween{
		spec:   spec,
		ease:   easingFor(spec),
		value:  spec.From,
		update: update,
		done:   done,
	}
	d.tweens = append(d.tweens, t)
	log.Printf("[Animator] Start %.1f -> %.1f over %v", spec.From, spec.To, spec.Duration.Round(time.Millisecond))
	return t
}

// Update 推进所有补间，deltaTime 单位为秒
func (d *Driver) Update(deltaTime float64) {
	if len(d.tweens) == 0 {
		return
	}
	// 回调中可能启动新的补间，先对当前列表做快照
	current := append([]*Tween(nil), d.tweens...)
	for _, t := range current {
		t.step(deltaTime)
	}
	alive := d.tweens[:0]
	for _, t := range d.tweens {
		if !t.finished {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(d.tweens); i++ {
		d.tweens[i] = nil
	}
	d.tweens = alive
}

// Active 正在进行的补间数量
func (d *Driver) Active() int {
	n := 0
	for _, t := range d.tweens {
		if !t.finished {
			n++
		}
	}
	return n
}

// Settle 一直推进直到所有补间结束，返回推进的帧数；maxFrames 防止死循环
func (d *Driver) Settle(deltaTime float64, maxFrames int) int {
	frames := 0
	for d.Active() > 0 && frames < maxFrames {
		d.Update(deltaTime)
		frames++
	}
	return frames
}

func easingFor(spec drawer.AnimationSpec) func(float64) float64 {
	switch spec.Curve {
	case drawer.CurveEaseOut:
		return utils.EaseOutCubic
	default:
		return utils.EaseSpring(spec.Damping)
	}
}
