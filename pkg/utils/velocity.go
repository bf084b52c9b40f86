package utils

import "github.com/decker502/snapdrawer/pkg/drawer"

// VelocityWindow 速度估计使用的时间窗口（秒）
const VelocityWindow = 0.1

type velocitySample struct {
	t   float64
	pos drawer.Vec2
}

// VelocityTracker 用最近一段时间内的采样估计指针速度
type VelocityTracker struct {
	samples []velocitySample
}

// Reset 清空采样
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add 添加一个采样，t 为单调递增的时间（秒）
func (v *VelocityTracker) Add(t float64, pos drawer.Vec2) {
	v.samples = append(v.samples, velocitySample{t: t, pos: pos})
	cutoff := t - VelocityWindow
	i := 0
	for i < len(v.samples)-1 && v.samples[i].t < cutoff {
		i++
	}
	if i > 0 {
		v.samples = append(v.samples[:0], v.samples[i:]...)
	}
}

// Velocity 返回窗口内首尾采样之间的平均速度（像素/秒）
func (v *VelocityTracker) Velocity() drawer.Vec2 {
	if len(v.samples) < 2 {
		return drawer.Vec2{}
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.t - first.t
	if dt <= 0 {
		return drawer.Vec2{}
	}
	return drawer.Vec2{
		X: (last.pos.X - first.pos.X) / dt,
		Y: (last.pos.Y - first.pos.Y) / dt,
	}
}
