package utils

import "math"

// 缓动函数
//
// 输入进度 t ∈ [0, 1]，返回缓动后的进度。弹簧曲线允许短暂越过 1。

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// SpringStiffness 弹簧曲线在归一化时间内的固有角频率
const SpringStiffness = 12.0

// EaseSpring 返回给定阻尼比的弹簧缓动
//
// 阻尼比 < 1 时为欠阻尼振荡（少量回弹），>= 1 或 <= 0 时按临界阻尼处理。
// t >= 1 时恰好返回 1，保证动画终点精确落在目标上。
//
//	欠阻尼：f(t) = 1 - e^(-ζωt) (cos(ωd·t) + ζω/ωd · sin(ωd·t))，ωd = ω√(1-ζ²)
//	临界：  f(t) = 1 - (1 + ωt) e^(-ωt)
func EaseSpring(damping float64) func(float64) float64 {
	w := SpringStiffness
	if damping <= 0 || damping >= 1 {
		return func(t float64) float64 {
			if t >= 1 {
				return 1
			}
			if t <= 0 {
				return 0
			}
			return 1 - (1+w*t)*math.Exp(-w*t)
		}
	}
	wd := w * math.Sqrt(1-damping*damping)
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		decay := math.Exp(-damping * w * t)
		return 1 - decay*(math.Cos(wd*t)+damping*w/wd*math.Sin(wd*t))
	}
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 限制到 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
