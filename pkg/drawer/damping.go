package drawer

import "math"

// DampingFactor 越界阻尼系数
const DampingFactor = 20.0

// Damp 越界阻尼曲线
//
// damp(x) = f * (log10(x + f/ln10) - log10(f/ln10))
// damp(0) = 0，在 0 处斜率为 1，之后单调递增且增长越来越慢。
func Damp(excess, factor float64) float64 {
	if excess <= 0 {
		return 0
	}
	k := factor / math.Ln10
	return factor * (math.Log10(excess+k) - math.Log10(k))
}

// DampToBounds 把超出 [lo, hi] 的部分替换为阻尼后的距离
func DampToBounds(candidate, lo, hi, factor float64) float64 {
	switch {
	case candidate > hi:
		return hi + Damp(candidate-hi, factor)
	case candidate < lo:
		return lo - Damp(lo-candidate, factor)
	default:
		return candidate
	}
}
