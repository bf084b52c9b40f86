package drawer

import (
	"fmt"
	"math"
	"sort"
)

// SnapSet 用户可停靠的位置集合，保持输入顺序（去重）
//
// 输入顺序用于最近位置相等时的决胜。
type SnapSet []Position

// NewSnapSet 校验并去重
func NewSnapSet(positions ...Position) (SnapSet, error) {
	if len(positions) == 0 {
		return nil, ErrEmptySnapSet
	}
	set := make(SnapSet, 0, len(positions))
	for _, p := range positions {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, int(p))
		}
		if !set.Contains(p) {
			set = append(set, p)
		}
	}
	return set, nil
}

// Contains 集合中是否包含 p
func (s SnapSet) Contains(p Position) bool {
	for _, q := range s {
		if q == p {
			return true
		}
	}
	return false
}

// MostClosed 返回集合中最接近 closed 的位置
func (s SnapSet) MostClosed() Position {
	if len(s) == 0 {
		return PositionClosed
	}
	best := s[0]
	for _, p := range s[1:] {
		if p < best {
			best = p
		}
	}
	return best
}

// MostOpen 返回集合中最接近 open 的位置
func (s SnapSet) MostOpen() Position {
	if len(s) == 0 {
		return PositionClosed
	}
	best := s[0]
	for _, p := range s[1:] {
		if p > best {
			best = p
		}
	}
	return best
}

// SnapPoint 一个位置与它的轴空间偏移
type SnapPoint struct {
	Position Position
	Offset   float64
}

// Resolver 在一组吸附点上解析目标位置
type Resolver struct {
	points []SnapPoint
}

// NewResolver 按集合顺序计算每个位置的偏移
func NewResolver(set SnapSet, offset func(Position) float64) Resolver {
	points := make([]SnapPoint, 0, len(set))
	for _, p := range set {
		points = append(points, SnapPoint{Position: p, Offset: offset(p)})
	}
	return Resolver{points: points}
}

// Points 按集合顺序返回吸附点
func (r Resolver) Points() []SnapPoint {
	return append([]SnapPoint(nil), r.points...)
}

// Nearest 返回偏移最接近 offset 的位置，距离相等时取集合中靠前的
func (r Resolver) Nearest(offset float64) Position {
	if len(r.points) == 0 {
		return PositionClosed
	}
	best := r.points[0]
	bestDist := math.Abs(best.Offset - offset)
	for _, pt := range r.points[1:] {
		if d := math.Abs(pt.Offset - offset); d < bestDist {
			best, bestDist = pt, d
		}
	}
	return best.Position
}

// Descending 按偏移从大到小（closed 一侧在前）排列的吸附点
//
// 偏移相同（容器过短被截断或尚未挂载）时按位置序号排列，closed 一侧在前。
func (r Resolver) Descending() []SnapPoint {
	sorted := r.Points()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset > sorted[j].Offset
		}
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}

// Bounds 返回吸附点偏移的最小值和最大值
func (r Resolver) Bounds() (lo, hi float64) {
	if len(r.points) == 0 {
		return 0, 0
	}
	lo, hi = r.points[0].Offset, r.points[0].Offset
	for _, pt := range r.points[1:] {
		lo = math.Min(lo, pt.Offset)
		hi = math.Max(hi, pt.Offset)
	}
	return lo, hi
}

// ResolveRelease 结合松手速度解析拖拽结束后的目标位置
//
// 参数：
//   - live: 当前轴空间偏移
//   - velocity: 轴空间速度（像素/秒，正值朝 closed）
//   - start: 拖拽开始时的位置
//   - threshold: 允许越级的最小速度
//
// 预测偏移 = live + velocity/100，取最近位置；若结果仍是起始位置且速度超过阈值，
// 则沿速度方向再前进一个吸附点（不存在则保持）。
func (r Resolver) ResolveRelease(live, velocity float64, start Position, threshold float64) Position {
	target := r.Nearest(live + velocity/100)
	if target != start || math.Abs(velocity) <= threshold {
		return target
	}
	desc := r.Descending()
	idx := indexOf(desc, target)
	if idx < 0 {
		return target
	}
	next := idx + 1
	if velocity > 0 {
		next = idx - 1
	}
	if next < 0 || next >= len(desc) {
		return target
	}
	return desc[next].Position
}

// StepTowardClosed 返回比 current 更接近 closed 的相邻吸附位置
func (r Resolver) StepTowardClosed(current Position) (Position, bool) {
	desc := r.Descending()
	idx := indexOf(desc, current)
	if idx <= 0 {
		return current, false
	}
	return desc[idx-1].Position, true
}

func indexOf(points []SnapPoint, p Position) int {
	for i, pt := range points {
		if pt.Position == p {
			return i
		}
	}
	return -1
}
