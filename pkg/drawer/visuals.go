package drawer

import (
	"fmt"
	"sort"
	"strings"
)

// Sample 插值表中的一个采样点
type Sample struct {
	Offset float64
	Value  float64
}

// Interpolate 在按偏移排序的采样点之间做分段线性插值，超出两端时取端点值
func Interpolate(samples []Sample, x float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]Sample(nil), samples...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	first, last := sorted[0], sorted[len(sorted)-1]
	if x <= first.Offset {
		return first.Value
	}
	if x >= last.Offset {
		return last.Value
	}
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if x > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span == 0 {
			return b.Value
		}
		t := (x - a.Offset) / span
		return a.Value + (b.Value-a.Value)*t
	}
	return last.Value
}

// Visuals 由当前偏移推导出的视觉参数，均在 [0, 1] 内
type Visuals struct {
	OverlayOpacity float64
	ShadowOpacity  float64
	// ChildAlpha 会被裁切的子内容的透明度；未被选中的子内容始终为 1
	ChildAlpha float64
}

// ChildFadePolicy 决定哪些子内容参与折叠淡出
type ChildFadePolicy int

const (
	// ChildFadeAutomatic 任何越过折叠线的子内容
	ChildFadeAutomatic ChildFadePolicy = iota
	// ChildFadeAllowPartial 只有完全位于折叠线之外的子内容
	ChildFadeAllowPartial
	// ChildFadeCustom 由 Config.ChildFadeFunc 提供
	ChildFadeCustom
	// ChildFadeNever 从不淡出
	ChildFadeNever
)

var childFadeNames = map[ChildFadePolicy]string{
	ChildFadeAutomatic:    "automatic",
	ChildFadeAllowPartial: "allowPartial",
	ChildFadeCustom:       "custom",
	ChildFadeNever:        "never",
}

func (p ChildFadePolicy) String() string {
	if name, ok := childFadeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ChildFadePolicy(%d)", int(p))
}

// ParseChildFadePolicy 从配置字符串解析淡出策略
func ParseChildFadePolicy(s string) (ChildFadePolicy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for p, name := range childFadeNames {
		if strings.ToLower(name) == key {
			return p, nil
		}
	}
	return ChildFadeNever, fmt.Errorf("drawer: invalid child fade policy %q", s)
}

// Fadeable 抽屉内可淡出的子内容
type Fadeable interface {
	// AxisSpan 子内容在抽屉内沿主轴的起止位置（从抽屉前沿量起）
	AxisSpan() (start, end float64)
	SetAlpha(alpha float64)
}

// ChildSource 可选宿主接口，提供抽屉内的子内容
type ChildSource interface {
	DrawerChildren() []Fadeable
}

// ChildFadeAlpha 折叠线附近子内容的透明度
//
// 偏移位于 collapsed 或更靠近 closed 时为 0；向 open 方向越过 collapsed 的距离
// 达到 inset 时为 1，中间线性变化。
func ChildFadeAlpha(live, collapsedOffset, inset float64) float64 {
	d := collapsedOffset - live
	if inset <= 0 {
		if d > 0 {
			return 1
		}
		return 0
	}
	return clamp(d/inset, 0, 1)
}

// SelectFadeChildren 按策略筛选参与淡出的子内容
func SelectFadeChildren(policy ChildFadePolicy, children []Fadeable, collapseLine float64) []Fadeable {
	var selected []Fadeable
	for _, c := range children {
		start, end := c.AxisSpan()
		switch policy {
		case ChildFadeAutomatic:
			if end > collapseLine {
				selected = append(selected, c)
			}
		case ChildFadeAllowPartial:
			if start >= collapseLine {
				selected = append(selected, c)
			}
		case ChildFadeCustom:
			selected = append(selected, c)
		}
	}
	return selected
}
