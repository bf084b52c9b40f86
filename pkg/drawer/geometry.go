package drawer

import (
	"fmt"
	"strings"
	"time"
)

// InsetMode 决定 inset（安全区等保留边距）的来源
type InsetMode int

const (
	// InsetAutomatic 安全区 inset 减去容器与屏幕边缘之间已有的间隙
	InsetAutomatic InsetMode = iota
	// InsetDeclared 使用容器自己声明的 inset
	InsetDeclared
	// InsetFixed 使用固定常量 Config.FixedInset
	InsetFixed
	// InsetExternal 每次计算时调用 Config.InsetFunc
	InsetExternal
	// InsetNone 不保留边距
	InsetNone
)

var insetModeNames = map[InsetMode]string{
	InsetAutomatic: "automatic",
	InsetDeclared:  "declared",
	InsetFixed:     "fixed",
	InsetExternal:  "external",
	InsetNone:      "none",
}

func (m InsetMode) String() string {
	if name, ok := insetModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("InsetMode(%d)", int(m))
}

// ParseInsetMode 从配置字符串解析 inset 模式
func ParseInsetMode(s string) (InsetMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range insetModeNames {
		if name == key {
			return m, nil
		}
	}
	return InsetNone, fmt.Errorf("drawer: invalid inset mode %q", s)
}

// 默认参数
const (
	DefaultCollapsedExtent     = 68.0
	DefaultPartiallyOpenExtent = 264.0
	DefaultShadowOpacity       = 0.1
	DefaultVelocityThreshold   = 500.0
	DefaultAnimationDuration   = 500 * time.Millisecond
	DefaultCatchUpDuration     = 200 * time.Millisecond
	DefaultSpringDamping       = 0.75
)

// Config 抽屉配置
type Config struct {
	Orientation Orientation
	// SnapSet 用户可以停靠的位置；closed 不在其中时仍可通过 SetPosition 到达
	SnapSet []Position

	// 各位置露出的长度（沿主轴）；OpenExtent 同样是长度而非留白，<= 0 表示铺满容器（扣除 inset）
	CollapsedExtent     float64
	PartiallyOpenExtent float64
	OpenExtent          float64

	InsetMode  InsetMode
	FixedInset float64
	InsetFunc  func() float64

	OverlayEnabled    bool
	OverlayTapDismiss bool
	ShadowEnabled     bool
	ShadowOpacity     float64

	ChildFade     ChildFadePolicy
	ChildFadeFunc func() []Fadeable

	// VelocityThreshold 松手速度超过该值（像素/秒）时允许越过一个吸附位置
	VelocityThreshold float64
	AnimationDuration time.Duration
	CatchUpDuration   time.Duration
	SpringDamping     float64

	InitialPosition Position

	// Clock 用于告警节流，测试中可替换
	Clock func() time.Time
}

// DefaultConfig 返回底部抽屉的默认配置
func DefaultConfig() Config {
	return Config{
		Orientation:         OrientationBottom,
		SnapSet:             []Position{PositionCollapsed, PositionPartiallyOpen, PositionOpen},
		CollapsedExtent:     DefaultCollapsedExtent,
		PartiallyOpenExtent: DefaultPartiallyOpenExtent,
		InsetMode:           InsetAutomatic,
		OverlayEnabled:      true,
		OverlayTapDismiss:   true,
		ShadowEnabled:       true,
		ShadowOpacity:       DefaultShadowOpacity,
		ChildFade:           ChildFadeAutomatic,
		VelocityThreshold:   DefaultVelocityThreshold,
		AnimationDuration:   DefaultAnimationDuration,
		CatchUpDuration:     DefaultCatchUpDuration,
		SpringDamping:       DefaultSpringDamping,
		InitialPosition:     PositionCollapsed,
		Clock:               time.Now,
	}
}

// Host 宿主提供的最小几何接口
type Host interface {
	// ContainerExtent 容器沿主轴的长度
	ContainerExtent() float64
	// SetDrawerOffset 设置抽屉前沿在宿主坐标中的位置
	SetDrawerOffset(hostOffset float64)
}

// SafeAreaProvider 可选接口，InsetAutomatic 模式使用
type SafeAreaProvider interface {
	// SafeAreaInset 贴靠边一侧的安全区
	SafeAreaInset() float64
	// EdgeGap 容器贴靠边与屏幕边缘之间的距离
	EdgeGap() float64
}

// DeclaredInsetProvider 可选接口，InsetDeclared 模式使用
type DeclaredInsetProvider interface {
	DeclaredInset() float64
}

// ScrollableSource 可选接口，返回当前与抽屉手势同时活动的嵌套滚动视图
type ScrollableSource interface {
	ActiveScrollables() []Scrollable
}

// VisualsSink 可选接口，接收遮罩、阴影和子内容透明度
type VisualsSink interface {
	ApplyVisuals(v Visuals)
}

// SnapOffset 计算某个位置在轴空间中的偏移
//
// closed 忽略 inset，始终等于 containerExtent；其余位置为
// containerExtent - inset - extent(position)，并限制在 [0, containerExtent] 内。
//
// OpenExtent 是 open 时露出的长度，不是距离远端的留白：留白 m 对应
// OpenExtent = containerExtent - inset - m。OpenExtent <= 0 表示铺满，即留白为 0。
func (c *Config) SnapOffset(p Position, containerExtent, inset float64) float64 {
	if p == PositionClosed {
		return containerExtent
	}
	var extent float64
	switch p {
	case PositionCollapsed:
		extent = c.CollapsedExtent
	case PositionPartiallyOpen:
		extent = c.PartiallyOpenExtent
	case PositionOpen:
		extent = c.OpenExtent
		if extent <= 0 {
			extent = containerExtent - inset
		}
	}
	return clamp(containerExtent-inset-extent, 0, containerExtent)
}

// resolveInset 按模式计算当前 inset，缺失的宿主能力一律按 0 处理
func (c *Config) resolveInset(host Host) float64 {
	var inset float64
	switch c.InsetMode {
	case InsetAutomatic:
		if p, ok := host.(SafeAreaProvider); ok {
			inset = p.SafeAreaInset() - p.EdgeGap()
		}
	case InsetDeclared:
		if p, ok := host.(DeclaredInsetProvider); ok {
			inset = p.DeclaredInset()
		}
	case InsetFixed:
		inset = c.FixedInset
	case InsetExternal:
		if c.InsetFunc != nil {
			inset = c.InsetFunc()
		}
	}
	if inset < 0 {
		return 0
	}
	return inset
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
