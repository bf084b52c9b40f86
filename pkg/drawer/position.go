// Package drawer 实现可拖拽、多吸附位置的抽屉面板核心
//
// 本包只包含与渲染无关的部分：位置模型、手势解释、吸附解析、过渡动画控制和视觉插值。
// 具体的绘制、布局和输入事件来源由宿主（ebiten 场景、终端预览、回放工具）通过 Host、
// Animator 和 GestureEvent 注入。
//
// 所有方法都应在同一个线程（UI 线程）上调用，本包不做任何加锁。
package drawer

import (
	"fmt"
	"strings"
)

// Position 抽屉的离散位置
// 取值有序：Closed < Collapsed < PartiallyOpen < Open
type Position int

const (
	// PositionClosed 完全隐藏（始终隐式支持）
	PositionClosed Position = iota
	// PositionCollapsed 折叠，只露出把手区域
	PositionCollapsed
	// PositionPartiallyOpen 半展开
	PositionPartiallyOpen
	// PositionOpen 完全展开
	PositionOpen
)

// AllPositions 按序列出全部位置
var AllPositions = []Position{PositionClosed, PositionCollapsed, PositionPartiallyOpen, PositionOpen}

var positionNames = map[Position]string{
	PositionClosed:        "closed",
	PositionCollapsed:     "collapsed",
	PositionPartiallyOpen: "partiallyOpen",
	PositionOpen:          "open",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Valid 检查位置是否是已定义的取值
func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// ParsePosition 从配置字符串解析位置（不区分大小写，允许 "partial" 简写）
func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "partial", "partially_open", "partially-open":
		return PositionPartiallyOpen, nil
	}
	for p, name := range positionNames {
		if strings.ToLower(name) == key {
			return p, nil
		}
	}
	return PositionClosed, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// Orientation 抽屉贴靠的容器边缘
type Orientation int

const (
	OrientationBottom Orientation = iota
	OrientationTop
	OrientationLeft
	OrientationRight
)

var orientationNames = map[Orientation]string{
	OrientationBottom: "bottom",
	OrientationTop:    "top",
	OrientationLeft:   "left",
	OrientationRight:  "right",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation 从配置字符串解析方向
func ParseOrientation(s string) (Orientation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for o, name := range orientationNames {
		if name == key {
			return o, nil
		}
	}
	return OrientationBottom, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// Vec2 宿主坐标系下的二维向量（像素或像素/秒）
type Vec2 struct {
	X, Y float64
}

// axisTransform 描述某个方向的主轴与符号
//
// 轴空间偏移量的约定：0 表示容器远离贴靠边的一侧，containerExtent 表示贴靠边本身。
// 因此所有方向上 closed 的偏移都是最大值，open 的偏移最小。
// sign 把宿主坐标的增量换算成轴空间增量（正值 = 朝 closed 方向）。
type axisTransform struct {
	horizontal bool
	sign       float64
}

var axisTable = map[Orientation]axisTransform{
	OrientationBottom: {horizontal: false, sign: 1},
	OrientationTop:    {horizontal: false, sign: -1},
	OrientationLeft:   {horizontal: true, sign: -1},
	OrientationRight:  {horizontal: true, sign: 1},
}

func (o Orientation) axis() axisTransform {
	if t, ok := axisTable[o]; ok {
		return t
	}
	return axisTable[OrientationBottom]
}

// Horizontal 主轴是否为水平方向
func (o Orientation) Horizontal() bool {
	return o.axis().horizontal
}

// Along 把宿主坐标向量投影到主轴（轴空间，正值朝 closed）
func (o Orientation) Along(v Vec2) float64 {
	t := o.axis()
	if t.horizontal {
		return v.X * t.sign
	}
	return v.Y * t.sign
}

// Across 返回与主轴垂直的分量（不带符号修正）
func (o Orientation) Across(v Vec2) float64 {
	if o.axis().horizontal {
		return v.Y
	}
	return v.X
}

// ToHost 把轴空间偏移换算为宿主坐标中抽屉前沿的位置
//
// bottom/right：前沿坐标 = offset
// top/left：前沿坐标 = containerExtent - offset
func (o Orientation) ToHost(offset, containerExtent float64) float64 {
	if o.axis().sign > 0 {
		return offset
	}
	return containerExtent - offset
}
