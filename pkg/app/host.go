package app

import (
	"image"

	"github.com/decker502/snapdrawer/pkg/drawer"
)

// 桌面端默认逻辑屏幕尺寸（竖屏）
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

// Rect 屏幕坐标矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 点是否在矩形内
func (r Rect) Contains(p drawer.Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// screenHost 把抽屉放在整个逻辑屏幕上的宿主
//
// 实现 drawer.Host 以及 SafeAreaProvider、DeclaredInsetProvider、VisualsSink、
// ScrollableSource、ChildSource 可选接口。
type screenHost struct {
	width, height float64
	orientation   drawer.Orientation
	safeArea      float64

	offset  float64
	visuals drawer.Visuals
	list    *ScrollList
}

func newScreenHost(width, height float64, o drawer.Orientation, safeArea float64, list *ScrollList) *screenHost {
	return &screenHost{width: width, height: height, orientation: o, safeArea: safeArea, list: list}
}

func (h *screenHost) ContainerExtent() float64 {
	if h.orientation.Horizontal() {
		return h.width
	}
	return h.height
}

func (h *screenHost) SetDrawerOffset(v float64) {
	h.offset = v
	if h.list != nil {
		h.list.SetViewport(h.extension() - HeaderHeight)
	}
}

func (h *screenHost) SafeAreaInset() float64       { return h.safeArea }
func (h *screenHost) EdgeGap() float64             { return 0 }
func (h *screenHost) DeclaredInset() float64       { return h.safeArea }
func (h *screenHost) ApplyVisuals(v drawer.Visuals) { h.visuals = v }

func (h *screenHost) ActiveScrollables() []drawer.Scrollable {
	if h.list == nil || !h.list.Tracking() {
		return nil
	}
	return []drawer.Scrollable{h.list}
}

func (h *screenHost) DrawerChildren() []drawer.Fadeable {
	if h.list == nil {
		return nil
	}
	return h.list.Children()
}

// resize 更新屏幕尺寸，返回尺寸是否变化
func (h *screenHost) resize(width, height float64) bool {
	if h.width == width && h.height == height {
		return false
	}
	h.width, h.height = width, height
	return true
}

// extension 抽屉露出的长度
func (h *screenHost) extension() float64 {
	switch h.orientation {
	case drawer.OrientationBottom:
		return h.height - h.offset
	case drawer.OrientationRight:
		return h.width - h.offset
	default:
		return h.offset
	}
}

// panelRect 抽屉面板在屏幕上的区域
func (h *screenHost) panelRect() Rect {
	ext := h.extension()
	switch h.orientation {
	case drawer.OrientationTop:
		return Rect{X: 0, Y: 0, W: h.width, H: ext}
	case drawer.OrientationLeft:
		return Rect{X: 0, Y: 0, W: ext, H: h.height}
	case drawer.OrientationRight:
		return Rect{X: h.offset, Y: 0, W: ext, H: h.height}
	default:
		return Rect{X: 0, Y: h.offset, W: h.width, H: ext}
	}
}

// listRect 列表区域，只有底部抽屉带列表
func (h *screenHost) listRect() Rect {
	if h.list == nil || h.orientation != drawer.OrientationBottom {
		return Rect{}
	}
	p := h.panelRect()
	return Rect{X: p.X, Y: p.Y + HeaderHeight, W: p.W, H: p.H - HeaderHeight}
}

func rectToImage(r Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}
