package app

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenPointerSource 从 Ebitengine 读取指针状态，实现 utils.PointerSource
//
// 优先使用第一个活动触摸点，没有触摸时使用鼠标左键。
type ebitenPointerSource struct{}

func (ebitenPointerSource) PointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}
