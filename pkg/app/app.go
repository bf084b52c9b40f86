// Package app 提供抽屉演示应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/snapdrawer/pkg/anim"
	"github.com/decker502/snapdrawer/pkg/config"
	"github.com/decker502/snapdrawer/pkg/drawer"
	"github.com/decker502/snapdrawer/pkg/store"
	"github.com/decker502/snapdrawer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 存储相关常量
const (
	AppName  = "snapdrawer"
	StoreKey = "demo"
)

// ListRows 演示列表的行数
const ListRows = 30

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 抽屉配置文件（.yaml/.yml/.toml），为空使用默认配置
	ConfigPath string
	// Position 覆盖初始位置（如 "open"），为空使用配置或存档
	Position string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	drawer  *drawer.Drawer
	host    *screenHost
	list    *ScrollList
	driver  *anim.Driver
	tracker *utils.GestureTracker

	lastTranslation drawer.Vec2
	verbose         bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fileCfg := config.DefaultDrawerConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadDrawerConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("抽屉配置加载失败: %w", err)
		}
		fileCfg = *loaded
		log.Printf("[Config] Loaded drawer config from %s", cfg.ConfigPath)
	}
	drawerCfg, err := fileCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("抽屉配置无效: %w", err)
	}

	var positions *store.PositionStore
	if fileCfg.PersistPosition {
		manager, err := store.OpenManager(AppName)
		if err != nil {
			log.Printf("[App] Warning: %v (positions kept in memory)", err)
		}
		positions = store.NewPositionStore(manager)
		positions.Restore(StoreKey, &drawerCfg)
	}
	if cfg.Position != "" {
		p, err := drawer.ParsePosition(cfg.Position)
		if err != nil {
			return nil, err
		}
		drawerCfg.InitialPosition = p
	}

	driver := anim.NewDriver()
	d, err := drawer.New(drawerCfg, driver)
	if err != nil {
		return nil, fmt.Errorf("抽屉创建失败: %w", err)
	}
	if positions != nil {
		d.AddObserver(&store.Recorder{Store: positions, Key: StoreKey})
	}

	var list *ScrollList
	if drawerCfg.Orientation == drawer.OrientationBottom {
		list = NewScrollList(ListRows)
	}
	host := newScreenHost(ScreenWidth, ScreenHeight, drawerCfg.Orientation, utils.SafeAreaInset(), list)
	if err := d.Attach(host); err != nil {
		return nil, err
	}

	a := &App{
		drawer:  d,
		host:    host,
		list:    list,
		driver:  driver,
		tracker: utils.NewGestureTracker(ebitenPointerSource{}),
		verbose: cfg.Verbose,
	}
	d.AddObserver(&drawer.ObserverFuncs{
		WillTransition: func(_ *drawer.Drawer, from, to drawer.Position) {
			log.Printf("[App] Drawer will move %s -> %s", from, to)
		},
		DidTransition: func(_ *drawer.Drawer, to drawer.Position) {
			log.Printf("[App] Drawer rests at %s", to)
		},
	})
	log.Printf("[App] Drawer ready (%s, %v)", drawerCfg.Orientation, drawerCfg.SnapSet)
	return a, nil
}

// Drawer 返回演示中的抽屉
func (a *App) Drawer() *drawer.Drawer { return a.drawer }

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.updateWindow()
	a.handleKeys()

	deltaTime := 1.0 / 60.0
	a.handlePointer(a.tracker.Update(deltaTime))
	a.driver.Update(deltaTime)
	return nil
}

func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

var positionKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// handleKeys 1-4 切换位置，C 切换隐藏，Esc 中止拖拽
func (a *App) handleKeys() {
	for i, key := range positionKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := a.drawer.SetPosition(drawer.AllPositions[i], true); err != nil {
				log.Printf("[App] %v", err)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.drawer.SetConcealed(!a.drawer.Concealed(), true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.tracker.Cancel()
	}
}

// handlePointer 把跟踪器输出分发给抽屉和列表
func (a *App) handlePointer(ev utils.PointerEvent) {
	switch ev.Kind {
	case utils.PointerTap:
		if !a.host.panelRect().Contains(ev.Origin) {
			a.drawer.TapOverlay()
		}
	case utils.PointerDrag:
		g := ev.Gesture
		if g.Phase == drawer.GestureBegan {
			a.lastTranslation = drawer.Vec2{}
			if a.list != nil {
				a.list.Track(a.host.listRect().Contains(ev.Origin))
			}
		}
		if a.list != nil {
			a.list.SetTranslation(g.Translation)
		}
		a.drawer.HandleGesture(g)
		if a.list != nil && a.list.Tracking() {
			// 抽屉交接时会先禁用列表滚动
			a.list.ScrollBy(g.Translation.Y - a.lastTranslation.Y)
		}
		a.lastTranslation = g.Translation
		if g.Phase == drawer.GestureEnded || g.Phase == drawer.GestureFailed {
			if a.list != nil {
				a.list.Track(false)
			}
		}
	}
}

var (
	backgroundColor = color.RGBA{R: 236, G: 239, B: 241, A: 255}
	panelColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	handleColor     = color.RGBA{R: 176, G: 190, B: 197, A: 255}
	rowColor        = color.RGBA{R: 207, G: 216, B: 220, A: 255}
)

// shadowSize 面板前沿外侧阴影的宽度
const shadowSize = 12

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	ebitenutil.DebugPrintAt(screen, "1-4: closed/collapsed/partial/open  C: conceal  F11: fullscreen", 8, 8)

	v := a.host.visuals
	w, h := float32(a.host.width), float32(a.host.height)
	if v.OverlayOpacity > 0 {
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: uint8(v.OverlayOpacity * 160)}, false)
	}

	p := a.host.panelRect()
	if p.W <= 0 || p.H <= 0 {
		return
	}
	if v.ShadowOpacity > 0 {
		s := a.shadowRect(p)
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H),
			color.RGBA{A: uint8(v.ShadowOpacity * 255)}, false)
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), panelColor, false)

	status := fmt.Sprintf("%s  ext=%.0f", a.drawer.VisiblePosition(), a.drawer.Extension())
	if a.list == nil {
		ebitenutil.DebugPrintAt(screen, status, int(p.X)+8, int(p.Y)+8)
		return
	}

	header := a.list.Header()
	vector.DrawFilledRect(screen, float32(p.X+p.W/2-24), float32(p.Y+8), 48, 4, fade(handleColor, header.Alpha), false)
	ebitenutil.DebugPrintAt(screen, status, int(p.X)+8, int(p.Y)+20)

	lr := a.host.listRect()
	if lr.H <= 0 {
		return
	}
	clip := screen.SubImage(rectToImage(lr)).(*ebiten.Image)
	for _, row := range a.list.Rows() {
		start, end := row.AxisSpan()
		y := p.Y + start
		if p.Y+end < lr.Y || y > lr.Y+lr.H {
			continue
		}
		vector.DrawFilledRect(clip, float32(lr.X+8), float32(y+2), float32(lr.W-16), RowHeight-4, fade(rowColor, row.Alpha), false)
		if row.Alpha > 0.5 {
			ebitenutil.DebugPrintAt(clip, row.Label, int(lr.X)+16, int(y)+14)
		}
	}
}

func (a *App) shadowRect(p Rect) Rect {
	switch a.host.orientation {
	case drawer.OrientationTop:
		return Rect{X: p.X, Y: p.Y + p.H, W: p.W, H: shadowSize}
	case drawer.OrientationLeft:
		return Rect{X: p.X + p.W, Y: p.Y, W: shadowSize, H: p.H}
	case drawer.OrientationRight:
		return Rect{X: p.X - shadowSize, Y: p.Y, W: shadowSize, H: p.H}
	default:
		return Rect{X: p.X, Y: p.Y - shadowSize, W: p.W, H: shadowSize}
	}
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕跟随窗口尺寸，尺寸变化时重新布局抽屉
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		a.host.resize(float64(outsideWidth), float64(outsideHeight)) {
		a.drawer.Layout()
	}
	return int(a.host.width), int(a.host.height)
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
