// Package preview 在终端中预览抽屉行为
//
// 鼠标拖拽移动抽屉，1-4 切换位置，c 切换隐藏，o 模拟点击遮罩，q 退出。
package preview

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/snapdrawer/pkg/anim"
	"github.com/decker502/snapdrawer/pkg/drawer"
	"github.com/decker502/snapdrawer/pkg/utils"
)

// FrameInterval 动画帧间隔
const FrameInterval = time.Second / 60

// 默认终端尺寸，收到 WindowSizeMsg 之前使用
const (
	defaultCols = 80
	defaultRows = 24
)

var (
	handleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle  = lipgloss.NewStyle().Bold(true)
	panelStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})
	overlayStyle = lipgloss.NewStyle().Faint(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	shadowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// pointerState 最近一次鼠标事件，实现 utils.PointerSource
type pointerState struct {
	pressed bool
	x, y    int
}

func (p *pointerState) PointerState() (bool, int, int) {
	return p.pressed, int(float64(p.x) * CellWidth), int(float64(p.y) * CellHeight)
}

// Model bubbletea 模型
type Model struct {
	drawer  *drawer.Drawer
	driver  *anim.Driver
	host    *termHost
	list    *viewportList
	pointer *pointerState
	tracker *utils.GestureTracker

	lastTranslation drawer.Vec2
}

// New 创建预览模型；只支持底部抽屉，其它方向按底部处理
func New(cfg drawer.Config) (*Model, error) {
	cfg.Orientation = drawer.OrientationBottom

	var lines []string
	for i := 1; i <= 60; i++ {
		lines = append(lines, fmt.Sprintf("  item %02d", i))
	}
	list := newViewportList(strings.Join(lines, "\n"))
	host := &termHost{cols: defaultCols, rows: defaultRows, list: list}

	driver := anim.NewDriver()
	d, err := drawer.New(cfg, driver)
	if err != nil {
		return nil, err
	}
	if err := d.Attach(host); err != nil {
		return nil, err
	}

	pointer := &pointerState{}
	return &Model{
		drawer:  d,
		driver:  driver,
		host:    host,
		list:    list,
		pointer: pointer,
		tracker: utils.NewGestureTracker(pointer),
	}, nil
}

// Drawer 预览中的抽屉
func (m *Model) Drawer() *drawer.Drawer { return m.drawer }

// Run 启动全屏预览
func Run(cfg drawer.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return frame()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.cols, m.host.rows = msg.Width, msg.Height-1
		m.drawer.Layout()
		m.host.list.resize(m.host.cols, m.host.panelRows()-1)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "2", "3", "4":
			p := drawer.AllPositions[msg.String()[0]-'1']
			if err := m.drawer.SetPosition(p, true); err != nil {
				log.Printf("[Preview] %v", err)
			}
		case "c":
			m.drawer.SetConcealed(!m.drawer.Concealed(), true)
		case "o":
			m.drawer.TapOverlay()
		case "esc":
			m.tracker.Cancel()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		m.step(FrameInterval.Seconds())
		return m, frame()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && m.list.enabled:
		m.list.scrollBy(CellHeight)
	case msg.Button == tea.MouseButtonWheelDown && m.list.enabled:
		m.list.scrollBy(-CellHeight)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pointer.pressed = true
		m.pointer.x, m.pointer.y = msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion:
		m.pointer.x, m.pointer.y = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.pointer.pressed = false
		m.pointer.x, m.pointer.y = msg.X, msg.Y
	}
}

// step 推进一帧：分发手势，再推进动画
func (m *Model) step(dt float64) {
	ev := m.tracker.Update(dt)
	switch ev.Kind {
	case utils.PointerTap:
		if int(ev.Origin.Y/CellHeight) < m.host.panelTop() {
			m.drawer.TapOverlay()
		}
	case utils.PointerDrag:
		g := ev.Gesture
		if g.Phase == drawer.GestureBegan {
			m.lastTranslation = drawer.Vec2{}
			m.list.track(int(ev.Origin.Y/CellHeight) > m.host.panelTop())
		}
		if m.list.tracking {
			m.list.gesture = g.Translation
		}
		m.drawer.HandleGesture(g)
		if m.list.tracking {
			m.list.scrollBy(g.Translation.Y - m.lastTranslation.Y)
		}
		m.lastTranslation = g.Translation
		if g.Phase == drawer.GestureEnded || g.Phase == drawer.GestureFailed {
			m.list.track(false)
		}
	}
	m.driver.Update(dt)
}

func (m *Model) View() string {
	rows, cols := m.host.rows, m.host.cols
	top := m.host.panelTop()
	v := m.host.visuals

	var b strings.Builder
	background := strings.Repeat("·", cols)
	for i := 0; i < top && i < rows; i++ {
		line := background
		if i == top-1 && v.ShadowOpacity > 0 {
			line = shadowStyle.Render(strings.Repeat("▁", cols))
		} else if v.OverlayOpacity > 0.5 {
			line = overlayStyle.Render(strings.Repeat(" ", cols))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if top < rows {
		status := fmt.Sprintf(" %s  ext=%.0f", m.drawer.VisiblePosition(), m.drawer.Extension())
		if !m.list.enabled {
			status += "  [list locked]"
		}
		b.WriteString(handleStyle.Render("━━━━") + statusStyle.Render(status))
		b.WriteString("\n")
		body := strings.Split(m.list.vp.View(), "\n")
		for i := 0; i < m.host.panelRows()-1; i++ {
			line := ""
			if i < len(body) {
				line = body[i]
			}
			b.WriteString(panelStyle.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString(helpStyle.Render("drag: move  1-4: position  c: conceal  o: tap overlay  q: quit"))
	return b.String()
}
