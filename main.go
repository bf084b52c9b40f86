// Command snapdrawer 运行抽屉演示（桌面端）
//
//	go run . [flags]
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/snapdrawer/pkg/app"
)

var (
	configFlag   = flag.String("config", "", "Drawer config file (.yaml, .yml or .toml)")
	positionFlag = flag.String("position", "", "Initial position: closed, collapsed, partiallyOpen, open")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	demo, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Position:   *positionFlag,
	})
	if err != nil {
		log.Fatalf("演示初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Snap Drawer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
