// Package cli 实现 drawerctl 命令行工具
//
// 子命令：
//   - validate: 校验抽屉配置文件并打印解析结果
//   - replay: 回放手势脚本，输出记录或与 golden 文件比较
//   - preview: 在终端中交互预览抽屉
//
// 所有子命令支持 --verbose (-v) 打开调试日志。
package cli

import (
	"io"
	stdlog "log"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// 日志级别别名，调用方无需直接引入 charmbracelet/log
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI 保存命令共享的状态
type CLI struct {
	Logger *log.Logger
}

// New 创建 CLI，日志写入 w
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel 调整日志级别
//
// 抽屉核心使用标准库 log 输出 "[Tag] ..." 诊断信息；
// 调试级别下把它们转接到 charm logger，否则丢弃。
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	stdlog.SetFlags(0)
	if level <= log.DebugLevel {
		stdlog.SetOutput(c.Logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}).Writer())
		return
	}
	stdlog.SetOutput(io.Discard)
}

// RootCommand 构建根命令
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "drawerctl",
		Short: "Inspect, replay and preview snap drawers",
		Long: `drawerctl works with snap drawer configuration files and gesture scripts.

It validates configs, replays recorded gestures deterministically against
golden transcripts, and previews a drawer interactively in the terminal.`,
		SilenceUsage: true,
	}
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.previewCommand())
	return root
}
