package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorDim)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printField 打印对齐的键值行
func printField(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %v\n", styleKey.Render(fmt.Sprintf("%-20s", key)), value)
}
