package sim

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	faint       = lipgloss.NewStyle().Faint(true)
)

// Diff 按行比较两份记录，相同时返回空字符串
//
// 删除的行以 "- " 开头，新增的行以 "+ " 开头，未变化的行保留两个空格缩进。
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(want, got)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, df := range diffs {
		for _, line := range strings.SplitAfter(df.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(diffDelLine.Render("- " + line))
			case dmp.DiffInsert:
				sb.WriteString(diffAddLine.Render("+ " + line))
			case dmp.DiffEqual:
				sb.WriteString(faint.Render("  " + line))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// CompareGolden 把记录与 golden 文件比较
//
// update 为 true 或 golden 文件不存在时写入新文件并返回空 diff。
func CompareGolden(path string, t *Transcript, update bool) (string, error) {
	got := t.String()
	want, err := os.ReadFile(path)
	if update || errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			return "", fmt.Errorf("failed to write golden %s: %w", path, err)
		}
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read golden %s: %w", path, err)
	}
	return Diff(string(want), got), nil
}
