// Package sim 在无界面环境下回放抽屉交互脚本
//
// 脚本描述容器几何、嵌套滚动视图和一系列步骤（拖拽、松手、点击遮罩、时间推进、
// 切换位置等）；回放结果是一份逐行的文本记录，可以与 golden 文件比较。
package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/snapdrawer/pkg/config"
)

// Script 回放脚本
type Script struct {
	Name        string              `yaml:"name"`
	Drawer      config.DrawerConfig `yaml:"drawer"`
	Container   Container           `yaml:"container"`
	Scrollables []ScrollableSpec    `yaml:"scrollables"`
	Steps       []Step              `yaml:"steps"`
}

// Container 宿主容器几何
type Container struct {
	Extent   float64 `yaml:"extent"`
	SafeArea float64 `yaml:"safeArea"`
	EdgeGap  float64 `yaml:"edgeGap"`
	Declared float64 `yaml:"declaredInset"`
}

// ScrollableSpec 嵌套滚动视图的初始状态
type ScrollableSpec struct {
	ContentOffset float64 `yaml:"contentOffset"`
	Disabled      bool    `yaml:"disabled"`
	// UnderPointer 为 true 时视图跟随拖拽手势（手势落在视图上）
	UnderPointer bool `yaml:"underPointer"`
	// MaxOffset 内容可滚动的最大偏移，0 表示不限
	MaxOffset float64 `yaml:"maxOffset"`
}

// Vector 二维量（位移或速度）
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step 一个回放步骤，每步只能设置一个操作
type Step struct {
	Begin   bool     `yaml:"begin,omitempty"`
	Drag    *Vector  `yaml:"drag,omitempty"`    // 自 begin 以来的累计位移
	Release *Vector  `yaml:"release,omitempty"` // 松手速度
	Fail    bool     `yaml:"fail,omitempty"`
	Tap     bool     `yaml:"tap,omitempty"`
	Tick    float64  `yaml:"tick,omitempty"` // 推进的秒数
	Settle  bool     `yaml:"settle,omitempty"`
	Set     string   `yaml:"set,omitempty"`
	Conceal *bool    `yaml:"conceal,omitempty"`
	SnapSet []string `yaml:"snapSet,omitempty"`
	Resize  float64  `yaml:"resize,omitempty"`

	// Animated 作用于 set 和 conceal，默认 true
	Animated *bool `yaml:"animated,omitempty"`
}

// Op 步骤的操作名
func (s Step) Op() (string, error) {
	var ops []string
	if s.Begin {
		ops = append(ops, "begin")
	}
	if s.Drag != nil {
		ops = append(ops, "drag")
	}
	if s.Release != nil {
		ops = append(ops, "release")
	}
	if s.Fail {
		ops = append(ops, "fail")
	}
	if s.Tap {
		ops = append(ops, "tap")
	}
	if s.Tick > 0 {
		ops = append(ops, "tick")
	}
	if s.Settle {
		ops = append(ops, "settle")
	}
	if s.Set != "" {
		ops = append(ops, "set")
	}
	if s.Conceal != nil {
		ops = append(ops, "conceal")
	}
	if len(s.SnapSet) > 0 {
		ops = append(ops, "snapSet")
	}
	if s.Resize > 0 {
		ops = append(ops, "resize")
	}
	switch len(ops) {
	case 0:
		return "", fmt.Errorf("step has no operation")
	case 1:
		return ops[0], nil
	default:
		return "", fmt.Errorf("step has multiple operations %v", ops)
	}
}

func (s Step) animated() bool {
	return s.Animated == nil || *s.Animated
}

// LoadScript 从 YAML 文件加载脚本
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("invalid script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript 解析脚本，drawer 段未出现的字段使用默认配置
func ParseScript(data []byte) (*Script, error) {
	s := Script{Drawer: config.DefaultDrawerConfig()}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script YAML: %w", err)
	}
	if err := s.Drawer.Validate(); err != nil {
		return nil, fmt.Errorf("drawer: %w", err)
	}
	if s.Container.Extent <= 0 {
		return nil, fmt.Errorf("container.extent must be positive, got %v", s.Container.Extent)
	}
	for i, step := range s.Steps {
		if _, err := step.Op(); err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return &s, nil
}
