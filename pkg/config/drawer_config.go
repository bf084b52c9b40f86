package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/decker502/snapdrawer/pkg/drawer"
	"gopkg.in/yaml.v3"
)

// Format 配置文件格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath 根据扩展名选择解码器，未知扩展名按 YAML 处理
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// DrawerConfig 抽屉配置文件结构
//
// 所有字段都可省略，省略时使用 DefaultDrawerConfig 中的值。
// 时长字段使用 Go duration 字符串（如 "500ms"）。
type DrawerConfig struct {
	Orientation         string   `yaml:"orientation" toml:"orientation"`
	SnapPositions       []string `yaml:"snapPositions" toml:"snapPositions"`
	CollapsedExtent     float64  `yaml:"collapsedExtent" toml:"collapsedExtent"`
	PartiallyOpenExtent float64  `yaml:"partiallyOpenExtent" toml:"partiallyOpenExtent"`
	OpenExtent          float64  `yaml:"openExtent" toml:"openExtent"` // 0 = 充满容器

	InsetMode  string  `yaml:"insetMode" toml:"insetMode"`
	FixedInset float64 `yaml:"fixedInset" toml:"fixedInset"`

	OverlayEnabled    bool    `yaml:"overlayEnabled" toml:"overlayEnabled"`
	OverlayTapDismiss bool    `yaml:"overlayTapDismiss" toml:"overlayTapDismiss"`
	ShadowEnabled     bool    `yaml:"shadowEnabled" toml:"shadowEnabled"`
	ShadowOpacity     float64 `yaml:"shadowOpacity" toml:"shadowOpacity"`
	ChildFade         string  `yaml:"childFade" toml:"childFade"`

	VelocityThreshold float64 `yaml:"velocityThreshold" toml:"velocityThreshold"`
	AnimationDuration string  `yaml:"animationDuration" toml:"animationDuration"`
	CatchUpDuration   string  `yaml:"catchUpDuration" toml:"catchUpDuration"`
	SpringDamping     float64 `yaml:"springDamping" toml:"springDamping"`

	InitialPosition string `yaml:"initialPosition" toml:"initialPosition"`
	// PersistPosition 为 true 时记住上次停靠位置，下次启动时恢复
	PersistPosition bool `yaml:"persistPosition" toml:"persistPosition"`
}

// DefaultDrawerConfig 返回与 drawer.DefaultConfig 一致的文件配置
func DefaultDrawerConfig() DrawerConfig {
	d := drawer.DefaultConfig()
	positions := make([]string, 0, len(d.SnapSet))
	for _, p := range d.SnapSet {
		positions = append(positions, p.String())
	}
	return DrawerConfig{
		Orientation:         d.Orientation.String(),
		SnapPositions:       positions,
		CollapsedExtent:     d.CollapsedExtent,
		PartiallyOpenExtent: d.PartiallyOpenExtent,
		OpenExtent:          d.OpenExtent,
		InsetMode:           d.InsetMode.String(),
		FixedInset:          d.FixedInset,
		OverlayEnabled:      d.OverlayEnabled,
		OverlayTapDismiss:   d.OverlayTapDismiss,
		ShadowEnabled:       d.ShadowEnabled,
		ShadowOpacity:       d.ShadowOpacity,
		ChildFade:           d.ChildFade.String(),
		VelocityThreshold:   d.VelocityThreshold,
		AnimationDuration:   d.AnimationDuration.String(),
		CatchUpDuration:     d.CatchUpDuration.String(),
		SpringDamping:       d.SpringDamping,
		InitialPosition:     d.InitialPosition.String(),
	}
}

// LoadDrawerConfig 从文件加载抽屉配置
func LoadDrawerConfig(path string) (*DrawerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read drawer config file %s: %w", path, err)
	}
	cfg, err := ParseDrawerConfig(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid drawer config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDrawerConfig 解码配置内容，未出现的字段保留默认值，解码后立即校验
func ParseDrawerConfig(data []byte, format Format) (*DrawerConfig, error) {
	cfg := DefaultDrawerConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse drawer config TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse drawer config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查取值是否合法
func (c *DrawerConfig) Validate() error {
	_, err := c.Build()
	return err
}

// Build 转换为 drawer.Config
func (c *DrawerConfig) Build() (drawer.Config, error) {
	cfg := drawer.DefaultConfig()

	orientation, err := drawer.ParseOrientation(c.Orientation)
	if err != nil {
		return cfg, err
	}
	cfg.Orientation = orientation

	if len(c.SnapPositions) == 0 {
		return cfg, fmt.Errorf("snapPositions: %w", drawer.ErrEmptySnapSet)
	}
	positions := make([]drawer.Position, 0, len(c.SnapPositions))
	for i, s := range c.SnapPositions {
		p, err := drawer.ParsePosition(s)
		if err != nil {
			return cfg, fmt.Errorf("snapPositions[%d]: %w", i, err)
		}
		positions = append(positions, p)
	}
	set, err := drawer.NewSnapSet(positions...)
	if err != nil {
		return cfg, fmt.Errorf("snapPositions: %w", err)
	}
	cfg.SnapSet = set

	for name, v := range map[string]float64{
		"collapsedExtent":     c.CollapsedExtent,
		"partiallyOpenExtent": c.PartiallyOpenExtent,
		"openExtent":          c.OpenExtent,
		"fixedInset":          c.FixedInset,
		"velocityThreshold":   c.VelocityThreshold,
	} {
		if v < 0 {
			return cfg, fmt.Errorf("%s cannot be negative, got %v", name, v)
		}
	}
	cfg.CollapsedExtent = c.CollapsedExtent
	cfg.PartiallyOpenExtent = c.PartiallyOpenExtent
	cfg.OpenExtent = c.OpenExtent
	cfg.FixedInset = c.FixedInset
	cfg.VelocityThreshold = c.VelocityThreshold

	if cfg.InsetMode, err = drawer.ParseInsetMode(c.InsetMode); err != nil {
		return cfg, err
	}
	if cfg.InsetMode == drawer.InsetExternal {
		// 外部回调只能在代码中提供，文件配置时先按 0 处理
		cfg.InsetFunc = func() float64 { return 0 }
	}

	if c.ShadowOpacity < 0 || c.ShadowOpacity > 1 {
		return cfg, fmt.Errorf("shadowOpacity must be between 0 and 1, got %v", c.ShadowOpacity)
	}
	cfg.OverlayEnabled = c.OverlayEnabled
	cfg.OverlayTapDismiss = c.OverlayTapDismiss
	cfg.ShadowEnabled = c.ShadowEnabled
	cfg.ShadowOpacity = c.ShadowOpacity

	if cfg.ChildFade, err = drawer.ParseChildFadePolicy(c.ChildFade); err != nil {
		return cfg, err
	}

	if cfg.AnimationDuration, err = parseDuration("animationDuration", c.AnimationDuration); err != nil {
		return cfg, err
	}
	if cfg.CatchUpDuration, err = parseDuration("catchUpDuration", c.CatchUpDuration); err != nil {
		return cfg, err
	}
	if c.SpringDamping < 0 || c.SpringDamping > 1 {
		return cfg, fmt.Errorf("springDamping must be between 0 and 1, got %v", c.SpringDamping)
	}
	cfg.SpringDamping = c.SpringDamping

	if cfg.InitialPosition, err = drawer.ParsePosition(c.InitialPosition); err != nil {
		return cfg, fmt.Errorf("initialPosition: %w", err)
	}
	if cfg.InitialPosition != drawer.PositionClosed && !set.Contains(cfg.InitialPosition) {
		return cfg, fmt.Errorf("initialPosition %s: %w", cfg.InitialPosition, drawer.ErrUnsupportedPosition)
	}
	return cfg, nil
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s cannot be negative, got %s", field, s)
	}
	return d, nil
}
