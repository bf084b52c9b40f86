package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/decker502/snapdrawer/pkg/drawer"
)

func TestDefaultDrawerConfig_BuildsDefaults(t *testing.T) {
	c := DefaultDrawerConfig()
	got, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := drawer.DefaultConfig()
	if got.Orientation != want.Orientation || !reflect.DeepEqual(got.SnapSet, want.SnapSet) {
		t.Errorf("方向/集合与默认值不一致: %v %v", got.Orientation, got.SnapSet)
	}
	if got.AnimationDuration != want.AnimationDuration || got.CatchUpDuration != want.CatchUpDuration {
		t.Errorf("时长与默认值不一致: %v %v", got.AnimationDuration, got.CatchUpDuration)
	}
	if got.InsetMode != want.InsetMode || got.ChildFade != want.ChildFade {
		t.Errorf("inset/淡出策略与默认值不一致: %v %v", got.InsetMode, got.ChildFade)
	}
}

func TestParseDrawerConfig_YAML(t *testing.T) {
	data := []byte(`
orientation: top
snapPositions: [collapsed, partial, open]
collapsedExtent: 80
partiallyOpenExtent: 240
insetMode: fixed
fixedInset: 12
shadowOpacity: 0.25
childFade: allowPartial
animationDuration: 350ms
initialPosition: partiallyOpen
persistPosition: true
`)
	c, err := ParseDrawerConfig(data, FormatYAML)
	if err != nil {
		t.Fatalf("ParseDrawerConfig() error: %v", err)
	}
	if !c.PersistPosition {
		t.Error("PersistPosition 应为 true")
	}
	if !c.OverlayEnabled {
		t.Error("未出现的字段应保留默认值")
	}

	cfg, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Orientation != drawer.OrientationTop {
		t.Errorf("Orientation = %v, want top", cfg.Orientation)
	}
	wantSet := drawer.SnapSet{drawer.PositionCollapsed, drawer.PositionPartiallyOpen, drawer.PositionOpen}
	if !reflect.DeepEqual(cfg.SnapSet, wantSet) {
		t.Errorf("SnapSet = %v, want %v", cfg.SnapSet, wantSet)
	}
	if cfg.InsetMode != drawer.InsetFixed || cfg.FixedInset != 12 {
		t.Errorf("inset = %v/%v", cfg.InsetMode, cfg.FixedInset)
	}
	if cfg.ChildFade != drawer.ChildFadeAllowPartial {
		t.Errorf("ChildFade = %v", cfg.ChildFade)
	}
	if cfg.AnimationDuration != 350*time.Millisecond {
		t.Errorf("AnimationDuration = %v", cfg.AnimationDuration)
	}
	if cfg.InitialPosition != drawer.PositionPartiallyOpen {
		t.Errorf("InitialPosition = %v", cfg.InitialPosition)
	}
}

func TestParseDrawerConfig_TOML(t *testing.T) {
	data := []byte(`
orientation = "left"
snapPositions = ["collapsed", "open"]
openExtent = 320.0
overlayTapDismiss = false
velocityThreshold = 800.0
catchUpDuration = "100ms"
initialPosition = "open"
`)
	c, err := ParseDrawerConfig(data, FormatTOML)
	if err != nil {
		t.Fatalf("ParseDrawerConfig() error: %v", err)
	}
	cfg, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Orientation != drawer.OrientationLeft || cfg.OpenExtent != 320 {
		t.Errorf("orientation/openExtent = %v/%v", cfg.Orientation, cfg.OpenExtent)
	}
	if cfg.OverlayTapDismiss {
		t.Error("OverlayTapDismiss 应为 false")
	}
	if cfg.VelocityThreshold != 800 || cfg.CatchUpDuration != 100*time.Millisecond {
		t.Errorf("threshold/catchUp = %v/%v", cfg.VelocityThreshold, cfg.CatchUpDuration)
	}
	if cfg.InitialPosition != drawer.PositionOpen {
		t.Errorf("InitialPosition = %v", cfg.InitialPosition)
	}
}

func TestParseDrawerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"非法方向", "orientation: diagonal", drawer.ErrInvalidOrientation},
		{"非法位置", "snapPositions: [collapsed, halfway]", drawer.ErrInvalidPosition},
		{"空集合", "snapPositions: []", drawer.ErrEmptySnapSet},
		{"初始位置不在集合中", "snapPositions: [open]\ninitialPosition: collapsed", drawer.ErrUnsupportedPosition},
		{"负数长度", "collapsedExtent: -4", nil},
		{"阴影透明度越界", "shadowOpacity: 1.5", nil},
		{"非法时长", "animationDuration: soon", nil},
		{"非法 inset 模式", "insetMode: magic", nil},
		{"非法淡出策略", "childFade: sometimes", nil},
		{"YAML 语法错误", "orientation: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDrawerConfig([]byte(tt.data), FormatYAML)
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := ParseDrawerConfig(nil, Format("json")); err == nil {
		t.Error("未知格式应返回错误")
	}
}

func TestLoadDrawerConfig(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "drawer.yaml")
	if err := os.WriteFile(yamlPath, []byte("orientation: right\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadDrawerConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadDrawerConfig(yaml) error: %v", err)
	}
	if c.Orientation != "right" {
		t.Errorf("Orientation = %q", c.Orientation)
	}

	tomlPath := filepath.Join(dir, "drawer.toml")
	if err := os.WriteFile(tomlPath, []byte("orientation = \"top\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadDrawerConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadDrawerConfig(toml) error: %v", err)
	}
	if c.Orientation != "top" {
		t.Errorf("Orientation = %q", c.Orientation)
	}

	if _, err := LoadDrawerConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("文件不存在应返回错误")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
		"a.TOML": FormatTOML,
		"a":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
