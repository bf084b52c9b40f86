// Package store 持久化抽屉的停靠位置
package store

import (
	"fmt"
	"log"

	"github.com/decker502/snapdrawer/pkg/drawer"
	"github.com/decker502/snapdrawer/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量：每个抽屉 key 对应 drawers 对象下的一个属性
const positionObject = "drawers"

// savedPosition 持久化的负载
type savedPosition struct {
	Position    string `yaml:"position"`
	Orientation string `yaml:"orientation,omitempty"`
}

// PositionStore 抽屉位置存储
//
// gdataManager 为 nil 时进入降级模式，位置只保存在内存中。
type PositionStore struct {
	gdataManager *gdata.Manager
	memory       map[string]drawer.Position
}

// OpenManager 打开应用的 gdata 存储
//
// 失败时返回 nil 和错误，调用方可以把 nil 传给 NewPositionStore 以降级运行。
func OpenManager(appName string) (*gdata.Manager, error) {
	dir, err := utils.PrepareStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata: %w", err)
	}
	if dir != "" {
		log.Printf("[PositionStore] Storage dir: %s", dir)
	}
	return m, nil
}

// NewPositionStore 创建位置存储
func NewPositionStore(gdataManager *gdata.Manager) *PositionStore {
	if gdataManager == nil {
		log.Printf("[PositionStore] No storage backend, positions will not survive restart")
	}
	return &PositionStore{
		gdataManager: gdataManager,
		memory:       make(map[string]drawer.Position),
	}
}

// Load 读取某个抽屉上次的停靠位置
//
// 没有记录时 ok 为 false；记录损坏时返回错误。
func (s *PositionStore) Load(key string) (p drawer.Position, ok bool, err error) {
	if p, ok := s.memory[key]; ok {
		return p, true, nil
	}
	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(positionObject, key) {
		return drawer.PositionClosed, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(positionObject, key)
	if err != nil {
		return drawer.PositionClosed, false, fmt.Errorf("failed to load position %q: %w", key, err)
	}
	var saved savedPosition
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return drawer.PositionClosed, false, fmt.Errorf("failed to unmarshal position %q: %w", key, err)
	}
	p, err = drawer.ParsePosition(saved.Position)
	if err != nil {
		return drawer.PositionClosed, false, fmt.Errorf("stored position %q: %w", key, err)
	}
	s.memory[key] = p
	return p, true, nil
}

// Save 记录停靠位置
func (s *PositionStore) Save(key string, p drawer.Position, o drawer.Orientation) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", drawer.ErrInvalidPosition, int(p))
	}
	s.memory[key] = p
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(savedPosition{Position: p.String(), Orientation: o.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal position: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(positionObject, key, data); err != nil {
		return fmt.Errorf("failed to save position %q: %w", key, err)
	}
	log.Printf("[PositionStore] Saved %s = %s", key, p)
	return nil
}

// Restore 把配置的初始位置替换为上次保存的位置
//
// 保存的位置不在配置的吸附集合中时保持原值。
func (s *PositionStore) Restore(key string, cfg *drawer.Config) {
	p, ok, err := s.Load(key)
	if err != nil {
		log.Printf("[PositionStore] Warning: %v (using configured position)", err)
		return
	}
	if !ok {
		return
	}
	if p != drawer.PositionClosed && !drawer.SnapSet(cfg.SnapSet).Contains(p) {
		log.Printf("[PositionStore] Stored position %s not in snap set, ignoring", p)
		return
	}
	cfg.InitialPosition = p
}

// Recorder 在每次过渡完成后保存位置的观察者
type Recorder struct {
	Store *PositionStore
	Key   string
}

// DrawerDidTransition 实现 drawer.DidTransitionObserver
func (r *Recorder) DrawerDidTransition(d *drawer.Drawer, to drawer.Position) {
	if err := r.Store.Save(r.Key, to, d.Orientation()); err != nil {
		log.Printf("[PositionStore] Warning: %v", err)
	}
}
