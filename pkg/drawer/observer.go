package drawer

// 观察者钩子都是可选的：AddObserver 接受任意值，调用点只调用它实现了的接口。

// WillTransitionObserver 可见位置即将改变
type WillTransitionObserver interface {
	DrawerWillTransition(d *Drawer, from, to Position)
}

// DidTransitionObserver 过渡完成，to 为最终可见位置
type DidTransitionObserver interface {
	DrawerDidTransition(d *Drawer, to Position)
}

// DidMoveObserver 偏移发生变化，extension 为抽屉露出的长度（closed 时为 0）
type DidMoveObserver interface {
	DrawerDidMove(d *Drawer, extension float64)
}

// WillBeginDragObserver 用户开始拖拽
type WillBeginDragObserver interface {
	DrawerWillBeginDrag(d *Drawer)
}

// WillEndDragObserver 用户结束拖拽（包括手势失败）
type WillEndDragObserver interface {
	DrawerWillEndDrag(d *Drawer)
}

// ObserverFuncs 用函数字段实现全部钩子，nil 字段被忽略
type ObserverFuncs struct {
	WillTransition func(d *Drawer, from, to Position)
	DidTransition  func(d *Drawer, to Position)
	DidMove        func(d *Drawer, extension float64)
	WillBeginDrag  func(d *Drawer)
	WillEndDrag    func(d *Drawer)
}

func (f *ObserverFuncs) DrawerWillTransition(d *Drawer, from, to Position) {
	if f.WillTransition != nil {
		f.WillTransition(d, from, to)
	}
}

func (f *ObserverFuncs) DrawerDidTransition(d *Drawer, to Position) {
	if f.DidTransition != nil {
		f.DidTransition(d, to)
	}
}

func (f *ObserverFuncs) DrawerDidMove(d *Drawer, extension float64) {
	if f.DidMove != nil {
		f.DidMove(d, extension)
	}
}

func (f *ObserverFuncs) DrawerWillBeginDrag(d *Drawer) {
	if f.WillBeginDrag != nil {
		f.WillBeginDrag(d)
	}
}

func (f *ObserverFuncs) DrawerWillEndDrag(d *Drawer) {
	if f.WillEndDrag != nil {
		f.WillEndDrag(d)
	}
}

type observerEntry struct {
	id       int
	observer any
}

// AddObserver 注册观察者，返回注销函数
func (d *Drawer) AddObserver(o any) (remove func()) {
	if o == nil {
		return func() {}
	}
	d.nextObserverID++
	id := d.nextObserverID
	d.observers = append(d.observers, observerEntry{id: id, observer: o})
	return func() {
		for i, e := range d.observers {
			if e.id == id {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

func (d *Drawer) emitWillTransition(from, to Position) {
	for _, e := range d.observers {
		if o, ok := e.observer.(WillTransitionObserver); ok {
			o.DrawerWillTransition(d, from, to)
		}
	}
}

func (d *Drawer) emitDidTransition(to Position) {
	for _, e := range d.observers {
		if o, ok := e.observer.(DidTransitionObserver); ok {
			o.DrawerDidTransition(d, to)
		}
	}
}

func (d *Drawer) emitDidMove(extension float64) {
	for _, e := range d.observers {
		if o, ok := e.observer.(DidMoveObserver); ok {
			o.DrawerDidMove(d, extension)
		}
	}
}

func (d *Drawer) emitWillBeginDrag() {
	for _, e := range d.observers {
		if o, ok := e.observer.(WillBeginDragObserver); ok {
			o.DrawerWillBeginDrag(d)
		}
	}
}

func (d *Drawer) emitWillEndDrag() {
	for _, e := range d.observers {
		if o, ok := e.observer.(WillEndDragObserver); ok {
			o.DrawerWillEndDrag(d)
		}
	}
}
