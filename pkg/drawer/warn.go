package drawer

import "time"

// AmbiguityWarnInterval 方向锁无法判定时的告警节流间隔
const AmbiguityWarnInterval = 30 * time.Second

type warnThrottle struct {
	interval time.Duration
	clock    func() time.Time
	last     time.Time
	fired    bool
}

func newWarnThrottle(interval time.Duration, clock func() time.Time) *warnThrottle {
	return &warnThrottle{interval: interval, clock: clock}
}

// allow 距上次放行超过 interval 时返回 true
func (w *warnThrottle) allow() bool {
	now := w.clock()
	if w.fired && now.Sub(w.last) < w.interval {
		return false
	}
	w.fired = true
	w.last = now
	return true
}
