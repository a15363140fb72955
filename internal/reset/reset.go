// Package reset decides when the daily rollover is due and drives it
// on a timer. The decision is a pure function over the recorded reset
// date; the Poller only watches the calendar and reports each new date
// on a channel, so the update loop stays the single reader and writer
// of store state.
package reset

import (
	"sync"
	"time"

	"github.com/sandeepkv93/streakd/internal/model"
)

// DefaultInterval is how often the poller re-checks the calendar date.
const DefaultInterval = time.Minute

// Due reports whether the daily reset should run: the recorded date is
// empty on first launch, or the calendar has moved past it.
func Due(lastResetDate string, now time.Time) bool {
	return lastResetDate != model.DayKey(now)
}

// Poller wakes up on an interval and emits the current time once per
// calendar date, including the date it starts on. It holds no
// reference to application state; the receiver decides whether a
// reset is actually due, so a tick for an already-reset date is
// harmless.
type Poller struct {
	interval time.Duration
	now      func() time.Time

	out    chan time.Time
	stopCh chan struct{}
	doneCh chan struct{}

	mu       sync.Mutex
	started  bool
	stopped  bool
	firedFor string
}

func NewPoller(interval time.Duration, now func() time.Time) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Poller{
		interval: interval,
		now:      now,
		out:      make(chan time.Time, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (p *Poller) C() <-chan time.Time {
	return p.out
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	go p.loop()
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.stopCh)
	p.mu.Unlock()
	<-p.doneCh
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	defer close(p.out)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.check()
	for {
		select {
		case <-ticker.C:
			p.check()
		case <-p.stopCh:
			return
		}
	}
}

func (p *Poller) check() {
	now := p.now()
	today := model.DayKey(now)

	p.mu.Lock()
	alreadyFired := p.firedFor == today
	if !alreadyFired {
		p.firedFor = today
	}
	p.mu.Unlock()
	if alreadyFired {
		return
	}

	select {
	case p.out <- now:
	default:
	}
}
