// Package scheduler fires reminder events at their planned times. The
// engine owns a min-heap keyed on trigger time and a single timer
// goroutine; consumers read fired events from a channel. Deciding what
// to schedule lives in Plan; the engine never inspects task state.
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")
	ErrStopped            = errors.New("scheduler: engine stopped")
)

type eventHeap []Event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].TriggerAt.Before(h[j].TriggerAt) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x any)        { *h = append(*h, x.(Event)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	*h = old[:n-1]
	return ev
}

type Engine struct {
	mu      sync.Mutex
	pending eventHeap
	now     func() time.Time

	out    chan Event
	wakeup chan struct{}
	stopCh chan struct{}
	doneCh chan struct{}

	started bool
	stopped bool
	dropped uint64
}

// NewEngine builds an engine with the given output buffer. A nil clock
// means wall time.
func NewEngine(bufferSize int, now func() time.Time) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		pending: make(eventHeap, 0),
		now:     now,
		out:     make(chan Event, bufferSize),
		wakeup:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// C is the stream of fired events. It closes when the engine stops.
func (e *Engine) C() <-chan Event {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.pending)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule queues one event.
func (e *Engine) Schedule(ev Event) error {
	if ev.TriggerAt.IsZero() {
		return ErrInvalidTriggerTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}
	heap.Push(&e.pending, ev)
	e.signalWakeup()
	return nil
}

// Replan throws away everything queued and installs a fresh plan. The
// update loop calls it after any mutation that can change reminder
// times.
func (e *Engine) Replan(events []Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}
	e.pending = e.pending[:0]
	for _, ev := range events {
		if ev.TriggerAt.IsZero() {
			continue
		}
		heap.Push(&e.pending, ev)
	}
	e.signalWakeup()
	return nil
}

// Dropped counts events lost to a full output channel.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, ok := e.peek()
		if !ok {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := next.TriggerAt.Sub(e.now())
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, ev := range e.popDue(e.now()) {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) == 0 {
		return Event{}, false
	}
	return e.pending[0], true
}

func (e *Engine) popDue(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	due := make([]Event, 0)
	for len(e.pending) > 0 && !e.pending[0].TriggerAt.After(now) {
		due = append(due, heap.Pop(&e.pending).(Event))
	}
	return due
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
