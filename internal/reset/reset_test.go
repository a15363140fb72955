package reset

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/streakd/internal/model"
)

func TestDue(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	assert.True(t, Due("", now), "first launch has no recorded date")
	assert.True(t, Due("2026-08-19", now))
	assert.False(t, Due("2026-08-20", now))
}

func TestPollerFiresOncePerDate(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2026, 8, 20, 23, 59, 0, 0, time.UTC)

	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	p := NewPoller(5*time.Millisecond, clock)
	p.Start()
	defer p.Stop()

	select {
	case fired := <-p.C():
		assert.Equal(t, "2026-08-20", model.DayKey(fired), "the starting date ticks once")
	case <-time.After(time.Second):
		t.Fatal("poller must tick for the date it starts on")
	}

	select {
	case <-p.C():
		t.Fatal("poller fired twice for one date")
	case <-time.After(30 * time.Millisecond):
	}

	mu.Lock()
	now = now.Add(2 * time.Minute) // past midnight
	mu.Unlock()

	select {
	case fired := <-p.C():
		assert.Equal(t, "2026-08-21", model.DayKey(fired))
	case <-time.After(time.Second):
		t.Fatal("poller never fired after the date changed")
	}

	select {
	case <-p.C():
		t.Fatal("poller fired twice for one date")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestPollerFiresImmediatelyOnStart(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	p := NewPoller(time.Hour, func() time.Time { return now })
	p.Start()
	defer p.Stop()

	select {
	case fired := <-p.C():
		require.Equal(t, "2026-08-20", model.DayKey(fired))
	case <-time.After(time.Second):
		t.Fatal("poller must check once at startup")
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := NewPoller(time.Hour, nil)
	p.Start()
	p.Stop()
	p.Stop()
}
