package testutil

import (
	"sync"
	"time"

	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/services"
)

// FixedRand returns the queued values in order, repeating the last one
type FixedRand struct {
	mu     sync.Mutex
	values []float64
	calls  int
}

// NewFixedRand creates a FixedRand that yields values
func NewFixedRand(values ...float64) *FixedRand {
	return &FixedRand{values: values}
}

func (r *FixedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}

// Calls returns how many values were drawn
func (r *FixedRand) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// FakeTimer is a timer that only fires when told to
type FakeTimer struct {
	Delay time.Duration

	mu      sync.Mutex
	f       func()
	stopped bool
	fired   bool
}

// Stop reports whether the callback was prevented from running
func (t *FakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the callback unless the timer was stopped
func (t *FakeTimer) Fire() bool {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	f := t.f
	t.mu.Unlock()
	f()
	return true
}

// ForceFire runs the callback even after Stop, like a timer whose
// goroutine had already started when it was cancelled.
func (t *FakeTimer) ForceFire() {
	t.f()
}

// Stopped reports whether Stop was called before the timer fired
func (t *FakeTimer) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// FakeScheduler records scheduled callbacks without running them
type FakeScheduler struct {
	mu     sync.Mutex
	timers []*FakeTimer
}

func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) services.Timer {
	t := &FakeTimer{Delay: d, f: f}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return t
}

// Timers returns every timer scheduled so far
func (s *FakeScheduler) Timers() []*FakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*FakeTimer(nil), s.timers...)
}

// Last returns the most recently scheduled timer, or nil
func (s *FakeScheduler) Last() *FakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

// FireAll fires every pending timer and returns how many ran
func (s *FakeScheduler) FireAll() int {
	n := 0
	for _, t := range s.Timers() {
		if t.Fire() {
			n++
		}
	}
	return n
}

// FakeNavigator records the URLs it was asked to open
type FakeNavigator struct {
	mu   sync.Mutex
	urls []string
}

func (n *FakeNavigator) Navigate(url string) {
	n.mu.Lock()
	n.urls = append(n.urls, url)
	n.mu.Unlock()
}

// URLs returns the opened URLs in order
func (n *FakeNavigator) URLs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.urls...)
}

// RecordingBroadcaster keeps every snapshot it receives
type RecordingBroadcaster struct {
	mu    sync.Mutex
	snaps []models.Snapshot
}

func (b *RecordingBroadcaster) BroadcastState(snap models.Snapshot) {
	b.mu.Lock()
	b.snaps = append(b.snaps, snap)
	b.mu.Unlock()
}

// States returns the broadcast states in order
func (b *RecordingBroadcaster) States() []models.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	states := make([]models.State, len(b.snaps))
	for i, s := range b.snaps {
		states[i] = s.State
	}
	return states
}
