package testutils

import (
	"sort"
	"sync"
	"time"
)

// FakeScheduler is a utils.Scheduler driven by Advance instead of the wall clock
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []fakeTimer
}

type fakeTimer struct {
	at  time.Duration
	seq int
	f   func()
}

// AfterFunc schedules f to run once the scheduler has advanced by d
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.timers = append(s.timers, fakeTimer{at: s.now + d, seq: s.seq, f: f})
}

// Advance moves the clock forward by d and runs every callback that became due,
// earliest first
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due, pending []fakeTimer
	for _, timer := range s.timers {
		if timer.at <= s.now {
			due = append(due, timer)
		} else {
			pending = append(pending, timer)
		}
	}
	s.timers = pending
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	for _, timer := range due {
		timer.f()
	}
}

// Pending returns the number of callbacks that have not run yet
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
