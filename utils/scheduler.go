package utils

import "time"

// Scheduler runs callbacks after a delay. Scheduled callbacks are independent
// of each other and cannot be cancelled.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// NewScheduler creates a Scheduler backed by the runtime timers
func NewScheduler() Scheduler {
	return &scheduler{}
}

type scheduler struct{}

func (*scheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
