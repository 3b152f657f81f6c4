package view

import (
	"sync"
	"time"
)

// Meter counts completed render iterations and reports the frame rate once
// at least a second has elapsed since the previous report. The clock is
// injectable for tests.
type Meter struct {
	mu       sync.Mutex
	now      func() time.Time
	start    time.Time
	count    int
	onReport func(fps int)
}

// NewMeter creates a meter that calls onReport with the frame count of
// each completed window. onReport may be nil.
func NewMeter(onReport func(fps int)) *Meter {
	return newMeterWithClock(onReport, time.Now)
}

func newMeterWithClock(onReport func(fps int), now func() time.Time) *Meter {
	return &Meter{
		now:      now,
		start:    now(),
		onReport: onReport,
	}
}

// Tick records one completed iteration. When the reporting window of
// 1000ms has elapsed, the accumulated count is reported and both counter
// and window reset.
func (m *Meter) Tick() {
	m.mu.Lock()
	m.count++

	elapsed := m.now().Sub(m.start)
	if elapsed < time.Second {
		m.mu.Unlock()
		return
	}

	fps := m.count
	m.count = 0
	m.start = m.now()
	report := m.onReport
	m.mu.Unlock()

	if report != nil {
		report(fps)
	}
}

// Count returns the iterations accumulated in the current window.
func (m *Meter) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
