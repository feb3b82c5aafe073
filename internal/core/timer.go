package core

import "time"

// Clock reports the current time. The game uses SystemClock; tests and the
// headless simulator drive a ManualClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when Advance is called.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Countdown is a non-blocking deadline polled once per frame.
type Countdown struct {
	clock    Clock
	duration time.Duration
	started  time.Time
	armed    bool
}

// NewCountdown constructs a disarmed countdown of the given length.
func NewCountdown(clock Clock, d time.Duration) *Countdown {
	if d < 0 {
		d = 0
	}
	return &Countdown{clock: clock, duration: d}
}

// Start arms the countdown from the current clock time.
func (c *Countdown) Start() {
	c.started = c.clock.Now()
	c.armed = true
}

// Stop disarms the countdown.
func (c *Countdown) Stop() { c.armed = false }

// Armed reports whether the countdown is running.
func (c *Countdown) Armed() bool { return c.armed }

// Expired reports whether an armed countdown has reached its deadline.
func (c *Countdown) Expired() bool {
	if !c.armed {
		return false
	}
	return !c.clock.Now().Before(c.started.Add(c.duration))
}

// Remaining returns the fraction of time left in [0, 1]. A disarmed
// countdown reports 0.
func (c *Countdown) Remaining() float64 {
	if !c.armed || c.duration <= 0 {
		return 0
	}
	left := c.started.Add(c.duration).Sub(c.clock.Now())
	if left <= 0 {
		return 0
	}
	ratio := float64(left) / float64(c.duration)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// Stopwatch measures elapsed play time and can be frozen.
type Stopwatch struct {
	clock   Clock
	started time.Time
	frozen  time.Duration
	stopped bool
}

// NewStopwatch starts a stopwatch at the current clock time.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock, started: clock.Now()}
}

// Reset restarts the stopwatch from zero.
func (s *Stopwatch) Reset() {
	s.started = s.clock.Now()
	s.frozen = 0
	s.stopped = false
}

// Stop freezes the elapsed value.
func (s *Stopwatch) Stop() {
	if s.stopped {
		return
	}
	s.frozen = s.clock.Now().Sub(s.started)
	s.stopped = true
}

// Elapsed returns the time since the last Reset, or the frozen value.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.stopped {
		return s.frozen
	}
	return s.clock.Now().Sub(s.started)
}
