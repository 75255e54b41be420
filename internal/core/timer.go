package core

import "time"

// FixedStep helps run simulation updates at a steady steps-per-second rate,
// independent of the frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(rate int) *FixedStep {
	return newFixedStep(rate, time.Now)
}

func newFixedStep(rate int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// maxRate keeps the step duration above zero.
const maxRate = 1_000_000

// SetRate changes the step rate. Non-positive rates fall back to 60 and rates
// above one million are capped.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	if rate > maxRate {
		rate = maxRate
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the current steps-per-second rate.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due returns how many steps are owed since the previous call. At most max
// steps are returned; any surplus is dropped so a stalled caller does not
// burst afterwards.
func (f *FixedStep) Due(max int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > max {
		n = max
		f.accumulator = 0
	}
	return n
}
