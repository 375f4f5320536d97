//go:build !tinygo

package hal

import "time"

// hostTime derives TickRate ticks from the wall clock. Each advance call
// converts elapsed real time into whole ticks, carrying the remainder.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

const tickDur = time.Second / TickRate

// maxTicksPerAdvance caps catch-up after a stall (window drag, debugger)
// so the firmware does not spin through seconds of backlog in one frame.
const maxTicksPerAdvance = TickRate / 10

// advance returns the number of ticks elapsed since the previous call.
func (t *hostTime) advance() uint64 {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return 1
	}
	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / tickDur)
	t.acc -= time.Duration(ticks) * tickDur
	if ticks > maxTicksPerAdvance {
		ticks = maxTicksPerAdvance
		t.acc = 0
	}
	t.publish(ticks)
	return ticks
}

func (t *hostTime) publish(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
