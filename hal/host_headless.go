//go:build !tinygo

package hal

import "context"

// RunHeadless drives the firmware for a fixed number of ticks without a
// window, as fast as the host allows. A tick count of zero runs until the
// context is cancelled.
func RunHeadless(ctx context.Context, cfg HostConfig, ticks uint64, newApp func(HAL) func() error) error {
	h := New(cfg).(*hostHAL)
	defer h.close()
	step := newApp(h)

	for n := uint64(0); ticks == 0 || n < ticks; n++ {
		if ticks == 0 && n%TickRate == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		h.t.publish(1)
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
