package stats

import (
	"testing"
	"time"
)

// TestRecorderDoesNotPanic exercises every Recorder method under whichever
// build (tagged "stats" or the default no-op) is active; both must accept
// the same calls without panicking.
func TestRecorderDoesNotPanic(t *testing.T) {
	r := New("micado", "kernel")
	r.Relabel()
	r.Refine()
	r.BadPricein()
	r.BadRelabel()
	r.PriceUpdate()
	r.ObserveRefineDuration(5 * time.Millisecond)
}
