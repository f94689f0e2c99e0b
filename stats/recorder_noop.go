//go:build !stats

package stats

import "time"

// noopRecorder is the default Recorder: every call is a no-op, so
// instrumentation costs nothing when the "stats" build tag is absent
// (mirroring CS2_STATISTICS compiled out).
type noopRecorder struct{}

// New returns the zero-cost Recorder. namespace/subsystem are accepted for
// signature parity with the "stats"-tagged build but otherwise unused.
func New(namespace, subsystem string) Recorder {
	return noopRecorder{}
}

func (noopRecorder) Relabel()     {}
func (noopRecorder) Refine()      {}
func (noopRecorder) BadPricein()  {}
func (noopRecorder) BadRelabel()  {}
func (noopRecorder) PriceUpdate() {}

func (noopRecorder) ObserveRefineDuration(d time.Duration) {}
