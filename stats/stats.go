// Package stats exposes the kernel's CS2_STATISTICS counters as a
// prometheus.Collector, following a RuntimeCollector Describe/Collect
// pattern, tracking the same counters the reference implementation keeps
// internally (n_rel, n_ref, n_bad_pricein, n_bad_relabel, n_src).
//
// The reference gates this instrumentation behind the CS2_STATISTICS
// compile-time macro; this package uses the same on/off switch as a Go
// build tag instead: build with -tags stats to get the real
// prometheus-backed Recorder, omit it to get a zero-cost no-op (see
// recorder_stats.go / recorder_noop.go).
package stats

import "time"

// Recorder is what the CS2 kernel calls into. Both the real and no-op
// implementations satisfy it, so the kernel never branches on whether
// statistics are compiled in.
type Recorder interface {
	Relabel()
	Refine()
	BadPricein()
	BadRelabel()
	PriceUpdate()
	ObserveRefineDuration(d time.Duration)
}
