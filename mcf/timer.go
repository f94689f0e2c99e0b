package mcf

import "time"

// cpuTimer accumulates CPU time across calls until re-armed, mirroring the
// reference's OPTtimers-based SetMCFTime accumulator. No retrieval example
// models CPU-time measurement, so this one piece is built on the standard
// library rather than a third-party dependency.
type cpuTimer struct {
	accumulated time.Duration
	start       time.Duration
	running     bool
}

func (t *cpuTimer) resume() {
	if t.running {
		return
	}
	t.start = cpuTime()
	t.running = true
}

func (t *cpuTimer) pause() {
	if !t.running {
		return
	}
	t.accumulated += cpuTime() - t.start
	t.running = false
}

func (t *cpuTimer) reset() {
	*t = cpuTimer{}
}

func (t *cpuTimer) elapsed() time.Duration {
	if !t.running {
		return t.accumulated
	}
	return t.accumulated + (cpuTime() - t.start)
}
