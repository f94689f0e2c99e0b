//go:build unix

package mcf

import (
	"syscall"
	"time"
)

// cpuTime returns cumulative user+system CPU time consumed by this process
// so far, matching the reference's "user+system CPU within timed methods".
// Getrusage is a snapshot, not a delta, so cpuTimer only ever subtracts
// two readings of it.
func cpuTime() time.Duration {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return time.Duration(0)
	}
	user := time.Duration(ru.Utime.Sec)*time.Second + time.Duration(ru.Utime.Usec)*time.Microsecond
	sys := time.Duration(ru.Stime.Sec)*time.Second + time.Duration(ru.Stime.Usec)*time.Microsecond
	return user + sys
}
