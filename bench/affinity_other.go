//go:build !linux

package bench

// pinCPU is a no-op where sched_setaffinity(2) is unavailable.
func pinCPU(int) error {
	return nil
}
