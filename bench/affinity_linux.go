//go:build linux

package bench

import "golang.org/x/sys/unix"

// pinCPU restricts the calling OS thread to a single core.
// The goroutine must already be locked to its thread.
func pinCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	return unix.SchedSetaffinity(0, &set)
}
