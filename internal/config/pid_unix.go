//go:build !windows

package config

import "golang.org/x/sys/unix"

// pidAlive reports whether pid names a live process.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}
