//go:build linux

package worker

import "syscall"

// The kernel kills the worker if the daemon dies without stopping it.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: syscall.SIGKILL}
}
