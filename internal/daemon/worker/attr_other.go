//go:build !linux && !windows

package worker

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
