//go:build !windows

package worker

import (
	"os"

	"golang.org/x/sys/unix"
)

func terminate(p *os.Process) error {
	return p.Signal(unix.SIGTERM)
}

func bindLifetime(*os.Process) (func(), error) {
	return func() {}, nil
}
