package census

import (
	"fmt"
	"slices"

	"github.com/shirou/gopsutil/v4/process"
)

type systemTable struct{}

// NewSystemTable returns a ProcessTable backed by the host's process list.
func NewSystemTable() ProcessTable {
	return systemTable{}
}

func (systemTable) Snapshot() ([]ProcInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]ProcInfo, 0, len(procs))
	for _, p := range procs {
		// Processes can exit between listing and inspection.
		name, err := p.Name()
		if err != nil {
			continue
		}
		ppid, _ := p.Ppid()
		info := ProcInfo{PID: int(p.Pid), PPID: int(ppid), Name: name}
		if status, err := p.Status(); err == nil {
			info.Zombie = isZombie(status)
		}
		out = append(out, info)
	}
	return out, nil
}

func (systemTable) Kill(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		// Already gone.
		return nil
	}
	if err := p.Kill(); err != nil {
		if running, _ := p.IsRunning(); !running {
			return nil
		}
		return fmt.Errorf("kill pid %d: %w", pid, err)
	}
	return nil
}

func isZombie(status []string) bool {
	return slices.Contains(status, process.Zombie)
}
