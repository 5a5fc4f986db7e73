package proc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pranshuparmar/musicctl/pkg/model"
)

// ErrNotFound is returned for lookups of a pid that is not in the snapshot.
var ErrNotFound = errors.New("not found")

// Snapshot is an immutable point-in-time view of the process table.
// It is never mutated after construction; Store.Refresh replaces it whole.
type Snapshot struct {
	pids         []int
	pidToComm    map[int]string
	pidToCmdline map[int][]string
	comms        []string
	commToPids   map[string][]int
}

// NewSnapshot builds a snapshot from already collected processes.
// A pid listed twice keeps its first entry.
func NewSnapshot(procs []model.Process) *Snapshot {
	s := &Snapshot{
		pids:         make([]int, 0, len(procs)),
		pidToComm:    make(map[int]string, len(procs)),
		pidToCmdline: make(map[int][]string, len(procs)),
		commToPids:   make(map[string][]int),
	}

	for _, p := range procs {
		if _, dup := s.pidToComm[p.PID]; dup {
			continue
		}
		s.pids = append(s.pids, p.PID)
		s.pidToComm[p.PID] = p.Command
		s.pidToCmdline[p.PID] = slices.Clone(p.Args)

		if _, seen := s.commToPids[p.Command]; !seen {
			s.comms = append(s.comms, p.Command)
		}
		s.commToPids[p.Command] = append(s.commToPids[p.Command], p.PID)
	}

	return s
}

// Pids returns the pids in enumeration order.
func (s *Snapshot) Pids() []int {
	return slices.Clone(s.pids)
}

// Comms returns the distinct command names in first-seen order.
func (s *Snapshot) Comms() []string {
	return slices.Clone(s.comms)
}

// PidsOfComm returns the pids running comm. Unknown comms yield an empty slice.
func (s *Snapshot) PidsOfComm(comm string) []int {
	pids, ok := s.commToPids[comm]
	if !ok {
		return []int{}
	}
	return slices.Clone(pids)
}

func (s *Snapshot) CommOfPid(pid int) (string, error) {
	comm, ok := s.pidToComm[pid]
	if !ok {
		return "", fmt.Errorf("comm of pid %d: %w", pid, ErrNotFound)
	}
	return comm, nil
}

func (s *Snapshot) CmdlineOfPid(pid int) ([]string, error) {
	args, ok := s.pidToCmdline[pid]
	if !ok {
		return nil, fmt.Errorf("cmdline of pid %d: %w", pid, ErrNotFound)
	}
	return slices.Clone(args), nil
}

func (s *Snapshot) IsCommRunning(comm string) bool {
	_, ok := s.commToPids[comm]
	return ok
}

// Processes returns the snapshot as model processes in enumeration order.
func (s *Snapshot) Processes() []model.Process {
	out := make([]model.Process, 0, len(s.pids))
	for _, pid := range s.pids {
		out = append(out, model.Process{
			PID:     pid,
			Command: s.pidToComm[pid],
			Args:    slices.Clone(s.pidToCmdline[pid]),
		})
	}
	return out
}
