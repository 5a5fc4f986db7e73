package proc

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/pranshuparmar/musicctl/internal/logging"
	"github.com/pranshuparmar/musicctl/pkg/model"
)

// DefaultRoot is the procfs mount point.
const DefaultRoot = "/proc"

// Store holds the latest process snapshot. Refresh builds a new snapshot and
// swaps it in atomically, so readers never observe a partial refresh.
type Store struct {
	fs   afero.Fs
	root string
	log  logging.Logger
	cur  atomic.Pointer[Snapshot]
}

// NewStore returns a store reading from root on fs. The store starts with an
// empty snapshot; call Refresh to populate it.
func NewStore(fs afero.Fs, root string, log logging.Logger) *Store {
	if root == "" {
		root = DefaultRoot
	}
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{fs: fs, root: root, log: log}
	s.cur.Store(NewSnapshot(nil))
	return s
}

// Snapshot returns the latest completed snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.cur.Load()
}

// Refresh re-reads the process table. Processes that exit between the
// directory listing and the detail reads are left out.
func (s *Store) Refresh() {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		s.log.Debugln("list", s.root, "failed:", err)
		s.cur.Store(NewSnapshot(nil))
		return
	}

	procs := make([]model.Process, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}

		p, ok := s.readProcess(pid, entry.Name())
		if !ok {
			continue
		}
		procs = append(procs, p)
	}

	s.cur.Store(NewSnapshot(procs))
	s.log.Debugln("snapshot refreshed:", len(procs), "processes")
}

func (s *Store) readProcess(pid int, dir string) (model.Process, bool) {
	comm, err := afero.ReadFile(s.fs, filepath.Join(s.root, dir, "comm"))
	if err != nil {
		// exited since the listing
		return model.Process{}, false
	}
	cmdline, err := afero.ReadFile(s.fs, filepath.Join(s.root, dir, "cmdline"))
	if err != nil {
		return model.Process{}, false
	}

	return model.Process{
		PID:     pid,
		Command: strings.TrimRight(string(comm), "\n"),
		Args:    splitCmdline(cmdline),
	}, true
}

// splitCmdline splits a NUL-separated argument vector. Kernel threads have an
// empty cmdline and get an empty vector.
func splitCmdline(raw []byte) []string {
	s := strings.TrimRight(string(raw), "\x00\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\x00")
}

func (s *Store) Pids() []int {
	return s.Snapshot().Pids()
}

func (s *Store) Comms() []string {
	return s.Snapshot().Comms()
}

func (s *Store) PidsOfComm(comm string) []int {
	return s.Snapshot().PidsOfComm(comm)
}

func (s *Store) IsCommRunning(comm string) bool {
	return s.Snapshot().IsCommRunning(comm)
}

func (s *Store) CommOfPid(pid int) (string, error) {
	return s.Snapshot().CommOfPid(pid)
}

func (s *Store) CmdlineOfPid(pid int) ([]string, error) {
	return s.Snapshot().CmdlineOfPid(pid)
}
