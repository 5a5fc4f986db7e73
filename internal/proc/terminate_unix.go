//go:build unix

package proc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// SignalTerminator sends SIGTERM, the default signal of kill(1).
type SignalTerminator struct{}

func NewTerminator() Terminator {
	return &SignalTerminator{}
}

// Terminate signals every pid. A pid that is already gone counts as
// terminated; the remaining failures are joined.
func (s *SignalTerminator) Terminate(pids []int) error {
	var errs []error
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		if err := unix.Kill(pid, unix.SIGTERM); err != nil {
			if errors.Is(err, unix.ESRCH) {
				continue
			}
			errs = append(errs, fmt.Errorf("kill %d: %w", pid, err))
		}
	}
	return errors.Join(errs...)
}
