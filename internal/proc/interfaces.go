package proc

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

//go:generate mockgen -destination=mocks/mock_proc.go -package=mocks github.com/pranshuparmar/musicctl/internal/proc Executor,Terminator

// Executor runs an external command and returns its standard output.
type Executor interface {
	Run(name string, args ...string) ([]byte, error)
}

// Terminator forcibly ends a set of processes.
type Terminator interface {
	Terminate(pids []int) error
}

type RealExecutor struct{}

func (r *RealExecutor) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// EchoExecutor prints each command line instead of running it.
// Every call succeeds with empty output.
type EchoExecutor struct {
	W io.Writer
}

func NewEchoExecutor(w io.Writer) *EchoExecutor {
	return &EchoExecutor{W: w}
}

func (e *EchoExecutor) Run(name string, args ...string) ([]byte, error) {
	fmt.Fprintln(e.W, strings.Join(append([]string{name}, args...), " "))
	return nil, nil
}

// EchoTerminator prints the kill invocation it would have issued.
type EchoTerminator struct {
	W io.Writer
}

func NewEchoTerminator(w io.Writer) *EchoTerminator {
	return &EchoTerminator{W: w}
}

func (e *EchoTerminator) Terminate(pids []int) error {
	parts := []string{"kill"}
	for _, pid := range pids {
		parts = append(parts, strconv.Itoa(pid))
	}
	fmt.Fprintln(e.W, strings.Join(parts, " "))
	return nil
}
