//go:build !unix

package proc

import (
	"errors"
	"runtime"
)

type unsupportedTerminator struct{}

func NewTerminator() Terminator {
	return unsupportedTerminator{}
}

func (unsupportedTerminator) Terminate(pids []int) error {
	return errors.New("terminating processes is not supported on " + runtime.GOOS)
}
