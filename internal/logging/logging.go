// Package logging provides the diagnostic logger used across musicctl.
//
// Normal runs stay silent so stdout and the exit status can be composed in
// shell pipelines; --verbose switches to a gologger logger.
package logging

import (
	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Logger is the subset of gologger's logger that musicctl uses.
type Logger interface {
	Debugln(v ...interface{})
	Infoln(v ...interface{})
	Warn(v ...interface{})
}

// New returns a colored gologger logger prefixed with name when verbose is
// set, and a logger that discards everything otherwise.
func New(name string, verbose bool) Logger {
	if !verbose {
		return Nop()
	}
	return logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, name))
}

type nopLogger struct{}

func (nopLogger) Debugln(v ...interface{}) {}
func (nopLogger) Infoln(v ...interface{})  {}
func (nopLogger) Warn(v ...interface{})    {}

// Nop returns a Logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}
