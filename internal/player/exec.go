package player

import "bytes"

// execVerbs are the arguments a control client takes for each operation.
type execVerbs struct {
	toggle   string
	previous string
	next     string
	stop     string
	status   string
}

var (
	mpcVerbs       = execVerbs{toggle: "toggle", previous: "prev", next: "next", stop: "stop", status: "status"}
	playerctlVerbs = execVerbs{toggle: "play-pause", previous: "previous", next: "next", stop: "stop", status: "status"}
)

// execControl drives a player through its command-line client and reads
// the playing state from the client's status output.
type execControl struct {
	c      *Controller
	bin    string
	verbs  execVerbs
	marker string
}

func (e *execControl) Toggle() error   { return e.c.fire(e.bin, e.verbs.toggle) }
func (e *execControl) Previous() error { return e.c.fire(e.bin, e.verbs.previous) }
func (e *execControl) Next() error     { return e.c.fire(e.bin, e.verbs.next) }
func (e *execControl) Stop() error     { return e.c.fire(e.bin, e.verbs.stop) }

// Playing looks for the case-sensitive marker in the status output. A status
// command that fails is reported as an error, which callers treat as idle.
func (e *execControl) Playing() (bool, error) {
	out, err := e.c.exec.Run(e.bin, e.verbs.status)
	if err != nil {
		return false, err
	}
	return bytes.Contains(out, []byte(e.marker)), nil
}
