package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pranshuparmar/musicctl/pkg/model"
)

var (
	colorResetShort   = "\033[0m"
	colorMagentaShort = "\033[35m"
	colorBoldShort    = "\033[2m"
)

// RenderPids prints pids on one line, the way pidof(1) does.
func RenderPids(w io.Writer, procs []model.Process) {
	pids := make([]string, len(procs))
	for i, p := range procs {
		pids[i] = strconv.Itoa(p.PID)
	}
	fmt.Fprintln(w, strings.Join(pids, " "))
}

// RenderProcesses prints each process with its argv underneath.
func RenderProcesses(w io.Writer, procs []model.Process, colorEnabled bool) {
	for _, p := range procs {
		if colorEnabled {
			fmt.Fprintf(w, "%s (%spid %d%s)\n", p.Command, colorBoldShort, p.PID, colorResetShort)
		} else {
			fmt.Fprintf(w, "%s (pid %d)\n", p.Command, p.PID)
		}
		if len(p.Args) == 0 {
			continue
		}
		prefix := "  └─ "
		if colorEnabled {
			prefix = "  " + colorMagentaShort + "└─ " + colorResetShort
		}
		fmt.Fprintf(w, "%s%s\n", prefix, strings.Join(p.Args, " "))
	}
}
