package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/musicctl/internal/completion"
	"github.com/pranshuparmar/musicctl/internal/config"
	"github.com/pranshuparmar/musicctl/internal/output"
	"github.com/pranshuparmar/musicctl/internal/proc"
	"github.com/pranshuparmar/musicctl/pkg/model"
)

func newPidofCmd(o *options) *cobra.Command {
	var (
		withCmdline bool
		jsonOut     bool
		noColor     bool
	)
	cmd := &cobra.Command{
		Use:   "pidof <comm>",
		Short: "Print the pids of processes with the given comm",
		Example: `  musicctl pidof pianobar
  musicctl pidof mpd --cmdline
  musicctl pidof mopidy --json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{msg: "pidof takes exactly one process name"}
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			store, err := o.store()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return completion.Filter(completion.Candidates(completion.CompleteProcesses, store), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := o.store()
			if err != nil {
				return err
			}
			snap := store.Snapshot()

			procs := []model.Process{}
			for _, pid := range snap.PidsOfComm(args[0]) {
				p := model.Process{PID: pid, Command: args[0]}
				if withCmdline || jsonOut {
					// a missing entry cannot happen within one snapshot
					p.Args, _ = snap.CmdlineOfPid(pid)
				}
				procs = append(procs, p)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				s, err := output.ToJSON(procs)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			if len(procs) == 0 {
				return errNoProcess
			}
			if jsonOut {
				return nil
			}

			if withCmdline {
				output.RenderProcesses(out, procs, !noColor)
			} else {
				output.RenderPids(out, procs)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withCmdline, "cmdline", false, "print each process with its arguments")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	return cmd
}

// store reads a fresh snapshot from the configured proc root.
func (o *options) store() (*proc.Store, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	store := proc.NewStore(o.fs, cfg.ProcRoot, o.logger())
	store.Refresh()
	return store, nil
}
