package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pranshuparmar/musicctl/internal/completion"
	"github.com/pranshuparmar/musicctl/internal/config"
	"github.com/pranshuparmar/musicctl/internal/logging"
	"github.com/pranshuparmar/musicctl/internal/output"
	"github.com/pranshuparmar/musicctl/internal/player"
	"github.com/pranshuparmar/musicctl/internal/proc"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1 // not playing, nothing found, or a command that could not run
	exitUsage   = 2 // unknown command or player, missing or extra arguments, bad flags
)

// usageError is reported as a warning followed by the usage line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// errNoProcess makes pidof exit 1 without printing anything extra.
var errNoProcess = errors.New("no matching process")

// options holds the flags and the seams tests replace.
type options struct {
	player     string
	trial      bool
	configPath string
	verbose    bool

	fs    afero.Fs
	exec  proc.Executor
	term  proc.Terminator
	sleep func(time.Duration)
}

var rootCmd = newRootCmd(&options{fs: afero.NewOsFs()})

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return exitCode(rootCmd, rootCmd.Execute())
}

func newRootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "musicctl [flags] <command>",
		Short: "Control whichever music player is running",
		Long: `musicctl sends play, pause, next and friends to the music player that is
currently running: mpd, mopidy, pianobar or anything that speaks MPRIS.

Run "musicctl commands" to see what each player accepts.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &usageError{msg: "Error parsing arguments"}
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		ValidArgsFunction: completeCommands,
		RunE:              o.runCommand,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.player, "player", "p", "", "send the command to this player instead of the detected one")
	flags.BoolVarP(&o.trial, "trial", "t", false, "print control invocations instead of running them")
	flags.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/musicctl/config.yaml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log what musicctl is doing to stderr")
	_ = cmd.RegisterFlagCompletionFunc("player", completePlayers)

	cmd.SetGlobalNormalizationFunc(wordSepNormalize)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	cmd.AddCommand(
		newPlayerCmd(o),
		newCommandsCmd(),
		newUsageCmd(),
		newPidofCmd(o),
	)
	return cmd
}

// wordSepNormalize lets --no_color and --no.color stand for --no-color.
func wordSepNormalize(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.NewReplacer("_", "-", ".", "-").Replace(name))
}

func (o *options) runCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "Not enough arguments"}
	}

	c, err := o.controller(cmd)
	if err != nil {
		return err
	}
	b, err := o.backend(c)
	if err != nil {
		return err
	}
	return c.Dispatch(b, args[0])
}

func (o *options) logger() logging.Logger {
	return logging.New("musicctl", o.verbose)
}

// controller loads the config and builds a controller over a fresh
// snapshot.
func (o *options) controller(cmd *cobra.Command) (*player.Controller, error) {
	if o.player != "" {
		if _, err := player.ParseBackend(o.player); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	log := o.logger()

	store := proc.NewStore(o.fs, cfg.ProcRoot, log)
	store.Refresh()

	opts := []player.Option{player.WithLogger(log), player.WithFs(o.fs)}
	if o.exec != nil {
		opts = append(opts, player.WithExecutor(o.exec))
	}
	if o.term != nil {
		opts = append(opts, player.WithTerminator(o.term))
	}
	if o.sleep != nil {
		opts = append(opts, player.WithSleep(o.sleep))
	}
	if o.trial {
		opts = append(opts, player.WithTrial(cmd.OutOrStdout()))
	}
	return player.NewController(store, cfg, opts...), nil
}

// backend is the --player choice, or the detected one.
func (o *options) backend(c *player.Controller) (player.Backend, error) {
	if o.player != "" {
		return player.ParseBackend(o.player)
	}
	return c.Current(), nil
}

func newPlayerCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "player",
		Short: "Print the player commands would be sent to",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.controller(cmd)
			if err != nil {
				return err
			}
			b, err := o.backend(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.Name)
			return nil
		},
	}
}

func newCommandsCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands every player accepts",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := player.CommandSets()
			if jsonOut {
				out, err := output.ToJSON(sets)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			output.RenderCommands(cmd.OutOrStdout(), sets, false)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Print the usage line",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.Usage(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{msg: fmt.Sprintf("%s takes no arguments", cmd.Name())}
	}
	return nil
}

func completeCommands(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completion.Filter(completion.Candidates(completion.CompleteCommands, nil), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completePlayers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completion.Filter(completion.Candidates(completion.CompletePlayers, nil), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// exitCode reports err on cmd's stderr and maps it to an exit status.
func exitCode(cmd *cobra.Command, err error) int {
	var usageErr *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, player.ErrNotPlaying), errors.Is(err, errNoProcess):
		return exitFailure
	case errors.As(err, &usageErr),
		errors.Is(err, player.ErrInvalidCommand),
		errors.Is(err, player.ErrInvalidBackend):
		output.Warning(cmd.ErrOrStderr(), err.Error())
		output.Usage(cmd.ErrOrStderr(), cmd.Name())
		return exitUsage
	default:
		output.Error(cmd.ErrOrStderr(), err.Error())
		return exitFailure
	}
}
