package player

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/pranshuparmar/musicctl/internal/config"
	"github.com/pranshuparmar/musicctl/internal/logging"
	"github.com/pranshuparmar/musicctl/internal/proc"
)

// MediaControl is a point-in-time control surface shared by the mpd and
// MPRIS backends.
type MediaControl interface {
	Toggle() error
	Previous() error
	Next() error
	Stop() error
	Playing() (bool, error)
}

// Controller resolves the active backend and runs commands against it.
// It is not safe for concurrent use.
type Controller struct {
	store *proc.Store
	cfg   config.Config
	exec  proc.Executor
	term  proc.Terminator
	fs    afero.Fs
	log   logging.Logger
	sleep func(time.Duration)
	trial bool

	mpd   MediaControl
	mpris MediaControl
}

type Option func(*Controller)

func WithExecutor(e proc.Executor) Option {
	return func(c *Controller) { c.exec = e }
}

func WithTerminator(t proc.Terminator) Option {
	return func(c *Controller) { c.term = t }
}

// WithFs sets the filesystem the pianobar output file is read from.
func WithFs(fs afero.Fs) Option {
	return func(c *Controller) { c.fs = fs }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithSleep replaces time.Sleep for the probe and kill grace delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Controller) { c.sleep = sleep }
}

// WithTrial prints every control invocation and kill to w instead of
// running it. Native transports are bypassed so nothing reaches a player.
func WithTrial(w io.Writer) Option {
	return func(c *Controller) {
		c.trial = true
		c.exec = proc.NewEchoExecutor(w)
		c.term = proc.NewEchoTerminator(w)
	}
}

func WithMPDControl(m MediaControl) Option {
	return func(c *Controller) { c.mpd = m }
}

func WithMPRISControl(m MediaControl) Option {
	return func(c *Controller) { c.mpris = m }
}

// NewController wires a controller over store. Transports follow cfg unless
// replaced by an option.
func NewController(store *proc.Store, cfg config.Config, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		cfg:   cfg,
		exec:  &proc.RealExecutor{},
		fs:    afero.NewOsFs(),
		log:   logging.Nop(),
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.term == nil {
		c.term = proc.NewTerminator()
	}

	if c.mpd == nil {
		if cfg.MPD.Transport == config.TransportNative && !c.trial {
			c.mpd = newNativeMPD(cfg.MPD.Network, cfg.MPD.Address, cfg.MPD.Password)
		} else {
			c.mpd = &execControl{c: c, bin: cfg.MPD.Client, verbs: mpcVerbs, marker: "playing"}
		}
	}
	if c.mpris == nil {
		if cfg.Playerctl.Transport == config.TransportNative && !c.trial {
			c.mpris = &nativeMPRIS{}
		} else {
			c.mpris = &execControl{c: c, bin: cfg.Playerctl.Client, verbs: playerctlVerbs, marker: "Playing"}
		}
	}
	return c
}

// Current selects the backend for the store's latest snapshot.
func (c *Controller) Current() Backend {
	b := Select(c.store.Snapshot(), func() bool { return c.isPlaying(MPD) })
	c.log.Debugln("selected player", b.Name)
	return b
}

// Dispatch runs the named command on backend b. An unknown name yields
// ErrInvalidCommand and is_playing yields ErrNotPlaying when idle.
func (c *Controller) Dispatch(b Backend, name string) error {
	act, ok := lookup(b.Kind, Command(name))
	if !ok {
		return fmt.Errorf("%w: %q is not a %s command", ErrInvalidCommand, name, b.Name)
	}
	c.log.Debugln("dispatching", name, "to", b.Name)
	return act(c)
}

// IsPlaying probes backend b. Probe failures count as not playing.
func (c *Controller) IsPlaying(b Backend) bool {
	return c.isPlaying(b.Kind)
}

func (c *Controller) isPlaying(k Kind) bool {
	var (
		playing bool
		err     error
	)
	switch k {
	case MPD:
		playing, err = c.mpd.Playing()
	case Pianobar:
		playing, err = c.positionProbe().Playing()
	case Playerctl:
		playing, err = c.mpris.Playing()
	}
	if err != nil {
		c.log.Debugln(k, "probe failed:", err)
		return false
	}
	return playing
}

func (c *Controller) positionProbe() positionProbe {
	return positionProbe{
		fs:         c.fs,
		path:       c.cfg.Pianobar.OutFile,
		retries:    c.cfg.Probe.Retries,
		retryDelay: c.cfg.Probe.RetryDelay,
		interval:   c.cfg.Probe.Interval,
		sleep:      c.sleep,
	}
}

// fire runs a control binary. A non-zero exit still counts as issued; only a
// binary that cannot be started is an error.
func (c *Controller) fire(bin string, args ...string) error {
	out, err := c.exec.Run(bin, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			c.log.Debugln(bin, strings.Join(args, " "), "exited with status", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("run %s: %w", bin, err)
	}
	if len(out) > 0 {
		c.log.Debugln(bin, "output:", strings.TrimSpace(string(out)))
	}
	return nil
}
