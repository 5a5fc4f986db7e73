package player

import (
	"errors"
	"slices"

	"github.com/pranshuparmar/musicctl/pkg/model"
)

// Command is an abstract player command.
type Command string

const (
	Play      Command = "play"
	Pause     Command = "pause"
	Back      Command = "back"
	Next      Command = "next"
	Quit      Command = "quit"
	Stop      Command = "stop"
	Tired     Command = "tired"
	Like      Command = "like"
	Dislike   Command = "dislike"
	IsPlaying Command = "is_playing"
)

var (
	// ErrInvalidCommand is returned when a backend has no entry for a command.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrNotPlaying is the failing outcome of is_playing.
	ErrNotPlaying = errors.New("not playing")
)

type action func(c *Controller) error

// commandTable is the single source of truth for what each backend kind
// accepts. play and pause share the toggle action everywhere.
var commandTable = map[Kind]map[Command]action{
	MPD: {
		Play:      mpdToggle,
		Pause:     mpdToggle,
		Back:      mpdPrevious,
		Next:      mpdNext,
		Quit:      mpdStop,
		Stop:      mpdStop,
		IsPlaying: probeAction(MPD),
	},
	Pianobar: {
		Play:  pianobarToggle,
		Pause: pianobarToggle,
		// pianobar cannot go back a track
		Back:      pianobarLike,
		Next:      pianobarNext,
		Quit:      pianobarStop,
		Stop:      pianobarStop,
		Tired:     pianobarTired,
		Like:      pianobarLike,
		Dislike:   pianobarDislike,
		IsPlaying: probeAction(Pianobar),
	},
	Playerctl: {
		Play:      mprisToggle,
		Pause:     mprisToggle,
		Back:      mprisPrevious,
		Next:      mprisNext,
		Quit:      mprisStop,
		Stop:      mprisStop,
		IsPlaying: probeAction(Playerctl),
	},
}

func lookup(k Kind, cmd Command) (action, bool) {
	act, ok := commandTable[k][cmd]
	return act, ok
}

// Supports reports whether backend b accepts cmd.
func Supports(b Backend, cmd Command) bool {
	_, ok := lookup(b.Kind, cmd)
	return ok
}

// Commands returns the commands of a backend kind in sorted order.
func Commands(k Kind) []Command {
	cmds := make([]Command, 0, len(commandTable[k]))
	for cmd := range commandTable[k] {
		cmds = append(cmds, cmd)
	}
	slices.Sort(cmds)
	return cmds
}

// AllCommands returns the sorted union of every backend's commands.
func AllCommands() []Command {
	seen := make(map[Command]bool)
	var cmds []Command
	for _, table := range commandTable {
		for cmd := range table {
			if !seen[cmd] {
				seen[cmd] = true
				cmds = append(cmds, cmd)
			}
		}
	}
	slices.Sort(cmds)
	return cmds
}

// CommandSets lists the commands of every known backend.
func CommandSets() []model.CommandSet {
	sets := make([]model.CommandSet, 0, len(Backends))
	for _, b := range Backends {
		var names []string
		for _, cmd := range Commands(b.Kind) {
			names = append(names, string(cmd))
		}
		sets = append(sets, model.CommandSet{Player: b.Name, Commands: names})
	}
	return sets
}

func probeAction(k Kind) action {
	return func(c *Controller) error {
		if !c.isPlaying(k) {
			return ErrNotPlaying
		}
		return nil
	}
}
