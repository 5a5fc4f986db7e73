package player

import (
	"errors"
	"fmt"
)

// Kind tags the control surface a backend is driven through.
type Kind int

const (
	MPD Kind = iota
	Pianobar
	Playerctl
)

func (k Kind) String() string {
	switch k {
	case MPD:
		return "mpd"
	case Pianobar:
		return "pianobar"
	case Playerctl:
		return "playerctl"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Backend is a supported player. Name is the display identity; two backends
// with the same Kind share one command table and probe.
type Backend struct {
	Kind Kind
	Name string
}

func (b Backend) String() string {
	return b.Name
}

var (
	BackendMPD       = Backend{Kind: MPD, Name: "mpd"}
	BackendMopidy    = Backend{Kind: MPD, Name: "mopidy"}
	BackendPianobar  = Backend{Kind: Pianobar, Name: "pianobar"}
	BackendPlayerctl = Backend{Kind: Playerctl, Name: "playerctl"}
)

// Backends lists every known backend in display order.
var Backends = []Backend{BackendMopidy, BackendMPD, BackendPianobar, BackendPlayerctl}

// ErrInvalidBackend is returned when an explicit player name is unknown.
var ErrInvalidBackend = errors.New("invalid player")

// backendAliases maps the names accepted by --player, including the names of
// each player's control client.
var backendAliases = map[string]Backend{
	"mpd":       BackendMPD,
	"mpc":       BackendMPD,
	"mopidy":    BackendMopidy,
	"pianobar":  BackendPianobar,
	"pianoctl":  BackendPianobar,
	"playerctl": BackendPlayerctl,
	"mpris":     BackendPlayerctl,
}

// ParseBackend resolves an explicit player name.
func ParseBackend(name string) (Backend, error) {
	b, ok := backendAliases[name]
	if !ok {
		return Backend{}, fmt.Errorf("%w: %q", ErrInvalidBackend, name)
	}
	return b, nil
}

// BackendNames returns every name ParseBackend accepts.
func BackendNames() []string {
	names := make([]string, 0, len(backendAliases))
	for name := range backendAliases {
		names = append(names, name)
	}
	return names
}
