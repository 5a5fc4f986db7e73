package player

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	mprisPrefix    = "org.mpris.MediaPlayer2."
	mprisPath      = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	mprisInterface = "org.mpris.MediaPlayer2.Player"
)

var errNoMPRISPlayer = errors.New("no MPRIS player on the session bus")

func mprisToggle(c *Controller) error   { return c.mpris.Toggle() }
func mprisPrevious(c *Controller) error { return c.mpris.Previous() }
func mprisNext(c *Controller) error     { return c.mpris.Next() }
func mprisStop(c *Controller) error     { return c.mpris.Stop() }

// nativeMPRIS talks to the first MPRIS player on the session bus, the way
// playerctl does without --player.
type nativeMPRIS struct{}

func (m *nativeMPRIS) do(fn func(obj dbus.BusObject) error) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return fmt.Errorf("list bus names: %w", err)
	}
	name, ok := pickMPRISPlayer(names)
	if !ok {
		return errNoMPRISPlayer
	}
	return fn(conn.Object(name, mprisPath))
}

func (m *nativeMPRIS) call(method string) error {
	return m.do(func(obj dbus.BusObject) error {
		return obj.Call(mprisInterface+"."+method, 0).Err
	})
}

func (m *nativeMPRIS) Toggle() error   { return m.call("PlayPause") }
func (m *nativeMPRIS) Previous() error { return m.call("Previous") }
func (m *nativeMPRIS) Next() error     { return m.call("Next") }
func (m *nativeMPRIS) Stop() error     { return m.call("Stop") }

func (m *nativeMPRIS) Playing() (bool, error) {
	var playing bool
	err := m.do(func(obj dbus.BusObject) error {
		v, err := obj.GetProperty(mprisInterface + ".PlaybackStatus")
		if err != nil {
			return err
		}
		status, _ := v.Value().(string)
		playing = status == "Playing"
		return nil
	})
	return playing, err
}

// pickMPRISPlayer returns the lexically first MPRIS bus name.
func pickMPRISPlayer(names []string) (string, bool) {
	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisPrefix) {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return "", false
	}
	return slices.Min(players), true
}
