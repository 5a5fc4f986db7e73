package player

import (
	"fmt"

	"github.com/fhs/gompd/v2/mpd"
)

func mpdToggle(c *Controller) error   { return c.mpd.Toggle() }
func mpdPrevious(c *Controller) error { return c.mpd.Previous() }
func mpdNext(c *Controller) error     { return c.mpd.Next() }
func mpdStop(c *Controller) error     { return c.mpd.Stop() }

// nativeMPD speaks the MPD protocol directly, opening a short-lived
// connection per operation.
type nativeMPD struct {
	network  string
	addr     string
	password string
}

func newNativeMPD(network, addr, password string) *nativeMPD {
	if network == "" {
		network = "tcp"
	}
	return &nativeMPD{network: network, addr: addr, password: password}
}

func (m *nativeMPD) do(fn func(c *mpd.Client) error) error {
	var (
		c   *mpd.Client
		err error
	)
	if m.password != "" {
		c, err = mpd.DialAuthenticated(m.network, m.addr, m.password)
	} else {
		c, err = mpd.Dial(m.network, m.addr)
	}
	if err != nil {
		return fmt.Errorf("dial mpd %s %s: %w", m.network, m.addr, err)
	}
	defer c.Close()

	return fn(c)
}

// Toggle mirrors mpc toggle: pause while playing, play otherwise.
func (m *nativeMPD) Toggle() error {
	return m.do(func(c *mpd.Client) error {
		status, err := c.Status()
		if err != nil {
			return err
		}
		if status["state"] == "play" {
			return c.Pause(true)
		}
		return c.Play(-1)
	})
}

func (m *nativeMPD) Previous() error {
	return m.do(func(c *mpd.Client) error { return c.Previous() })
}

func (m *nativeMPD) Next() error {
	return m.do(func(c *mpd.Client) error { return c.Next() })
}

func (m *nativeMPD) Stop() error {
	return m.do(func(c *mpd.Client) error { return c.Stop() })
}

func (m *nativeMPD) Playing() (bool, error) {
	var playing bool
	err := m.do(func(c *mpd.Client) error {
		status, err := c.Status()
		if err != nil {
			return err
		}
		playing = status["state"] == "play"
		return nil
	})
	return playing, err
}
