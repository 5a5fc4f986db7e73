package player

import "errors"

// pianoctl keys
const (
	pianoKeyPause   = "p"
	pianoKeyLike    = "+"
	pianoKeyDislike = "-"
	pianoKeyNext    = "n"
	pianoKeyQuit    = "q"
	pianoKeyTired   = "t"
)

func (c *Controller) pianoctl(key string) error {
	return c.fire(c.cfg.Pianobar.Control, key)
}

func pianobarToggle(c *Controller) error  { return c.pianoctl(pianoKeyPause) }
func pianobarLike(c *Controller) error    { return c.pianoctl(pianoKeyLike) }
func pianobarDislike(c *Controller) error { return c.pianoctl(pianoKeyDislike) }
func pianobarNext(c *Controller) error    { return c.pianoctl(pianoKeyNext) }
func pianobarTired(c *Controller) error   { return c.pianoctl(pianoKeyTired) }

// pianobarStop asks pianobar to quit and, since it sometimes ignores the
// request, terminates whatever pianobar processes are left after the grace
// period.
func pianobarStop(c *Controller) error {
	quitErr := c.pianoctl(pianoKeyQuit)

	c.sleep(c.cfg.Probe.KillGrace)
	c.store.Refresh()

	snap := c.store.Snapshot()
	if !snap.IsCommRunning(pianobarComm) {
		return quitErr
	}

	pids := snap.PidsOfComm(pianobarComm)
	c.log.Infoln("pianobar ignored quit, terminating pids", pids)
	return errors.Join(quitErr, c.term.Terminate(pids))
}
