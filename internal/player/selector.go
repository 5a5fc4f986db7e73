package player

const (
	mpdComm      = "mpd"
	pianobarComm = "pianobar"
	mopidyComm   = "mopidy"
)

// CommSet answers whether a process with a given comm is running.
// *proc.Snapshot and *proc.Store both satisfy it.
type CommSet interface {
	IsCommRunning(comm string) bool
}

// Select picks the backend that should receive a command.
//
// When mpd and pianobar both run, mpdPlaying decides: an idle mpd means the
// user moved on to pianobar. mpdPlaying is only called in that case. With no
// known player running, playerctl is the fallback whether or not anything
// answers on MPRIS.
func Select(procs CommSet, mpdPlaying func() bool) Backend {
	mpd := procs.IsCommRunning(mpdComm)
	pianobar := procs.IsCommRunning(pianobarComm)

	switch {
	case mpd && pianobar:
		if mpdPlaying() {
			return BackendMPD
		}
		return BackendPianobar
	case mpd:
		return BackendMPD
	case pianobar:
		return BackendPianobar
	case procs.IsCommRunning(mopidyComm):
		return BackendMopidy
	default:
		return BackendPlayerctl
	}
}
