package player

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// positionWidth is len("MM:SS/MM:SS").
const positionWidth = 11

var positionPattern = regexp.MustCompile(`^\d{2}:\d{2}/\d{2}:\d{2}$`)

// positionProbe decides whether pianobar is playing by watching the
// elapsed/total field it keeps rewriting at the end of its output file.
//
// The answer is approximate: it samples wall-clock state twice, interval
// apart, so it takes at least interval to answer and can be fooled by a
// track change or a stalled write between the two samples.
type positionProbe struct {
	fs         afero.Fs
	path       string
	retries    int
	retryDelay time.Duration
	interval   time.Duration
	sleep      func(time.Duration)
}

// Playing takes two readings interval apart. Both must be well formed and
// differ for the player to count as playing.
func (p positionProbe) Playing() (bool, error) {
	first, ok := p.read()
	p.sleep(p.interval)
	second, ok2 := p.read()

	if !ok || !ok2 {
		return false, fmt.Errorf("malformed pianobar position %q, %q in %s", first, second, p.path)
	}
	return first != second, nil
}

// read returns the last position field, retrying up to p.retries times while
// the file is missing or mid-write.
func (p positionProbe) read() (string, bool) {
	for attempt := 0; ; attempt++ {
		pos, err := p.readOnce()
		if err == nil && positionPattern.MatchString(pos) {
			return pos, true
		}
		if attempt >= p.retries {
			return pos, false
		}
		p.sleep(p.retryDelay)
	}
}

func (p positionProbe) readOnce() (string, error) {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		return "", err
	}
	s := strings.TrimRight(string(data), " \t\r\n")
	if len(s) > positionWidth {
		s = s[len(s)-positionWidth:]
	}
	return s, nil
}
