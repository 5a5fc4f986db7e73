package completion

import (
	"slices"
	"testing"
)

type comms []string

func (c comms) Comms() []string { return c }

func TestCandidatesProcesses(t *testing.T) {
	procs := comms{"mpd", "bash", "pianobar", "bash", "evil;rm", "kworker/0:1", " "}
	got := Candidates(CompleteProcesses, procs)
	want := []string{"bash", "kworker/0:1", "mpd", "pianobar"}
	if !slices.Equal(got, want) {
		t.Errorf("Candidates(processes) = %v, want %v", got, want)
	}

	if got := Candidates(CompleteProcesses, nil); len(got) != 0 {
		t.Errorf("Candidates(processes, nil) = %v, want empty", got)
	}
}

func TestCandidatesCommands(t *testing.T) {
	got := Candidates(CompleteCommands, nil)
	for _, want := range []string{"play", "tired", "is_playing", "player", "commands", "help"} {
		if !slices.Contains(got, want) {
			t.Errorf("Candidates(commands) is missing %q: %v", want, got)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("Candidates(commands) not sorted: %v", got)
	}
}

func TestCandidatesPlayers(t *testing.T) {
	got := Candidates(CompletePlayers, nil)
	want := []string{"mopidy", "mpc", "mpd", "mpris", "pianobar", "pianoctl", "playerctl"}
	if !slices.Equal(got, want) {
		t.Errorf("Candidates(players) = %v, want %v", got, want)
	}
}

func TestCandidatesUnknownType(t *testing.T) {
	if got := Candidates("ports", comms{"mpd"}); len(got) != 0 {
		t.Errorf("Candidates(ports) = %v, want empty", got)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]string{"pause", "pianobar", "play", "next"}, "p")
	want := []string{"pause", "pianobar", "play"}
	if !slices.Equal(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
	if got := Filter([]string{"next"}, "x"); got != nil {
		t.Errorf("Filter() = %v, want nil", got)
	}
}

func TestIsShellSafe(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"mpd", true},
		{"kworker/0:1", true},
		{"a b", false},
		{"$(x)", false},
		{"a|b", false},
	}
	for _, tt := range tests {
		if got := isShellSafe(tt.s); got != tt.want {
			t.Errorf("isShellSafe(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
