package completion

import (
	"sort"
	"strings"

	"github.com/pranshuparmar/musicctl/internal/player"
)

// CompleteType represents what kind of completion is requested
type CompleteType string

const (
	CompleteCommands  CompleteType = "commands"
	CompletePlayers   CompleteType = "players"
	CompleteProcesses CompleteType = "processes"
)

// Words are the non-player arguments the root command accepts.
var Words = []string{"player", "commands", "usage", "help"}

// CommLister lists the comms of running processes.
type CommLister interface {
	Comms() []string
}

// Candidates returns completion candidates for the given type. procs is
// only consulted for CompleteProcesses and may be nil otherwise.
func Candidates(completeType CompleteType, procs CommLister) []string {
	var candidates []string

	switch completeType {
	case CompleteCommands:
		for _, cmd := range player.AllCommands() {
			candidates = append(candidates, string(cmd))
		}
		candidates = append(candidates, Words...)
	case CompletePlayers:
		candidates = player.BackendNames()
	case CompleteProcesses:
		if procs != nil {
			candidates = procs.Comms()
		}
	}

	return uniqueSorted(candidates)
}

// Filter keeps the candidates starting with prefix.
func Filter(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// shellMetaChars contains characters that are unsafe in shell completion contexts.
// Process names containing these characters are filtered out to prevent command injection.
const shellMetaChars = " \t\n$`\\\"';&|<>(){}[]!*?~"

// isShellSafe returns true if the string contains no shell metacharacters
func isShellSafe(s string) bool {
	return !strings.ContainsAny(s, shellMetaChars)
}

// uniqueSorted returns a sorted slice with duplicates removed
func uniqueSorted(items []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" && !seen[item] && isShellSafe(item) {
			seen[item] = true
			result = append(result, item)
		}
	}
	sort.Strings(result)
	return result
}
