package model

// Process is one entry of a process table snapshot.
type Process struct {
	PID     int      `json:"pid"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// CommandSet lists the commands a player backend accepts.
type CommandSet struct {
	Player   string   `json:"player"`
	Commands []string `json:"commands"`
}
