package player

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/pranshuparmar/musicctl/internal/config"
	"github.com/pranshuparmar/musicctl/internal/proc"
)

const testOutFile = "/home/user/.config/pianobar/out"

// testConfig is the default config with paths pointed into the test fs.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.ProcRoot = "/proc"
	cfg.Pianobar.OutFile = testOutFile
	return cfg
}

// addProc adds /proc/<pid>/{comm,cmdline} to fs.
func addProc(t *testing.T, fs afero.Fs, pid, comm string) {
	t.Helper()
	dir := filepath.Join("/proc", pid)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, filepath.Join(dir, "comm"), []byte(comm+"\n"), 0o444); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, filepath.Join(dir, "cmdline"), []byte(comm+"\x00"), 0o444); err != nil {
		t.Fatal(err)
	}
}

// newTestController builds a controller over an in-memory /proc holding
// procs (pid → comm). Sleeps are recorded, not slept.
func newTestController(t *testing.T, procs map[string]string, opts ...Option) (*Controller, afero.Fs, *[]time.Duration) {
	t.Helper()
	return newTestControllerWithConfig(t, testConfig(), procs, opts...)
}

func newTestControllerWithConfig(t *testing.T, cfg config.Config, procs map[string]string, opts ...Option) (*Controller, afero.Fs, *[]time.Duration) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/proc", 0o755); err != nil {
		t.Fatal(err)
	}
	for pid, comm := range procs {
		addProc(t, fs, pid, comm)
	}

	store := proc.NewStore(fs, "/proc", nil)
	store.Refresh()

	var slept []time.Duration
	base := []Option{
		WithFs(fs),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	}
	c := NewController(store, cfg, append(base, opts...)...)
	return c, fs, &slept
}
