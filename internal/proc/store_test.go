package proc

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"

	"github.com/pranshuparmar/musicctl/internal/logging"
)

type fakeProc struct {
	pid     string
	comm    string
	cmdline string
}

func newProcFs(t *testing.T, procs []fakeProc) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range procs {
		dir := filepath.Join("/proc", p.pid)
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		if p.comm != "" {
			if err := afero.WriteFile(fs, filepath.Join(dir, "comm"), []byte(p.comm), 0o444); err != nil {
				t.Fatalf("write comm: %v", err)
			}
		}
		if p.cmdline != "-" {
			if err := afero.WriteFile(fs, filepath.Join(dir, "cmdline"), []byte(p.cmdline), 0o444); err != nil {
				t.Fatalf("write cmdline: %v", err)
			}
		}
	}
	return fs
}

func TestStoreRefresh(t *testing.T) {
	fs := newProcFs(t, []fakeProc{
		{"1", "systemd\n", "/sbin/init\x00splash\x00"},
		{"101", "mpd\n", "mpd\x00--no-daemon\x00"},
		{"202", "pianobar\n", "pianobar\x00"},
		{"203", "pianobar\n", "pianobar\x00"},
		{"2", "kthreadd\n", ""},
		{"303", "ghost\n", "-"}, // cmdline vanished
		{"404", "", "-"},        // comm vanished
		{"self", "musicctl\n", "musicctl\x00"},
	})
	if err := afero.WriteFile(fs, "/proc/uptime", []byte("1.0 2.0\n"), 0o444); err != nil {
		t.Fatal(err)
	}

	store := NewStore(fs, "/proc", logging.Nop())
	if got := store.Pids(); len(got) != 0 {
		t.Fatalf("Pids() before Refresh = %v, want empty", got)
	}

	store.Refresh()

	pids := store.Pids()
	slices.Sort(pids)
	if want := []int{1, 2, 101, 202, 203}; !slices.Equal(pids, want) {
		t.Errorf("Pids() = %v, want %v", pids, want)
	}

	for _, comm := range []string{"systemd", "kthreadd", "mpd", "pianobar"} {
		if !store.IsCommRunning(comm) {
			t.Errorf("IsCommRunning(%q) = false, want true", comm)
		}
	}
	for _, comm := range []string{"ghost", "musicctl", ""} {
		if store.IsCommRunning(comm) {
			t.Errorf("IsCommRunning(%q) = true, want false", comm)
		}
	}

	got := store.PidsOfComm("pianobar")
	slices.Sort(got)
	if !slices.Equal(got, []int{202, 203}) {
		t.Errorf("PidsOfComm(pianobar) = %v", got)
	}

	args, err := store.CmdlineOfPid(1)
	if err != nil {
		t.Fatalf("CmdlineOfPid(1): %v", err)
	}
	if !slices.Equal(args, []string{"/sbin/init", "splash"}) {
		t.Errorf("CmdlineOfPid(1) = %q", args)
	}

	args, err = store.CmdlineOfPid(2)
	if err != nil {
		t.Fatalf("CmdlineOfPid(2): %v", err)
	}
	if len(args) != 0 {
		t.Errorf("kernel thread cmdline = %q, want empty", args)
	}

	if _, err := store.CommOfPid(303); !errors.Is(err, ErrNotFound) {
		t.Errorf("CommOfPid(303) error = %v, want ErrNotFound", err)
	}
}

func TestStoreRefreshReplacesSnapshot(t *testing.T) {
	fs := newProcFs(t, []fakeProc{{"202", "pianobar\n", "pianobar\x00"}})
	store := NewStore(fs, "/proc", nil)
	store.Refresh()

	before := store.Snapshot()
	if !before.IsCommRunning("pianobar") {
		t.Fatal("pianobar should be running before removal")
	}

	if err := fs.RemoveAll("/proc/202"); err != nil {
		t.Fatal(err)
	}
	store.Refresh()

	if store.IsCommRunning("pianobar") {
		t.Error("pianobar still running after refresh")
	}
	// old snapshot is untouched
	if !before.IsCommRunning("pianobar") {
		t.Error("previous snapshot was mutated by Refresh")
	}
}

func TestStoreRefreshMissingRoot(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "/nonexistent", nil)
	store.Refresh()
	if got := store.Comms(); len(got) != 0 {
		t.Errorf("Comms() = %v, want empty", got)
	}
}

func TestSplitCmdline(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "pianobar\x00", []string{"pianobar"}},
		{"args", "mpc\x00status\x00", []string{"mpc", "status"}},
		{"no trailing nul", "a\x00b", []string{"a", "b"}},
		{"empty arg kept", "a\x00\x00b\x00", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCmdline([]byte(tt.raw))
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitCmdline(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
