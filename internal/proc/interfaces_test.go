package proc

import (
	"bytes"
	"testing"
)

func TestEchoExecutor(t *testing.T) {
	var buf bytes.Buffer
	e := NewEchoExecutor(&buf)

	out, err := e.Run("mpc", "toggle")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Run output = %q, want empty", out)
	}

	if _, err := e.Run("pianoctl", "n"); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.String(), "mpc toggle\npianoctl n\n"; got != want {
		t.Errorf("echoed %q, want %q", got, want)
	}
}

func TestEchoTerminator(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEchoTerminator(&buf).Terminate([]int{202, 203}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "kill 202 203\n"; got != want {
		t.Errorf("echoed %q, want %q", got, want)
	}
}

func TestRealExecutorMissingBinary(t *testing.T) {
	r := &RealExecutor{}
	if _, err := r.Run("musicctl-test-no-such-binary"); err == nil {
		t.Error("expected error for missing binary")
	}
}
