package notifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), lockfileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write lockfile: %v", err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "tempo-tray"}, nil
	}

	path := writeLockfile(t, "8421|1234|s3cret\n")
	port, secret, err := findAndValidateTrayProcess(path)
	if err != nil {
		t.Fatalf("valid lockfile rejected: %v", err)
	}
	if port != "8421" || secret != "s3cret" {
		t.Errorf("parsed port=%q secret=%q", port, secret)
	}
}

func TestFindAndValidateTrayProcessErrors(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "tempo-tray"}, nil
	}

	cases := []struct {
		name    string
		content string
	}{
		{"malformed", "8421|1234"},
		{"bad port", "notaport|1234|s3cret"},
		{"port out of range", "70000|1234|s3cret"},
		{"bad pid", "8421|notapid|s3cret"},
		{"empty secret", "8421|1234|  "},
	}
	for _, c := range cases {
		path := writeLockfile(t, c.content)
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Errorf("%s: expected error for %q", c.name, c.content)
		}
	}

	if _, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "missing.lock")); err == nil {
		t.Error("missing lockfile should report the tray as not running")
	}
}

func TestFindAndValidateTrayProcessWrongExecutable(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "impostor"}, nil
	}

	path := writeLockfile(t, "8421|1234|s3cret")
	if _, _, err := findAndValidateTrayProcess(path); err == nil {
		t.Error("a process that is not the tray must be rejected")
	}
}
