package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out.String(), "sortable 1.0.0") || !strings.Contains(out.String(), "commit: abc123") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestRoot_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"layout", "simulate", "demo"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestRoot_DebugLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"simulate", "testdata/drag.toml", "--debug-log", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read debug log: %v", err)
	}
	if !strings.Contains(string(data), "drag:") {
		t.Errorf("debug log has no drag trace:\n%s", data)
	}
}
