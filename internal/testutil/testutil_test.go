package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	path := WriteConfig(t, dir, "[machine]\naddress = \"10.0.0.1\"\n")
	if filepath.Base(path) != "harness.toml" {
		t.Errorf("unexpected config name %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "[machine]\naddress = \"10.0.0.1\"\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriteStubCreatesExecutableThatSucceeds(t *testing.T) {
	dir := t.TempDir()
	WriteStub(t, dir, "chromium")

	info, err := os.Stat(filepath.Join(dir, "chromium"))
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}
	if err := exec.Command(filepath.Join(dir, "chromium")).Run(); err != nil {
		t.Fatalf("expected success exit, got %v", err)
	}
}

func TestWriteStubWithExit(t *testing.T) {
	dir := t.TempDir()
	WriteStubWithExit(t, dir, "failing", 7)

	err := exec.Command(filepath.Join(dir, "failing")).Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %v", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Errorf("exit code = %d, want 7", exitErr.ExitCode())
	}
}
