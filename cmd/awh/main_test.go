package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	restore := func(v, c, b string) {
		Version, Commit, BuildDate = v, c, b
	}
	defer restore(Version, Commit, BuildDate)

	restore("1.2.3", "unknown", "unknown")
	if got := versionString(); got != "1.2.3" {
		t.Errorf("versionString() = %q, want bare version", got)
	}

	restore("1.2.3", "abc1234", "unknown")
	if got := versionString(); got != "1.2.3 (commit abc1234)" {
		t.Errorf("versionString() = %q", got)
	}

	restore("1.2.3", "abc1234", "2026-08-01")
	got := versionString()
	if !strings.Contains(got, "commit abc1234") || !strings.Contains(got, "built 2026-08-01") {
		t.Errorf("versionString() = %q", got)
	}
}

func TestRunMainExitsNonZeroOnError(t *testing.T) {
	restore := executeFunc
	defer func() { executeFunc = restore }()

	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}

	var stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"awh"}, &bytes.Buffer{}, &stderr, func(code int) { exitCode = code })

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr %q does not report the error", stderr.String())
	}
}
