// Package steplog reports test-helper steps as they run.
//
// Every semantic action of the harness routes through a Logger, which
// prints a start/finish line per step and can capture screenshots before a
// step or after a failure. It replaces ad-hoc printf debugging when an
// installer run goes wrong in CI.
package steplog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// Snapshotter captures the current page for failure analysis.
type Snapshotter interface {
	Screenshot() ([]byte, error)
}

// Logger reports steps to a writer. A nil Logger runs steps silently.
type Logger struct {
	out  io.Writer
	snap Snapshotter
	dir  string
	seq  int

	start *color.Color
	done  *color.Color
	fail  *color.Color
}

// New returns a Logger writing to out. snap may be nil to disable
// screenshots; dir is where snapshot files land.
func New(out io.Writer, snap Snapshotter, dir string) *Logger {
	return &Logger{
		out:   out,
		snap:  snap,
		dir:   dir,
		start: color.New(color.Faint),
		done:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
	}
}

// Run executes fn as a named step.
func (l *Logger) Run(name string, fn func() error) error {
	return l.run(name, fn, false)
}

// RunSnap executes fn as a named step, capturing a screenshot first.
func (l *Logger) RunSnap(name string, fn func() error) error {
	return l.run(name, fn, true)
}

func (l *Logger) run(name string, fn func() error, snapBefore bool) error {
	if l == nil {
		return fn()
	}

	_, _ = l.start.Fprintf(l.out, messages.StepStartFmt, name)
	if snapBefore {
		l.snapshot(name + "-before")
	}

	began := time.Now()
	err := fn()
	elapsed := time.Since(began).Round(time.Millisecond)

	if err != nil {
		_, _ = l.fail.Fprintf(l.out, messages.StepFailedFmt, name, elapsed, err)
		l.snapshot(name + "-failed")
		return err
	}
	_, _ = l.done.Fprintf(l.out, messages.StepDoneFmt, name, elapsed)
	return nil
}

// snapshot writes a screenshot for the step; snapshot problems are logged
// and never fail the step itself.
func (l *Logger) snapshot(name string) {
	if l.snap == nil {
		return
	}
	data, err := l.snap.Screenshot()
	if err != nil {
		_, _ = fmt.Fprintf(l.out, messages.StepSnapshotFmt, name, err)
		return
	}
	l.seq++
	path := filepath.Join(l.dir, fmt.Sprintf("%03d-%s.png", l.seq, sanitize(name)))
	if l.dir != "" {
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			_, _ = fmt.Fprintf(l.out, messages.StepSnapshotFmt, name, err)
			return
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		_, _ = fmt.Fprintf(l.out, messages.StepSnapshotFmt, name, err)
	}
}

// sanitize maps a step name onto a safe file-name fragment.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
