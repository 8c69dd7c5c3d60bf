package storage

import (
	"errors"
	"strings"
	"testing"
)

func TestResetPartitioningCommand(t *testing.T) {
	m := newFakeMachine()
	s := newStorage(t, newFakeBrowser(), m)

	if err := s.DBusResetPartitioning(); err != nil {
		t.Fatalf("DBusResetPartitioning: %v", err)
	}

	cmd := m.executed[len(m.executed)-1]
	for _, want := range []string{
		"dbus-send --print-reply",
		`--bus="unix:abstract=/tmp/dbus-test,guid=abcd"`,
		"--dest=org.fedoraproject.Anaconda.Modules.Storage",
		"/org/fedoraproject/Anaconda/Modules/Storage",
		"org.fedoraproject.Anaconda.Modules.Storage.ResetPartitioning",
	} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command %q missing %q", cmd, want)
		}
	}
}

func TestSetInitializationModeCommand(t *testing.T) {
	m := newFakeMachine()
	s := newStorage(t, newFakeBrowser(), m)

	if err := s.DBusSetInitializationMode(2); err != nil {
		t.Fatalf("DBusSetInitializationMode: %v", err)
	}

	cmd := m.executed[len(m.executed)-1]
	for _, want := range []string{
		"/org/fedoraproject/Anaconda/Modules/Storage/DiskInitialization",
		"org.freedesktop.DBus.Properties.Set",
		`string:"org.fedoraproject.Anaconda.Modules.Storage.DiskInitialization"`,
		`string:"InitializationMode"`,
		"variant:int32:2",
	} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command %q missing %q", cmd, want)
		}
	}
}

func TestBusCallFailurePropagates(t *testing.T) {
	m := newFakeMachine()
	s := newStorage(t, newFakeBrowser(), m)

	m.failures[lastResetCommand(t, s)] = errors.New("name has no owner")
	if err := s.DBusResetPartitioning(); err == nil {
		t.Fatal("expected propagated dbus-send failure")
	}
}

// lastResetCommand replays ResetPartitioning once to learn the exact
// command string the Bus issues.
func lastResetCommand(t *testing.T, s *Storage) string {
	t.Helper()
	m := newFakeMachine()
	probe := newStorage(t, newFakeBrowser(), m)
	if err := probe.DBusResetPartitioning(); err != nil {
		t.Fatalf("probe reset: %v", err)
	}
	return m.executed[len(m.executed)-1]
}
