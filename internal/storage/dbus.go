package storage

import (
	"fmt"
	"strings"

	"github.com/osci-tools/anaconda-webui-harness/internal/machine"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// D-Bus identifiers of the installer's storage module.
const (
	StorageService               = "org.fedoraproject.Anaconda.Modules.Storage"
	StorageInterface             = StorageService
	DiskInitializationInterface  = StorageService + ".DiskInitialization"
	StorageObjectPath            = "/org/fedoraproject/Anaconda/Modules/Storage"
	DiskInitializationObjectPath = StorageObjectPath + "/DiskInitialization"
)

// BusAddressPath is where anaconda publishes its bus address on the target.
const BusAddressPath = "/run/anaconda/bus.address"

// Bus issues D-Bus calls against the installer's storage service by running
// dbus-send on the target machine.
type Bus struct {
	machine machine.Machine
	address string
}

// NewBus reads the installer's bus address from the target. An empty
// address is an error: the installer has not started yet.
func NewBus(m machine.Machine) (*Bus, error) {
	output, err := m.Execute("cat " + BusAddressPath)
	if err != nil {
		return nil, fmt.Errorf(messages.StorageReadBusAddressFmt, err)
	}
	address := strings.TrimSpace(output)
	if address == "" {
		return nil, fmt.Errorf(messages.StorageBusAddressEmpty, BusAddressPath)
	}
	return &Bus{machine: m, address: address}, nil
}

// Address returns the bus address read at construction.
func (b *Bus) Address() string {
	return b.address
}

// ResetPartitioning discards all scheduled partitioning actions.
func (b *Bus) ResetPartitioning() error {
	cmd := fmt.Sprintf(`dbus-send --print-reply --bus="%s" --dest=%s %s %s.ResetPartitioning`,
		b.address, StorageService, StorageObjectPath, StorageInterface)
	if _, err := b.machine.Execute(cmd); err != nil {
		return fmt.Errorf(messages.StorageResetFmt, err)
	}
	return nil
}

// SetInitializationMode sets the DiskInitialization module's
// InitializationMode property.
func (b *Bus) SetInitializationMode(mode int32) error {
	cmd := fmt.Sprintf(`dbus-send --print-reply --bus="%s" --dest=%s %s org.freedesktop.DBus.Properties.Set string:"%s" string:"InitializationMode" variant:int32:%d`,
		b.address, StorageService, DiskInitializationObjectPath, DiskInitializationInterface, mode)
	if _, err := b.machine.Execute(cmd); err != nil {
		return fmt.Errorf(messages.StorageInitModeFmt, mode, err)
	}
	return nil
}

// DBusResetPartitioning resets the installer's partitioning over D-Bus.
func (s *Storage) DBusResetPartitioning() error {
	return s.bus.ResetPartitioning()
}

// DBusSetInitializationMode sets the disk initialization mode over D-Bus.
func (s *Storage) DBusSetInitializationMode(mode int32) error {
	return s.bus.SetInitializationMode(mode)
}
