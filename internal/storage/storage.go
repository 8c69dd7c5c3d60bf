// Package storage drives the storage-configuration screens of the Anaconda
// WebUI for tests.
//
// A Storage session translates semantic test actions ("select this disk",
// "expect this partitioning scenario chosen") into selector interactions on
// the page and D-Bus calls against the installer's storage module. Failures
// are never retried or recovered here; every mismatch or execution problem
// surfaces to the caller as an error.
package storage

import (
	"fmt"
	"iter"
	"strings"

	"github.com/osci-tools/anaconda-webui-harness/internal/installer"
	"github.com/osci-tools/anaconda-webui-harness/internal/machine"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
	"github.com/osci-tools/anaconda-webui-harness/internal/steplog"
)

// ListDisksCommand enumerates the target's local hard drives, one per line,
// identifier first.
const ListDisksCommand = "list-harddrives"

// Browser is the subset of browser-driver primitives the helper composes.
type Browser interface {
	Click(selector string) error
	Checked(selector string) (bool, error)
	SetChecked(selector string, checked bool) error
	SetInputText(selector string, text string, appendText bool, valueCheck bool) error
	WaitText(selector string, text string) error
	WaitInText(selector string, text string) error
	WaitVisible(selector string) error
	WaitNotPresent(selector string) error
	WaitAttrContains(selector string, attr string, value string) error
	WaitVal(selector string, value string) error
}

// Storage is a helper session for one test run. It is read-only after
// construction except through the UI and machine state it manipulates.
type Storage struct {
	browser Browser
	machine machine.Machine
	steps   *steplog.Logger
	step    installer.Step
	bus     *Bus
}

// New builds a Storage session. The installer's bus address is read from
// the target once, here; an empty address is a construction error.
func New(browser Browser, m machine.Machine, steps *steplog.Logger) (*Storage, error) {
	bus, err := NewBus(m)
	if err != nil {
		return nil, err
	}
	return &Storage{
		browser: browser,
		machine: m,
		steps:   steps,
		step:    installer.StepStorageDevices,
		bus:     bus,
	}, nil
}

// BusAddress returns the D-Bus endpoint captured at construction.
func (s *Storage) BusAddress() string {
	return s.bus.Address()
}

// Disks lists the target's hard drive identifiers. The returned sequence is
// lazy and restartable: the listing command runs once, and each restart
// re-parses its captured output.
func (s *Storage) Disks() (iter.Seq[string], error) {
	output, err := s.machine.Execute(ListDisksCommand)
	if err != nil {
		return nil, fmt.Errorf(messages.StorageListDisksFmt, err)
	}
	return ParseDisks(output), nil
}

// ParseDisks yields the first whitespace-delimited token of each line of
// output, in input order. Blank lines are skipped.
func ParseDisks(output string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(output) {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if !yield(fields[0]) {
				return
			}
		}
	}
}

// SelectDisk drives the disk's checkbox to selected and verifies the
// resulting state.
func (s *Storage) SelectDisk(disk string, selected bool) error {
	return s.steps.Run(fmt.Sprintf("select disk %s=%t", disk, selected), func() error {
		if err := s.browser.SetChecked(diskCheckboxSelector(disk), selected); err != nil {
			return err
		}
		return s.checkDiskSelected(disk, selected)
	})
}

// SelectAllDisksAndCheck selects every local disk through the bulk-select
// menu and verifies each one is selected.
func (s *Storage) SelectAllDisksAndCheck(disks []string) error {
	return s.steps.Run("select all disks", func() error {
		if err := s.browser.Click("#local-disks-bulk-select-toggle"); err != nil {
			return err
		}
		if err := s.browser.Click("#local-disks-bulk-select-all"); err != nil {
			return err
		}
		for _, disk := range disks {
			if err := s.checkDiskSelected(disk, true); err != nil {
				return err
			}
		}
		return nil
	})
}

// SelectNoneDisksAndCheck deselects every local disk through the
// bulk-select menu and verifies each one is deselected.
func (s *Storage) SelectNoneDisksAndCheck(disks []string) error {
	return s.steps.Run("select no disks", func() error {
		if err := s.browser.Click("#local-disks-bulk-select-toggle"); err != nil {
			return err
		}
		if err := s.browser.Click("#local-disks-bulk-select-none"); err != nil {
			return err
		}
		for _, disk := range disks {
			if err := s.checkDiskSelected(disk, false); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClickCheckboxAndCheckAllDisks toggles the split bulk-select checkbox and
// verifies that every disk landed in the expected state.
func (s *Storage) ClickCheckboxAndCheckAllDisks(disks []string, selected bool) error {
	return s.steps.Run(fmt.Sprintf("bulk checkbox, expect all disks %t", selected), func() error {
		if err := s.browser.Click("#select-multiple-split-checkbox"); err != nil {
			return err
		}
		for _, disk := range disks {
			if err := s.checkDiskSelected(disk, selected); err != nil {
				return err
			}
		}
		return nil
	})
}

// CheckDiskSelected verifies a disk checkbox's state.
func (s *Storage) CheckDiskSelected(disk string, selected bool) error {
	return s.steps.RunSnap(fmt.Sprintf("check disk %s selected=%t", disk, selected), func() error {
		return s.checkDiskSelected(disk, selected)
	})
}

func (s *Storage) checkDiskSelected(disk string, selected bool) error {
	got, err := s.browser.Checked(diskCheckboxSelector(disk))
	if err != nil {
		return err
	}
	if got != selected {
		return fmt.Errorf(messages.StorageDiskSelectedFmt, disk, got, selected)
	}
	return nil
}

// WaitNoDisks waits for the next-button tooltip telling the user to pick a
// device first.
func (s *Storage) WaitNoDisks() error {
	return s.steps.Run("wait for no selected disks", func() error {
		return s.browser.WaitInText("#next-tooltip-ref",
			"To continue, select the devices to install to.")
	})
}

// WaitNoDisksDetected waits for the alert shown when rescanning finds no
// additional disks.
func (s *Storage) WaitNoDisksDetected() error {
	return s.steps.Run("wait for no-disks-detected alert", func() error {
		return s.browser.WaitInText("#no-disks-detected-alert",
			"No additional disks detected")
	})
}

// WaitNoDisksDetectedNotPresent waits for the no-disks alert to clear.
func (s *Storage) WaitNoDisksDetectedNotPresent() error {
	return s.steps.Run("wait for no-disks-detected alert to clear", func() error {
		return s.browser.WaitNotPresent("#no-disks-detected-alert")
	})
}

// RescanDisks clicks the rescan button on the storage-devices step.
func (s *Storage) RescanDisks() error {
	return s.steps.RunSnap("rescan disks", func() error {
		return s.browser.Click(fmt.Sprintf("#%s-rescan-disks", s.step))
	})
}

// CheckDiskVisible verifies the presence (or absence) of a disk row.
func (s *Storage) CheckDiskVisible(disk string, visible bool) error {
	return s.steps.RunSnap(fmt.Sprintf("check disk %s visible=%t", disk, visible), func() error {
		if visible {
			return s.browser.WaitText(fmt.Sprintf("#%s > th[data-label=Name]", disk), disk)
		}
		return s.browser.WaitNotPresent("#" + disk)
	})
}

// CheckDiskCapacity verifies the Total and/or Free cells of a disk row.
// Empty strings skip the respective check.
func (s *Storage) CheckDiskCapacity(disk string, total string, free string) error {
	return s.steps.RunSnap(fmt.Sprintf("check capacity of %s", disk), func() error {
		if total != "" {
			if err := s.browser.WaitText(fmt.Sprintf("#%s > td[data-label=Total]", disk), total); err != nil {
				return err
			}
		}
		if free != "" {
			if err := s.browser.WaitText(fmt.Sprintf("#%s > td[data-label=Free]", disk), free); err != nil {
				return err
			}
		}
		return nil
	})
}

// diskCheckboxSelector addresses the checkbox inside a disk's table row.
func diskCheckboxSelector(disk string) string {
	return fmt.Sprintf("#%s input", disk)
}

// partitioningSelector addresses the radio input of an autopartitioning
// scenario.
func partitioningSelector(scenario string) string {
	return "#storage-configuration-autopart-scenario-" + scenario
}

// CheckPartitioningSelected verifies the given scenario radio is checked.
func (s *Storage) CheckPartitioningSelected(scenario string) error {
	return s.steps.RunSnap(fmt.Sprintf("check partitioning %s selected", scenario), func() error {
		return s.browser.WaitVisible(partitioningSelector(scenario) + ":checked")
	})
}

// SetPartitioning selects a partitioning scenario.
func (s *Storage) SetPartitioning(scenario string) error {
	return s.steps.RunSnap(fmt.Sprintf("set partitioning %s", scenario), func() error {
		return s.browser.SetChecked(partitioningSelector(scenario), true)
	})
}
