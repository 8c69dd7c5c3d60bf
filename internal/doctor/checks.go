// Package doctor verifies that the harness environment can actually run a
// test: the config parses, a browser exists locally, and the target machine
// answers and carries the installer tooling.
package doctor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/osci-tools/anaconda-webui-harness/internal/config"
	"github.com/osci-tools/anaconda-webui-harness/internal/machine"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
	"github.com/osci-tools/anaconda-webui-harness/internal/storage"
)

// Status classifies a check outcome.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one check outcome with an optional remediation hint.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

var lookPathFunc = exec.LookPath

// browserCandidates are tried in order when no binary is pinned in config.
var browserCandidates = []string{"chromium-browser", "chromium", "google-chrome", "headless_shell"}

// requiredTargetTools must exist on the installer image for the helpers to work.
var requiredTargetTools = []string{storage.ListDisksCommand, "dbus-send"}

// CheckConfig validates that the configuration file loads. The parsed
// config is returned so later checks can run against it; it is nil when
// loading failed.
func CheckConfig(path string) (Result, *config.Config) {
	cfg, err := config.Load(path)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}, nil
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigOKFmt, path),
	}, cfg
}

// CheckBrowser verifies a chromium binary is resolvable locally.
func CheckBrowser(cfg *config.Config) Result {
	candidates := browserCandidates
	if cfg != nil && cfg.Browser.Binary != "" {
		candidates = []string{cfg.Browser.Binary}
	}
	for _, candidate := range candidates {
		if path, err := lookPathFunc(candidate); err == nil {
			return Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameBrowser,
				Message:   fmt.Sprintf(messages.DoctorBrowserFoundFmt, path),
			}
		}
	}
	return Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameBrowser,
		Message:        fmt.Sprintf(messages.DoctorBrowserMissingFmt, strings.Join(candidates, ", ")),
		Recommendation: messages.DoctorBrowserMissingRecommend,
	}
}

// CheckMachine verifies the target answers over ssh.
func CheckMachine(m machine.Machine, target string) Result {
	if _, err := m.Execute("true"); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameMachine,
			Message:        fmt.Sprintf(messages.DoctorMachineUnreachableFmt, target, err),
			Recommendation: messages.DoctorMachineUnreachableRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameMachine,
		Message:   fmt.Sprintf(messages.DoctorMachineOKFmt, target),
	}
}

// CheckBusAddress verifies the installer has published its bus address.
func CheckBusAddress(m machine.Machine) Result {
	bus, err := storage.NewBus(m)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBus,
			Message:        fmt.Sprintf(messages.DoctorBusMissingFmt, storage.BusAddressPath, err),
			Recommendation: messages.DoctorBusMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBus,
		Message:   fmt.Sprintf(messages.DoctorBusOKFmt, bus.Address()),
	}
}

// CheckTargetTools verifies the installer-image commands the helpers shell
// out to exist on the target.
func CheckTargetTools(m machine.Machine) []Result {
	var results []Result
	for _, tool := range requiredTargetTools {
		if _, err := m.Execute("command -v " + tool); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, tool),
				Recommendation: messages.DoctorToolMissingRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolOKFmt, tool),
		})
	}
	return results
}
