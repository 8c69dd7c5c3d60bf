package messages

// Doctor messages for environment health checks.
const (
	DoctorCheckNameConfig  = "Config"
	DoctorCheckNameBrowser = "Browser"
	DoctorCheckNameMachine = "Machine"
	DoctorCheckNameBus     = "Bus address"
	DoctorCheckNameTools   = "Target tools"

	DoctorConfigLoadFailedFmt = "config failed to load: %v"
	DoctorConfigLoadRecommend = "Fix harness.toml or point --config at a valid file"
	DoctorConfigOKFmt         = "config %s loads and validates"

	DoctorBrowserMissingFmt       = "no browser binary found (tried %s)"
	DoctorBrowserMissingRecommend = "Install chromium or set browser.binary in harness.toml"
	DoctorBrowserFoundFmt         = "browser binary %s"

	DoctorMachineUnreachableFmt       = "target %s is unreachable: %v"
	DoctorMachineUnreachableRecommend = "Check machine.address, machine.user, and the identity file"
	DoctorMachineOKFmt                = "target %s answers over ssh"

	DoctorBusMissingFmt       = "bus address at %s is missing or empty: %v"
	DoctorBusMissingRecommend = "Boot the installer image; the bus address appears once anaconda starts"
	DoctorBusOKFmt            = "bus address present (%s)"

	DoctorToolMissingFmt       = "%s not found on target"
	DoctorToolMissingRecommend = "The target must be an installer image with anaconda test tools"
	DoctorToolOKFmt            = "%s available on target"
)
