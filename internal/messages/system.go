package messages

// System messages for internal operations.
const (
	// MachineAddressRequired indicates the machine address is missing from config.
	MachineAddressRequired = "machine address is required"
	MachineUserRequired    = "machine user is required"
	MachineDialFmt         = "dial %s: %w"
	MachineSessionFmt      = "open ssh session on %s: %w"
	MachineExecuteFmt      = "execute %q on %s: %w"
	MachineWriteFileFmt    = "write %s on %s: %w"
	MachineReadIdentityFmt = "read identity file %s: %w"
	MachineParseKeyFmt     = "parse private key %s: %w"
	MachineExpandPathFmt   = "expand path %s: %w"

	BrowserNavigateFmt     = "navigate to %s: %w"
	BrowserClickFmt        = "click %s: %w"
	BrowserSetCheckedFmt   = "set checked %s=%t: %w"
	BrowserGetCheckedFmt   = "read checked state of %s: %w"
	BrowserSetInputFmt     = "set input %s: %w"
	BrowserValueCheckFmt   = "input %s holds %q after typing %q"
	BrowserWaitTextFmt     = "wait for text of %s:\n%s"
	BrowserWaitInTextFmt   = "wait for %s to contain %q: %w"
	BrowserWaitVisibleFmt  = "wait for %s to be visible: %w"
	BrowserWaitGoneFmt     = "wait for %s to disappear: %w"
	BrowserWaitAttrFmt     = "wait for %s attribute %s to contain %q: %w"
	BrowserWaitValFmt      = "wait for %s value:\n%s"
	BrowserScreenshotFmt   = "capture screenshot: %w"
	BrowserStartFmt        = "start browser: %w"
	BrowserTimeoutFmt      = "condition not met within %s"
	BrowserURLRequired     = "webui url is required"

	StorageBusAddressEmpty   = "bus address read from %s is empty"
	StorageReadBusAddressFmt = "read bus address: %w"
	StorageListDisksFmt      = "list hard drives: %w"
	StorageDiskSelectedFmt   = "disk %s selected state is %t, expected %t"
	StorageStrengthFmt       = "unknown password strength %q"
	StorageResetFmt          = "reset partitioning: %w"
	StorageInitModeFmt       = "set initialization mode to %d: %w"
	StorageWriteKeyfileFmt   = "write keyfile: %w"
	StorageWriteScriptFmt    = "write unlock script: %w"
	StorageRunScriptFmt      = "run unlock script: %w"

	ConsoleStartFmt   = "start console command %q: %w"
	ConsoleRunFmt     = "console command %q failed: %w"
	ConsoleCopyFmt    = "copy console output: %w"
	ConsoleOpenLogFmt = "open console log %s: %w"

	StepStartFmt    = "» %s\n"
	StepDoneFmt     = "✓ %s (%s)\n"
	StepFailedFmt   = "✗ %s (%s): %v\n"
	StepSnapshotFmt = "snapshot %s: %v\n"
)
