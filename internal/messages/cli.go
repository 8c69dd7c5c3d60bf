package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "awh"
	// RootShort is the short description for the root command.
	RootShort       = "Anaconda WebUI test harness"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DisksUse is the disks command name.
	DisksUse   = "disks"
	DisksShort = "List hard drives detected on the target machine"

	ResetPartitioningUse   = "reset-partitioning"
	ResetPartitioningShort = "Reset the installer's partitioning over D-Bus"
	ResetPartitioningDone  = "Partitioning reset.\n"

	InitModeUse        = "init-mode <mode>"
	InitModeShort      = "Set the disk initialization mode over D-Bus"
	InitModeDoneFmt    = "Initialization mode set to %d.\n"
	InitModeInvalidFmt = "invalid initialization mode %q: expected an integer"

	DoctorUse            = "doctor"
	DoctorShort          = "Check that the harness can drive the target machine and browser"
	DoctorHealthCheckFmt = "Checking harness environment (config %s)...\n\n"
	DoctorAllOKMsg       = "\nAll checks passed.\n"
	DoctorHasFailuresFmt = "\n%d check(s) failed.\n"
	DoctorFailed         = "doctor found failing checks"

	ConsoleUse      = "console -- <command> [args...]"
	ConsoleShort    = "Attach to the target's serial console and log its output"
	ConsoleFlagLog  = "File to append console output to (defaults to stdout)"
	ConsoleNeedsCmd = "console requires a command to run, e.g. awh console -- virsh console fedora-rawhide"

	ConfigFlag = "Path to the harness config file"
)
