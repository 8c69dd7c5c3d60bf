// Package installer enumerates the Anaconda WebUI wizard steps.
//
// Step identifiers double as DOM id prefixes: a control belonging to a step
// carries an id of the form "<step>-<control>", e.g.
// "storage-devices-rescan-disks".
package installer

// Step identifies a single screen of the installation wizard.
type Step string

const (
	// StepLanguage is the welcome/language selection screen.
	StepLanguage Step = "installation-language"
	// StepStorageDevices is the local disk selection screen.
	StepStorageDevices Step = "storage-devices"
	// StepDiskEncryption is the disk encryption opt-in screen.
	StepDiskEncryption Step = "disk-encryption"
	// StepReview is the pre-installation review screen.
	StepReview Step = "installation-review"
	// StepProgress is the installation progress screen.
	StepProgress Step = "installation-progress"
)

// Order lists the wizard steps in on-screen order.
var Order = []Step{StepLanguage, StepStorageDevices, StepDiskEncryption, StepReview, StepProgress}

// String returns the step's DOM id prefix.
func (s Step) String() string {
	return string(s)
}
