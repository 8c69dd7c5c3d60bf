package storage

import (
	"fmt"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// Selectors on the disk-encryption step.
const (
	encryptDevicesSelector  = "#disk-encryption-encrypt-devices"
	passwordSelector        = "#disk-encryption-password-field"
	passwordConfirmSelector = "#disk-encryption-password-confirm-field"
	strengthLabelSelector   = "#disk-encryption-password-strength-label"
	passwordRulePrefix      = "#disk-encryption-password-rule-"
)

// Strength is a password strength level as labeled by the WebUI.
type Strength string

const (
	// StrengthNone means the strength label is not shown at all.
	StrengthNone   Strength = ""
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Variant maps a strength level onto the PatternFly state class suffix the
// label carries. The mapping is total for the known levels; anything else
// is an error.
func (s Strength) Variant() (string, error) {
	switch s {
	case StrengthWeak:
		return "error", nil
	case StrengthMedium:
		return "warning", nil
	case StrengthStrong:
		return "success", nil
	default:
		return "", fmt.Errorf(messages.StorageStrengthFmt, string(s))
	}
}

// CheckEncryptionSelected verifies the encrypt-devices checkbox state.
func (s *Storage) CheckEncryptionSelected(selected bool) error {
	return s.steps.RunSnap(fmt.Sprintf("check encryption selected=%t", selected), func() error {
		if selected {
			return s.browser.WaitVisible(encryptDevicesSelector + ":checked")
		}
		return s.browser.WaitVisible(encryptDevicesSelector + ":not([checked])")
	})
}

// SetEncryptionSelected drives the encrypt-devices checkbox.
func (s *Storage) SetEncryptionSelected(selected bool) error {
	return s.steps.RunSnap(fmt.Sprintf("set encryption selected=%t", selected), func() error {
		return s.browser.SetChecked(encryptDevicesSelector, selected)
	})
}

// CheckPasswordRule verifies one password rule indicator carries the given
// state, e.g. rule "length" with value "success".
func (s *Storage) CheckPasswordRule(rule string, value string) error {
	return s.steps.RunSnap(fmt.Sprintf("check password rule %s=%s", rule, value), func() error {
		selector := passwordRulePrefix + rule
		if err := s.browser.WaitVisible(selector); err != nil {
			return err
		}
		return s.browser.WaitAttrContains(selector, "class", "pf-m-"+value)
	})
}

// SetPassword types the passphrase into the password field. With appendText
// true the existing content is kept; with valueCheck true the field value
// is read back after typing.
func (s *Storage) SetPassword(password string, appendText bool, valueCheck bool) error {
	return s.steps.RunSnap("set password", func() error {
		return s.browser.SetInputText(passwordSelector, password, appendText, valueCheck)
	})
}

// CheckPassword waits for the password field to hold password.
func (s *Storage) CheckPassword(password string) error {
	return s.steps.RunSnap("check password", func() error {
		return s.browser.WaitVal(passwordSelector, password)
	})
}

// SetPasswordConfirm types the passphrase into the confirmation field.
func (s *Storage) SetPasswordConfirm(password string) error {
	return s.steps.RunSnap("set password confirmation", func() error {
		return s.browser.SetInputText(passwordConfirmSelector, password, false, true)
	})
}

// CheckPasswordConfirm waits for the confirmation field to hold password.
func (s *Storage) CheckPasswordConfirm(password string) error {
	return s.steps.RunSnap("check password confirmation", func() error {
		return s.browser.WaitVal(passwordConfirmSelector, password)
	})
}

// CheckPasswordStrength verifies the strength label state. StrengthNone
// expects the label to be absent.
func (s *Storage) CheckPasswordStrength(strength Strength) error {
	return s.steps.RunSnap(fmt.Sprintf("check password strength %q", string(strength)), func() error {
		if strength == StrengthNone {
			return s.browser.WaitNotPresent(strengthLabelSelector)
		}
		variant, err := strength.Variant()
		if err != nil {
			return err
		}
		return s.browser.WaitAttrContains(strengthLabelSelector, "class", "pf-m-"+variant)
	})
}
