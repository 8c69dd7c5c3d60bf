package storage

import (
	"slices"
	"testing"
)

func TestStrengthVariantMapping(t *testing.T) {
	cases := []struct {
		strength Strength
		want     string
	}{
		{StrengthWeak, "error"},
		{StrengthMedium, "warning"},
		{StrengthStrong, "success"},
	}
	for _, tc := range cases {
		got, err := tc.strength.Variant()
		if err != nil {
			t.Errorf("Variant(%q) returned error: %v", tc.strength, err)
		}
		if got != tc.want {
			t.Errorf("Variant(%q) = %q, want %q", tc.strength, got, tc.want)
		}
	}
}

func TestStrengthVariantRejectsUnknown(t *testing.T) {
	for _, s := range []Strength{StrengthNone, "bogus"} {
		if _, err := s.Variant(); err == nil {
			t.Errorf("Variant(%q) succeeded, want error", s)
		}
	}
}

func TestCheckPasswordStrength(t *testing.T) {
	b := newFakeBrowser()
	s := newStorage(t, b, newFakeMachine())

	if err := s.CheckPasswordStrength(StrengthWeak); err != nil {
		t.Fatalf("CheckPasswordStrength(weak): %v", err)
	}
	want := "wait-attr #disk-encryption-password-strength-label class pf-m-error"
	if !slices.Contains(b.calls, want) {
		t.Errorf("calls = %v, want %q", b.calls, want)
	}
}

func TestCheckPasswordStrengthNoneExpectsAbsence(t *testing.T) {
	b := newFakeBrowser()
	b.missing[strengthLabelSelector] = true
	s := newStorage(t, b, newFakeMachine())

	if err := s.CheckPasswordStrength(StrengthNone); err != nil {
		t.Fatalf("CheckPasswordStrength(none): %v", err)
	}
	if !slices.Contains(b.calls, "wait-not-present "+strengthLabelSelector) {
		t.Errorf("calls = %v", b.calls)
	}
}

func TestCheckPasswordStrengthUnknownFails(t *testing.T) {
	s := newStorage(t, newFakeBrowser(), newFakeMachine())
	if err := s.CheckPasswordStrength("titanic"); err == nil {
		t.Fatal("expected error for unknown strength")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	b := newFakeBrowser()
	s := newStorage(t, b, newFakeMachine())

	if err := s.SetPassword("hunter2!", false, true); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := s.CheckPassword("hunter2!"); err != nil {
		t.Fatalf("CheckPassword after SetPassword: %v", err)
	}

	if err := s.SetPasswordConfirm("hunter2!"); err != nil {
		t.Fatalf("SetPasswordConfirm: %v", err)
	}
	if err := s.CheckPasswordConfirm("hunter2!"); err != nil {
		t.Fatalf("CheckPasswordConfirm: %v", err)
	}
}

func TestSetPasswordAppend(t *testing.T) {
	b := newFakeBrowser()
	s := newStorage(t, b, newFakeMachine())

	if err := s.SetPassword("abc", false, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPassword("def", true, false); err != nil {
		t.Fatal(err)
	}
	if err := s.CheckPassword("abcdef"); err != nil {
		t.Errorf("appended password did not round-trip: %v", err)
	}
}

func TestCheckPasswordMismatch(t *testing.T) {
	b := newFakeBrowser()
	s := newStorage(t, b, newFakeMachine())

	if err := s.SetPassword("right", false, true); err != nil {
		t.Fatal(err)
	}
	if err := s.CheckPassword("wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestEncryptionCheckboxSelectors(t *testing.T) {
	b := newFakeBrowser()
	s := newStorage(t, b, newFakeMachine())

	if err := s.SetEncryptionSelected(true); err != nil {
		t.Fatalf("SetEncryptionSelected: %v", err)
	}
	if err := s.CheckEncryptionSelected(true); err != nil {
		t.Fatalf("CheckEncryptionSelected(true): %v", err)
	}
	if err := s.CheckEncryptionSelected(false); err != nil {
		t.Fatalf("CheckEncryptionSelected(false): %v", err)
	}

	for _, want := range []string{
		"set-checked #disk-encryption-encrypt-devices true",
		"wait-visible #disk-encryption-encrypt-devices:checked",
		"wait-visible #disk-encryption-encrypt-devices:not([checked])",
	} {
		if !slices.Contains(b.calls, want) {
			t.Errorf("calls = %v, missing %q", b.calls, want)
		}
	}
}

func TestCheckPasswordRule(t *testing.T) {
	b := newFakeBrowser()
	s := newStorage(t, b, newFakeMachine())

	if err := s.CheckPasswordRule("length", "success"); err != nil {
		t.Fatalf("CheckPasswordRule: %v", err)
	}
	want := []string{
		"wait-visible #disk-encryption-password-rule-length",
		"wait-attr #disk-encryption-password-rule-length class pf-m-success",
	}
	if !slices.Equal(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
}
