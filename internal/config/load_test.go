package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, "harness.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Machine.Port != 22 {
		t.Errorf("Machine.Port = %d, want default 22", cfg.Machine.Port)
	}
	if !cfg.Browser.Headless {
		t.Error("Browser.Headless = false, want default true")
	}
	if cfg.Timeouts.WaitSeconds != 15 {
		t.Errorf("Timeouts.WaitSeconds = %d, want default 15", cfg.Timeouts.WaitSeconds)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[machine]
address = "10.0.2.15"
user = "admin"

[browser]
url = "http://127.0.0.1:80/cockpit/@localhost/anaconda-webui/index.html"
headless = false

[timeouts]
wait_seconds = 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Machine.Address != "10.0.2.15" {
		t.Errorf("Machine.Address = %q", cfg.Machine.Address)
	}
	if cfg.Machine.User != "admin" {
		t.Errorf("Machine.User = %q", cfg.Machine.User)
	}
	if cfg.Machine.Port != 22 {
		t.Errorf("Machine.Port = %d, want untouched default", cfg.Machine.Port)
	}
	if cfg.Browser.Headless {
		t.Error("Browser.Headless = true, want false")
	}
	if cfg.WaitTimeout().Seconds() != 30 {
		t.Errorf("WaitTimeout = %s", cfg.WaitTimeout())
	}
}

func TestLoadEnvFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	envPath := filepath.Join(dir, ".env")
	content := "AWH_MACHINE_ADDRESS=192.168.122.40\nIGNORED_KEY=nope\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Machine.Address != "192.168.122.40" {
		t.Errorf("Machine.Address = %q, want .env override", cfg.Machine.Address)
	}
}

func TestLoadProcessEnvWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("AWH_WAIT_SECONDS=5\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("AWH_WAIT_SECONDS", "45")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Timeouts.WaitSeconds != 45 {
		t.Errorf("Timeouts.WaitSeconds = %d, want process env to win", cfg.Timeouts.WaitSeconds)
	}
}

func TestLoadBadOverrideValue(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	t.Setenv("AWH_MACHINE_PORT", "not-a-number")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-numeric AWH_MACHINE_PORT")
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.Machine.Address = " " }},
		{"empty user", func(c *Config) { c.Machine.User = "" }},
		{"port too low", func(c *Config) { c.Machine.Port = 0 }},
		{"port too high", func(c *Config) { c.Machine.Port = 70000 }},
		{"empty url", func(c *Config) { c.Browser.URL = "" }},
		{"zero timeout", func(c *Config) { c.Timeouts.WaitSeconds = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrConfigValidation) {
				t.Errorf("error %v does not wrap ErrConfigValidation", err)
			}
		})
	}
}

func TestParseSyntaxErrorIsNotValidation(t *testing.T) {
	_, err := Parse([]byte("[machine\naddress="), "broken.toml")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrConfigValidation) {
		t.Errorf("syntax error %v should not wrap ErrConfigValidation", err)
	}
}
