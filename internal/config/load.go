package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/osci-tools/anaconda-webui-harness/internal/envfile"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrConfigValidation) to distinguish the two.
var ErrConfigValidation = errors.New("config validation failed")

// envPrefix restricts which override keys the harness honors.
const envPrefix = "AWH_"

// Load reads path, layers .env and process-environment overrides on top,
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	env, err := loadEnvOverrides(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cfg, env); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses TOML data on top of the defaults without validating.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	return cfg, nil
}

// Validate checks field-level constraints. All failures wrap ErrConfigValidation.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Machine.Address) == "" {
		return validationError(messages.ConfigInvalidFieldFmt, "machine.address", "must not be empty")
	}
	if strings.TrimSpace(cfg.Machine.User) == "" {
		return validationError(messages.ConfigInvalidFieldFmt, "machine.user", "must not be empty")
	}
	if cfg.Machine.Port < 1 || cfg.Machine.Port > 65535 {
		return fmt.Errorf("%w: "+messages.ConfigInvalidPortFmt, ErrConfigValidation, cfg.Machine.Port)
	}
	if strings.TrimSpace(cfg.Browser.URL) == "" {
		return validationError(messages.ConfigInvalidFieldFmt, "browser.url", "must not be empty")
	}
	if cfg.Timeouts.WaitSeconds <= 0 {
		return fmt.Errorf("%w: %s", ErrConfigValidation, messages.ConfigInvalidTimeout)
	}
	return nil
}

func validationError(format string, field string, problem string) error {
	return fmt.Errorf("%w: "+format, ErrConfigValidation, field, problem)
}

// loadEnvOverrides merges the optional .env file at path with the process
// environment, keeping only AWH_ keys. A missing .env file is not an error.
func loadEnvOverrides(path string) (map[string]string, error) {
	env := make(map[string]string)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no .env file; process environment may still override
	case err != nil:
		return nil, fmt.Errorf(messages.ConfigMissingEnvFileFmt, path, err)
	default:
		parsed, perr := envfile.Parse(string(data))
		if perr != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, perr)
		}
		for k, v := range parsed {
			if strings.HasPrefix(k, envPrefix) {
				env[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// applyOverrides maps AWH_ keys onto config fields.
func applyOverrides(cfg *Config, env map[string]string) error {
	for key, value := range env {
		var err error
		switch key {
		case "AWH_MACHINE_ADDRESS":
			cfg.Machine.Address = value
		case "AWH_MACHINE_PORT":
			cfg.Machine.Port, err = strconv.Atoi(value)
		case "AWH_MACHINE_USER":
			cfg.Machine.User = value
		case "AWH_MACHINE_IDENTITY":
			cfg.Machine.Identity = value
		case "AWH_WEBUI_URL":
			cfg.Browser.URL = value
		case "AWH_BROWSER_BINARY":
			cfg.Browser.Binary = value
		case "AWH_HEADLESS":
			cfg.Browser.Headless, err = strconv.ParseBool(value)
		case "AWH_WAIT_SECONDS":
			cfg.Timeouts.WaitSeconds, err = strconv.Atoi(value)
		}
		if err != nil {
			return fmt.Errorf(messages.ConfigOverrideFmt, key, err)
		}
	}
	return nil
}
