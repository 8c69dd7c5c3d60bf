// Package config loads and validates the harness configuration.
//
// Configuration comes from harness.toml, with AWH_-prefixed overrides
// layered on top from an optional .env file next to it and from the
// process environment. Process environment wins over the .env file.
package config

import "time"

// Config is the full harness configuration.
type Config struct {
	Machine  Machine  `toml:"machine"`
	Browser  Browser  `toml:"browser"`
	Timeouts Timeouts `toml:"timeouts"`
}

// Machine describes how to reach the test target over ssh.
type Machine struct {
	Address  string `toml:"address"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Identity string `toml:"identity"`
}

// Browser describes how to reach and drive the WebUI.
type Browser struct {
	// URL is the address the installer's WebUI is served on.
	URL string `toml:"url"`
	// Binary optionally pins the chromium executable; empty means autodetect.
	Binary   string `toml:"binary"`
	Headless bool   `toml:"headless"`
}

// Timeouts holds the blocking-wait budget for browser conditions.
type Timeouts struct {
	WaitSeconds int `toml:"wait_seconds"`
}

// Default returns the configuration used when harness.toml omits a field.
func Default() *Config {
	return &Config{
		Machine: Machine{
			Address:  "127.0.0.2",
			Port:     22,
			User:     "root",
			Identity: "~/.ssh/id_rsa",
		},
		Browser: Browser{
			URL:      "http://localhost:9091",
			Headless: true,
		},
		Timeouts: Timeouts{WaitSeconds: 15},
	}
}

// WaitTimeout returns the wait budget as a duration.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Timeouts.WaitSeconds) * time.Second
}
