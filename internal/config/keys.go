package config

import (
	"os"
	"path/filepath"
)

// Key describes one configuration setting.
type Key struct {
	Name string
	// Default is used when neither the file nor the environment sets the
	// key, and when a supplied value fails validation.
	Default string
	Help    string
	// Validate normalizes a supplied value. Nil accepts anything.
	Validate Validator
}

var (
	positiveInt = PositiveIntValidator()
	anyInt      = IntValidator()
	boolean     = BoolValidator()
)

// Keys lists every known setting in the order the sample config shows them.
// Directory defaults depend on the environment and are filled in by Load.
func Keys() []Key {
	configDir, stateDir := baseDirs()
	return []Key{
		{Name: "config_dir", Default: configDir, Help: "Directory holding config.toml"},
		{Name: "state_dir", Default: stateDir, Help: "Directory for logs and other state"},

		{Name: "toast_limit", Default: "3", Help: "Toasts held at once; the oldest is dropped beyond it", Validate: positiveInt},
		{Name: "toast_duration_ms", Default: "5000", Help: "Auto-dismiss delay; 0 or less keeps toasts open", Validate: anyInt},
		{Name: "toast_remove_delay_ms", Default: "5000", Help: "Delay between dismissing a toast and removing it", Validate: positiveInt},

		{Name: "search_max_results", Default: "20", Help: "Results returned for a non-empty query", Validate: positiveInt},
		{Name: "search_empty_limit", Default: "10", Help: "Pages suggested for an empty query", Validate: positiveInt},
		{Name: "directory_path", Default: "", Help: "SQLite directory adding contacts and groups to search"},
		{Name: "directory_phone_region", Default: "KE", Help: "Region for contact numbers written without a country code"},
		{Name: "palette_theme", Default: "default", Help: "Palette theme: default or minimal",
			Validate: EnumValidator(map[string]bool{"default": true, "minimal": true})},

		{Name: "logging_enabled", Default: "false", Help: "Write JSON logs under state_dir/logs", Validate: boolean},
		{Name: "logging_level", Default: "info", Help: "debug, info, warn or error",
			Validate: EnumValidator(map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true})},
		{Name: "logging_max_files", Default: "10", Help: "Log files kept after rotation", Validate: positiveInt},

		{Name: "debug", Default: "false", Help: "Print debug output", Validate: boolean},
		{Name: "quiet", Default: "false", Help: "Suppress informational output", Validate: boolean},
	}
}

// lookupKey returns the Key named name.
func lookupKey(keys []Key, name string) (Key, bool) {
	for _, k := range keys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

// baseDirs resolves the XDG config and state directories of the console.
func baseDirs() (configDir, stateDir string) {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(xdgConfigHome, appDir), filepath.Join(xdgStateHome, appDir)
}
