// Package config provides configuration loading.
//
// Values are resolved in layers: built-in defaults, PORTAL_CONSOLE_*
// environment variables, the TOML config file, then the environment again
// so that it always wins. Variables may also come from a .env file; the
// process environment takes precedence over it. Each Key's validator
// normalizes the result.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/smsportal/portal-console/internal/colors"
)

const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PORTAL_CONSOLE_"

	appDir = "portal-console"
)

var (
	mu     sync.RWMutex
	values map[string]string
	keys   []Key
)

// Load resolves configuration from defaults, environment and file.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	keys = Keys()
	values = make(map[string]string, len(keys))
	for _, k := range keys {
		values[k.Name] = k.Default
	}

	env := environment()
	applyEnv(values, env)
	if path := configFilePath(env, values); path != "" {
		applyFile(values, path)
	}
	applyEnv(values, env)
	normalize(values, keys)
	writeSampleConfig(values["config_dir"], keys)
}

// configFilePath returns the file to read: PORTAL_CONSOLE_CONFIG_PATH when
// set, else config.toml in config_dir if it exists.
func configFilePath(env, current map[string]string) string {
	if path := env[EnvPrefix+"CONFIG_PATH"]; path != "" {
		return path
	}
	path := filepath.Join(current["config_dir"], "config"+FileExtTOML)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func applyFile(dst map[string]string, path string) {
	if !strings.EqualFold(filepath.Ext(path), FileExtTOML) {
		colors.Debug(fmt.Sprintf("ignoring config file with unsupported extension: %s", path))
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}
	for k, v := range raw {
		name := strings.ToLower(k)
		s, ok := scalarString(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", name, v))
			continue
		}
		dst[name] = s
	}
}

// scalarString renders a decoded TOML scalar as a config string.
func scalarString(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// environment returns the PORTAL_CONSOLE_* variables from the .env file
// overlaid with the process environment. The file is
// PORTAL_CONSOLE_ENV_FILE when set, else .env in the working directory.
func environment() map[string]string {
	env := make(map[string]string)
	path := os.Getenv(EnvPrefix + "ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if dotenv, err := godotenv.Read(path); err == nil {
		for name, value := range dotenv {
			if strings.HasPrefix(name, EnvPrefix) {
				env[name] = value
			}
		}
	} else if !os.IsNotExist(err) {
		colors.Warning(fmt.Sprintf("unable to read env file %s: %v", path, err))
	}

	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, EnvPrefix) {
			env[name] = value
		}
	}
	return env
}

func applyEnv(dst, env map[string]string) {
	for name, value := range env {
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if key == "config_path" || key == "env_file" {
			continue
		}
		dst[key] = value
	}
}

// normalize runs each key's validator. Unknown keys are kept as given.
func normalize(dst map[string]string, keys []Key) {
	for _, k := range keys {
		if k.Validate == nil {
			continue
		}
		v, err := k.Validate(k.Name, dst[k.Name], k.Default)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", k.Name, err, k.Default))
			v = k.Default
		}
		dst[k.Name] = v
	}
}

// writeSampleConfig writes a commented config.toml with the resolved values
// unless one already exists.
func writeSampleConfig(configDir string, keys []Key) {
	if configDir == "" {
		return
	}
	path := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}

	var buf bytes.Buffer
	buf.WriteString("# portal-console configuration\n# This file is in TOML format.\n# Uncomment and edit values as needed.\n")
	for _, k := range keys {
		line, err := toml.Marshal(map[string]any{k.Name: typedDefault(k.Default)})
		if err != nil {
			colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
			return
		}
		fmt.Fprintf(&buf, "\n# %s\n%s", k.Help, line)
	}
	if err := os.WriteFile(path, buf.Bytes(), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

// typedDefault turns a default into the TOML type it should be written as.
func typedDefault(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := values[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	switch normalizeBool(Get(key, "")) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Set overrides a single value for the rest of the process. A known key
// is validated first; an invalid value is ignored.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if values == nil {
		values = make(map[string]string)
	}
	if k, ok := lookupKey(keys, key); ok && k.Validate != nil {
		current, exists := values[key]
		if !exists {
			current = k.Default
		}
		normalized, err := k.Validate(key, value, current)
		if err != nil {
			return
		}
		value = normalized
	}
	values[key] = value
}
