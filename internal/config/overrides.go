package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvUserConfig selects the override config file when no explicit
	// path is given on the command line.
	EnvUserConfig = "USER_CONFIG"

	// DefaultUserConfigPath is the conventional system location of the
	// override config.
	DefaultUserConfigPath = "/etc/inventory-generator-config.yaml"
)

// Recognized override keys. Keys not listed here are ignored.
const (
	KeySSHUser             = "ansible_ssh_user"
	KeyBecomeUser          = "ansible_become_user"
	KeyDeploymentType      = "openshift_deployment_type"
	KeyUninstallImages     = "openshift_uninstall_images"
	KeyInstallExamples     = "openshift_install_examples"
	KeyRelease             = "openshift_release"
	KeyImageTag            = "openshift_image_tag"
	KeyLoggingImageVersion = "openshift_logging_image_version"
	KeyDisableCheck        = "openshift_disable_check"
	KeyInstallLogging      = "openshift_logging_install_logging"
	KeyMasterConfigPath    = "master_config_path"
	KeyKubeconfigPath      = "admin_kubeconfig_path"
)

// Overrides is the parsed operator override file: a flat YAML mapping
// consulted by key. A present-but-empty file is an empty override set.
type Overrides struct {
	Path   string
	values map[string]any
}

// UserConfigPath resolves the override config location: explicit flag
// beats the USER_CONFIG environment variable, which beats the default
// system path. Returns the path and its source for diagnostics.
func UserConfigPath(explicit string) (path, source string) {
	switch {
	case explicit != "":
		return ExpandPath(explicit), "flag"
	case os.Getenv(EnvUserConfig) != "":
		return ExpandPath(os.Getenv(EnvUserConfig)), "env"
	default:
		return DefaultUserConfigPath, "default"
	}
}

// LoadOverrides reads and parses the override file. A missing or
// unreadable file is fatal; an empty document is not.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Kind: ErrUnreadable, Path: path, Err: err}
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, &ConfigError{Kind: ErrMalformed, Path: path, Err: err}
	}
	return &Overrides{Path: path, values: values}, nil
}

// String returns the stringified value for key, or "" when unset.
func (o *Overrides) String(key string) string {
	value, ok := o.values[key]
	if !ok {
		return ""
	}
	return Stringify(value)
}

// BoolPtr returns the value for key as an explicit boolean, or nil when
// the key is unset or not interpretable as a boolean.
func (o *Overrides) BoolPtr(key string) *bool {
	value, ok := o.values[key]
	if !ok {
		return nil
	}
	switch t := value.(type) {
	case bool:
		return &t
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return &parsed
		}
	}
	return nil
}

// Stringify renders an override value for inventory emission. Booleans
// use the downstream system's True/False casing; nil renders empty.
func Stringify(value any) string {
	switch t := value.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func FormatBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
