package config

import (
	"os"
	"path/filepath"

	"k8s.io/client-go/tools/clientcmd"
)

// Defaults for resolved configuration fields.
const (
	DefaultSSHUser          = "root"
	DefaultDeploymentType   = "origin"
	DefaultInstallExamples  = "true"
	DefaultMasterConfigName = "master-config.yaml"
)

// Resolved is the effective per-run configuration: operator overrides
// merged over defaults. Precedence is override > cluster-derived >
// default, applied per field through Merge/MergeBool so it stays
// auditable.
type Resolved struct {
	SSHUser             string
	BecomeUser          string
	DeploymentType      string
	UninstallImages     string
	InstallExamples     string
	Release             string
	ImageTag            string
	LoggingImageVersion string
	DisableCheck        string

	MasterConfigPath string
	KubeconfigPath   string

	// InstallLogging is the explicit operator override for the logging
	// flag; nil means no override was supplied. The final value is
	// merged against the cluster-derived signal by the pipeline.
	InstallLogging *bool
}

// Resolve applies override precedence over documented defaults. Fields
// with a cluster-derived middle tier pass that tier in at merge time;
// everything resolved here has none.
func Resolve(overrides *Overrides) Resolved {
	return Resolved{
		SSHUser:             Merge(overrides.String(KeySSHUser), "", DefaultSSHUser),
		BecomeUser:          overrides.String(KeyBecomeUser),
		DeploymentType:      Merge(overrides.String(KeyDeploymentType), "", DefaultDeploymentType),
		UninstallImages:     overrides.String(KeyUninstallImages),
		InstallExamples:     Merge(overrides.String(KeyInstallExamples), "", DefaultInstallExamples),
		Release:             overrides.String(KeyRelease),
		ImageTag:            overrides.String(KeyImageTag),
		LoggingImageVersion: overrides.String(KeyLoggingImageVersion),
		DisableCheck:        overrides.String(KeyDisableCheck),
		MasterConfigPath:    Merge(ExpandPath(overrides.String(KeyMasterConfigPath)), "", defaultMasterConfigPath()),
		KubeconfigPath:      Merge(ExpandPath(overrides.String(KeyKubeconfigPath)), "", clientcmd.RecommendedHomeFile),
		InstallLogging:      overrides.BoolPtr(KeyInstallLogging),
	}
}

// Merge is the three-way precedence for string fields: explicit
// override, else cluster-derived value, else default.
func Merge(override, derived, fallback string) string {
	if override != "" {
		return override
	}
	if derived != "" {
		return derived
	}
	return fallback
}

// MergeBool is the three-way precedence for boolean fields. An explicit
// override always wins, in either direction; a true derived signal
// beats the fallback.
func MergeBool(override *bool, derived, fallback bool) bool {
	if override != nil {
		return *override
	}
	if derived {
		return true
	}
	return fallback
}

func defaultMasterConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/root"
	}
	return filepath.Join(home, DefaultMasterConfigName)
}
