package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// MasterConfigKind is the required top-level discriminator of the
// control-plane configuration document.
const MasterConfigKind = "MasterConfig"

// MasterConfig is the read-only subset of the control-plane config this
// tool consumes. Optional sections stay nil when absent.
type MasterConfig struct {
	Kind                   string                  `yaml:"kind"`
	MasterIP               string                  `yaml:"masterIP"`
	MasterPublicURL        string                  `yaml:"masterPublicURL"`
	KubernetesMasterConfig *KubernetesMasterConfig `yaml:"kubernetesMasterConfig"`
	AssetConfig            *AssetConfig            `yaml:"assetConfig"`
	EtcdClientInfo         *EtcdClientInfo         `yaml:"etcdClientInfo"`

	Path string `yaml:"-"`
}

type KubernetesMasterConfig struct {
	StorageBackend string `yaml:"storage-backend"`
}

type AssetConfig struct {
	LoggingPublicURL string `yaml:"loggingPublicURL"`
}

type EtcdClientInfo struct {
	URLs []string `yaml:"urls"`
}

// LoadMasterConfig reads, parses and shape-validates the master config.
// This is the primary validation gate before any cluster call.
func LoadMasterConfig(path string) (*MasterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Kind: ErrUnreadable, Path: path, Err: err}
	}
	master := &MasterConfig{}
	if err := yaml.Unmarshal(data, master); err != nil {
		return nil, &ConfigError{Kind: ErrMalformed, Path: path, Err: err}
	}
	master.Path = path
	if err := master.validate(); err != nil {
		return nil, err
	}
	return master, nil
}

func (m *MasterConfig) validate() error {
	if m.Kind != MasterConfigKind {
		return &ConfigError{Kind: ErrWrongKind, Path: m.Path, Field: m.Kind}
	}
	if m.KubernetesMasterConfig == nil {
		return &ConfigError{Kind: ErrMissingField, Path: m.Path, Field: "kubernetesMasterConfig"}
	}
	if m.MasterPublicURL == "" {
		return &ConfigError{Kind: ErrMissingField, Path: m.Path, Field: "masterPublicURL"}
	}
	return nil
}

// StorageBackend returns the configured storage backend, or "" when the
// field is absent.
func (m *MasterConfig) StorageBackend() string {
	if m.KubernetesMasterConfig == nil {
		return ""
	}
	return m.KubernetesMasterConfig.StorageBackend
}

// LoggingPublicURL returns the asset-config logging URL, or "" when the
// section or field is absent.
func (m *MasterConfig) LoggingPublicURL() string {
	if m.AssetConfig == nil {
		return ""
	}
	return m.AssetConfig.LoggingPublicURL
}

// EtcdURLs returns the etcd client URLs, or nil when the section is
// absent.
func (m *MasterConfig) EtcdURLs() []string {
	if m.EtcdClientInfo == nil {
		return nil
	}
	return m.EtcdClientInfo.URLs
}
