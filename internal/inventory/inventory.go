package inventory

import "github.com/clusterops/openshift-inventory-gen/internal/config"

// Inventory is the fully assembled in-memory model handed to the
// writer: host groups in discovery order plus the resolved variable
// set.
type Inventory struct {
	Groups []*HostGroup
	Vars   config.Resolved

	// InstallLogging is the final three-way merged logging flag and is
	// always emitted, regardless of truthiness.
	InstallLogging bool

	// EmbeddedEtcd reflects the master config storage-backend check. It
	// does not gate etcd group creation (URL presence does) and is only
	// surfaced in diagnostics.
	EmbeddedEtcd bool
}
