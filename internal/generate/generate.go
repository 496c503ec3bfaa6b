package generate

import (
	"context"
	"fmt"

	"github.com/clusterops/openshift-inventory-gen/internal/config"
	"github.com/clusterops/openshift-inventory-gen/internal/inventory"
	"github.com/clusterops/openshift-inventory-gen/internal/output"
	corev1 "k8s.io/api/core/v1"
)

// ClusterClient is the read-only cluster surface the pipeline needs.
// Satisfied by oc.Client; tests substitute a fake.
type ClusterClient interface {
	WhoAmI(ctx context.Context) (string, error)
	ListNodes(ctx context.Context) (*corev1.NodeList, error)
}

// ClientFactory builds the cluster client for a credential path.
// Construction is itself a pipeline step: it fails when the backing
// executable cannot be located.
type ClientFactory func(kubeconfigPath string) (ClusterClient, error)

type Options struct {
	UserConfigPath string
	Diag           *output.Diag
}

const nodeKind = "Node"

// legacyHostIP is the pre-1.x internal address type some clusters still
// report alongside InternalIP.
const legacyHostIP corev1.NodeAddressType = "LegacyHostIP"

// Run executes the discovery pipeline as a strict linear sequence:
// resolve config, validate the master config, construct the client,
// probe authentication, then assemble masters/nodes/etcd groups in that
// order. The first fatal error aborts the run; nothing is written here.
func Run(ctx context.Context, opts Options, newClient ClientFactory) (*inventory.Inventory, error) {
	diag := opts.Diag

	userConfigPath, source := config.UserConfigPath(opts.UserConfigPath)
	diag.Infof("override config source=%s path=%s", source, userConfigPath)
	overrides, err := config.LoadOverrides(userConfigPath)
	if err != nil {
		return nil, err
	}
	resolved := config.Resolve(overrides)

	master, err := config.LoadMasterConfig(resolved.MasterConfigPath)
	if err != nil {
		return nil, err
	}

	client, err := newClient(resolved.KubeconfigPath)
	if err != nil {
		return nil, err
	}

	identity, err := client.WhoAmI(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not authenticate against the cluster using %s: %w", resolved.KubeconfigPath, err)
	}
	diag.Infof("authenticated as %s", identity)

	groups := []*inventory.HostGroup{}

	mastersGroup, err := buildMastersGroup(master)
	if err != nil {
		return nil, err
	}
	groups = append(groups, mastersGroup)

	nodeList, err := client.ListNodes(ctx)
	if err != nil {
		return nil, err
	}
	nodeHosts, err := classifyNodes(nodeList)
	if err != nil {
		return nil, err
	}
	if len(nodeHosts) == 0 {
		diag.Warnf("no qualifying node entries; omitting the nodes group")
	} else {
		diag.Infof("discovered %d node entries", len(nodeHosts))
		nodesGroup, err := inventory.NewHostGroup(nodeHosts)
		if err != nil {
			return nil, err
		}
		groups = append(groups, nodesGroup)
	}

	// The storage-backend check only feeds a diagnostic flag; the etcd
	// group itself is gated on URL presence alone.
	embedded := isEtcdBackend(master.StorageBackend())
	diag.Infof("storage backend %q (embedded etcd: %v)", master.StorageBackend(), embedded)
	if urls := master.EtcdURLs(); len(urls) > 0 {
		etcdGroup, err := buildEtcdGroup(urls)
		if err != nil {
			return nil, err
		}
		groups = append(groups, etcdGroup)
	}

	derivedLogging := master.LoggingPublicURL() != ""
	installLogging := config.MergeBool(resolved.InstallLogging, derivedLogging, false)

	return &inventory.Inventory{
		Groups:         groups,
		Vars:           resolved,
		InstallLogging: installLogging,
		EmbeddedEtcd:   embedded,
	}, nil
}

// buildMastersGroup derives the unconditional masters group: a single
// host carrying the control plane's IP and normalized public hostname.
func buildMastersGroup(master *config.MasterConfig) (*inventory.HostGroup, error) {
	host, err := inventory.NewHost(inventory.GroupMasters)
	if err != nil {
		return nil, err
	}
	host.IP = master.MasterIP
	host.SetPublicHostname(master.MasterPublicURL)
	return inventory.NewHostGroup([]*inventory.Host{host})
}

// classifyNodes turns the raw node list into nodes-group hosts. The IP
// comes from the first InternalIP or legacy internal entry (first match
// wins) and doubles as the display name; the Hostname entry (last match
// wins) only feeds the kubelet name override. Items of any other kind
// are skipped.
func classifyNodes(list *corev1.NodeList) ([]*inventory.Host, error) {
	hosts := make([]*inventory.Host, 0, len(list.Items))
	for _, item := range list.Items {
		if item.Kind != nodeKind {
			continue
		}
		host, err := inventory.NewHost(inventory.GroupNodes)
		if err != nil {
			return nil, err
		}
		for _, addr := range item.Status.Addresses {
			switch addr.Type {
			case corev1.NodeInternalIP, legacyHostIP:
				if host.IP == "" {
					host.IP = addr.Address
				}
			case corev1.NodeHostName:
				host.SetKubeletNameOverride(addr.Address)
			}
		}
		hosts = append(hosts, host)
	}
	return hosts, nil
}

func buildEtcdGroup(urls []string) (*inventory.HostGroup, error) {
	hosts := make([]*inventory.Host, 0, len(urls))
	for _, url := range urls {
		host, err := inventory.NewHost(inventory.GroupEtcd)
		if err != nil {
			return nil, err
		}
		host.SetHostname(url)
		hosts = append(hosts, host)
	}
	return inventory.NewHostGroup(hosts)
}

func isEtcdBackend(backend string) bool {
	switch backend {
	case "etcd", "etcd2", "etcd3":
		return true
	}
	return false
}
