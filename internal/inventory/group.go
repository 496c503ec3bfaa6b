package inventory

import "fmt"

// HostGroup is a homogeneous, ordered collection of hosts sharing one
// group identity. The member slice is freshly allocated per group so
// aggregated hosts never leak between instances.
type HostGroup struct {
	name  string
	hosts []*Host
}

// NewHostGroup builds a group whose name is taken from its members.
// Mixing hosts of different group identities fails with
// ErrInvalidHostGroup. An empty member set yields an unnamed, empty
// group, which is valid and serializes to no output body.
func NewHostGroup(hosts []*Host) (*HostGroup, error) {
	group := &HostGroup{hosts: make([]*Host, 0, len(hosts))}
	for _, host := range hosts {
		if group.name == "" {
			group.name = host.Group()
		}
		if host.Group() != group.name {
			return nil, fmt.Errorf("%w: mixed identities %q and %q",
				ErrInvalidHostGroup, group.name, host.Group())
		}
		group.hosts = append(group.hosts, host)
	}
	return group, nil
}

func (g *HostGroup) Name() string {
	return g.name
}

func (g *HostGroup) Hosts() []*Host {
	return g.hosts
}
