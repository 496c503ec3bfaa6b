package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Well-known host group identities, in discovery order.
const (
	GroupMasters = "masters"
	GroupNodes   = "nodes"
	GroupEtcd    = "etcd"
)

var (
	ErrInvalidHost      = errors.New("invalid host")
	ErrInvalidHostGroup = errors.New("invalid host group")
)

// Host is one inventory entry: group membership plus addressing and
// naming attributes. The group is fixed at construction; hostnames are
// normalized on assignment.
type Host struct {
	group               string
	hostname            string
	publicHostname      string
	kubeletNameOverride string

	Alias    string
	IP       string
	PublicIP string
}

func NewHost(group string) (*Host, error) {
	if strings.TrimSpace(group) == "" {
		return nil, fmt.Errorf("%w: empty group", ErrInvalidHost)
	}
	return &Host{group: group}, nil
}

func (h *Host) Group() string {
	return h.group
}

func (h *Host) Hostname() string {
	return h.hostname
}

func (h *Host) SetHostname(raw string) {
	h.hostname = NormalizeHostname(raw)
}

func (h *Host) PublicHostname() string {
	return h.publicHostname
}

func (h *Host) SetPublicHostname(raw string) {
	h.publicHostname = NormalizeHostname(raw)
}

// KubeletNameOverride is the node name reported to the kubelet. An
// explicit override wins; otherwise the hostname doubles as the
// override. Setting it does not feed the display-name fallback, so a
// node record keeps its address as display name.
func (h *Host) KubeletNameOverride() string {
	if h.kubeletNameOverride != "" {
		return h.kubeletNameOverride
	}
	return h.hostname
}

func (h *Host) SetKubeletNameOverride(raw string) {
	h.kubeletNameOverride = NormalizeHostname(raw)
}

// Line renders the host in inventory grammar: the display name bare,
// then key=value pairs in fixed order. Every emitted segment carries a
// trailing space; unset fields are omitted entirely.
func (h *Host) Line() string {
	var b strings.Builder

	name := h.Alias
	if name == "" {
		name = h.hostname
	}
	if name == "" {
		name = h.IP
	}
	if name != "" {
		b.WriteString(name)
		b.WriteByte(' ')
	}
	if h.IP != "" {
		b.WriteString("openshift_ip=")
		b.WriteString(h.IP)
		b.WriteByte(' ')
	}
	if h.PublicIP != "" {
		b.WriteString("openshift_public_ip=")
		b.WriteString(h.PublicIP)
		b.WriteByte(' ')
	}
	if override := h.KubeletNameOverride(); override != "" {
		b.WriteString("openshift_kubelet_name_override=")
		b.WriteString(override)
		b.WriteByte(' ')
	}
	if h.publicHostname != "" {
		b.WriteString("openshift_public_hostname=")
		b.WriteString(h.publicHostname)
		b.WriteByte(' ')
	}
	return b.String()
}

// NormalizeHostname strips a leading http:// or https:// scheme, drops
// anything from the first path separator on, and removes a trailing
// :<port> suffix. Idempotent.
func NormalizeHostname(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.LastIndexByte(s, ':'); idx >= 0 && isPort(s[idx+1:]) {
		s = s[:idx]
	}
	return s
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
