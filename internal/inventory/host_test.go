package inventory

import (
	"errors"
	"strings"
	"testing"
)

func TestNewHostRequiresGroup(t *testing.T) {
	if _, err := NewHost(""); !errors.Is(err, ErrInvalidHost) {
		t.Fatalf("expected ErrInvalidHost, got %v", err)
	}
	if _, err := NewHost("   "); !errors.Is(err, ErrInvalidHost) {
		t.Fatalf("expected ErrInvalidHost for blank group, got %v", err)
	}
}

func TestHostLineAddressOnly(t *testing.T) {
	host, err := NewHost(GroupNodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	host.IP = "10.0.0.5"
	want := "10.0.0.5 openshift_ip=10.0.0.5 "
	if got := host.Line(); got != want {
		t.Fatalf("line mismatch: got %q want %q", got, want)
	}
}

func TestHostLineFieldOrder(t *testing.T) {
	host, err := NewHost(GroupMasters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	host.Alias = "master01"
	host.IP = "10.0.0.1"
	host.PublicIP = "203.0.113.1"
	host.SetHostname("master01.internal")
	host.SetPublicHostname("master01.example.com")

	want := "master01 " +
		"openshift_ip=10.0.0.1 " +
		"openshift_public_ip=203.0.113.1 " +
		"openshift_kubelet_name_override=master01.internal " +
		"openshift_public_hostname=master01.example.com "
	if got := host.Line(); got != want {
		t.Fatalf("line mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestHostLineDisplayNameFallback(t *testing.T) {
	host, _ := NewHost(GroupEtcd)
	host.SetHostname("etcd1.local")
	host.IP = "10.0.0.5"
	if got := host.Line(); !strings.HasPrefix(got, "etcd1.local ") {
		t.Fatalf("expected hostname as display name, got %q", got)
	}
}

func TestHostLineKubeletNameOverrideKeepsAddressDisplayName(t *testing.T) {
	host, _ := NewHost(GroupNodes)
	host.IP = "10.0.0.5"
	host.SetKubeletNameOverride("node1.local")

	want := "10.0.0.5 openshift_ip=10.0.0.5 openshift_kubelet_name_override=node1.local "
	if got := host.Line(); got != want {
		t.Fatalf("line mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestHostKubeletNameOverrideFallsBackToHostname(t *testing.T) {
	host, _ := NewHost(GroupMasters)
	host.SetHostname("master01.internal")
	if got := host.KubeletNameOverride(); got != "master01.internal" {
		t.Fatalf("expected hostname fallback, got %q", got)
	}
	host.SetKubeletNameOverride("master01.node")
	if got := host.KubeletNameOverride(); got != "master01.node" {
		t.Fatalf("explicit override must win, got %q", got)
	}
}

func TestHostLineAllBlank(t *testing.T) {
	host, _ := NewHost(GroupNodes)
	if got := host.Line(); got != "" {
		t.Fatalf("expected degenerate empty line, got %q", got)
	}
}

func TestNormalizeHostname(t *testing.T) {
	cases := map[string]string{
		"https://host.example.com:8443/": "host.example.com",
		"http://host.example.com":        "host.example.com",
		"host.example.com:8443":          "host.example.com",
		"host.example.com":               "host.example.com",
		"https://etcd1:2379":             "etcd1",
		"  node1.local ":                 "node1.local",
		"":                               "",
	}
	for input, want := range cases {
		if got := NormalizeHostname(input); got != want {
			t.Errorf("NormalizeHostname(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeHostnameIdempotent(t *testing.T) {
	inputs := []string{
		"https://host.example.com:8443/",
		"host.example.com",
		"10.0.0.5",
		"etcd1:2379",
	}
	for _, input := range inputs {
		once := NormalizeHostname(input)
		if twice := NormalizeHostname(once); twice != once {
			t.Errorf("not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
