package oc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, binaryName)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestFindBinary(t *testing.T) {
	empty := t.TempDir()
	withBinary := t.TempDir()
	writeScript(t, withBinary, "exit 0\n")

	path, err := findBinary([]string{"", empty, withBinary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(withBinary, binaryName) {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestFindBinaryNotFound(t *testing.T) {
	_, err := findBinary([]string{t.TempDir()})
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected ClientError, got %v", err)
	}
}

func TestFindBinarySkipsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, binaryName), []byte("not a binary"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := findBinary([]string{dir}); err == nil {
		t.Fatalf("expected lookup failure for non-executable file")
	}
}

func TestWhoAmI(t *testing.T) {
	dir := t.TempDir()
	bin := writeScript(t, dir, `echo "system:admin"`+"\n")
	client := &Client{binPath: bin, kubeconfig: "/tmp/admin.kubeconfig"}

	identity, err := client.WhoAmI(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity != "system:admin" {
		t.Fatalf("unexpected identity %q", identity)
	}
}

func TestCallPassesCredentialExplicitly(t *testing.T) {
	dir := t.TempDir()
	bin := writeScript(t, dir, `echo "$1"`+"\n")
	client := &Client{binPath: bin, kubeconfig: "/tmp/admin.kubeconfig"}

	out, err := client.call(context.Background(), "whoami")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "--config=/tmp/admin.kubeconfig" {
		t.Fatalf("credential not passed explicitly: %q", out)
	}
}

func TestCallFailureCarriesOutputAndExitCode(t *testing.T) {
	dir := t.TempDir()
	bin := writeScript(t, dir, `echo "error: You must be logged in" >&2`+"\nexit 1\n")
	client := &Client{binPath: bin, kubeconfig: "/tmp/admin.kubeconfig"}

	_, err := client.WhoAmI(context.Background())
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected ClientError, got %v", err)
	}
	if clientErr.ExitCode != 1 {
		t.Errorf("exit code: got %d want 1", clientErr.ExitCode)
	}
	if !strings.Contains(clientErr.Output, "You must be logged in") {
		t.Errorf("captured output missing diagnostic: %q", clientErr.Output)
	}
	if !strings.Contains(clientErr.Error(), "You must be logged in") {
		t.Errorf("error message must carry the output verbatim: %q", clientErr.Error())
	}
}

func TestListNodes(t *testing.T) {
	payload := `{
  "apiVersion": "v1",
  "kind": "List",
  "items": [
    {
      "apiVersion": "v1",
      "kind": "Node",
      "metadata": {"name": "node1"},
      "status": {
        "addresses": [
          {"type": "InternalIP", "address": "10.0.0.5"},
          {"type": "Hostname", "address": "node1.local"}
        ]
      }
    }
  ]
}`
	dir := t.TempDir()
	bin := writeScript(t, dir, "cat <<'EOF'\n"+payload+"\nEOF\n")
	client := &Client{binPath: bin, kubeconfig: "/tmp/admin.kubeconfig"}

	nodes, err := client.ListNodes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes.Items) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes.Items))
	}
	node := nodes.Items[0]
	if node.Kind != "Node" || node.Name != "node1" {
		t.Fatalf("unexpected node %q kind %q", node.Name, node.Kind)
	}
	if len(node.Status.Addresses) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(node.Status.Addresses))
	}
}

func TestListNodesMalformedPayload(t *testing.T) {
	dir := t.TempDir()
	bin := writeScript(t, dir, `echo "not json"`+"\n")
	client := &Client{binPath: bin, kubeconfig: "/tmp/admin.kubeconfig"}

	_, err := client.ListNodes(context.Background())
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected ClientError, got %v", err)
	}
}
