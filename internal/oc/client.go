package oc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	corev1 "k8s.io/api/core/v1"
)

const binaryName = "oc"

// Client wraps the external oc executable. The credential file is
// passed explicitly on every call; the current-context default is never
// relied on. The binary is located once, at construction.
type Client struct {
	binPath    string
	kubeconfig string
}

func NewClient(kubeconfigPath string) (*Client, error) {
	binPath, err := findBinary(searchDirs())
	if err != nil {
		return nil, err
	}
	return &Client{binPath: binPath, kubeconfig: kubeconfigPath}, nil
}

// WhoAmI probes authentication. Only success or failure matters to
// callers; the identity is returned for diagnostics.
func (c *Client) WhoAmI(ctx context.Context) (string, error) {
	out, err := c.call(ctx, "whoami")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ListNodes fetches the live node list from the cluster API.
func (c *Client) ListNodes(ctx context.Context) (*corev1.NodeList, error) {
	out, err := c.call(ctx, "get", "nodes", "-o", "json")
	if err != nil {
		return nil, err
	}
	nodes := &corev1.NodeList{}
	if err := json.Unmarshal([]byte(out), nodes); err != nil {
		return nil, &ClientError{Output: out, Err: fmt.Errorf("decode node list: %w", err)}
	}
	return nodes, nil
}

func (c *Client) call(ctx context.Context, args ...string) (string, error) {
	argv := append([]string{"--config=" + c.kubeconfig}, args...)
	cmd := exec.CommandContext(ctx, c.binPath, argv...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return "", &ClientError{ExitCode: code, Output: string(out), Err: err}
	}
	return string(out), nil
}

// searchDirs is the binary lookup path: the process PATH plus two
// conventional fallback directories.
func searchDirs() []string {
	dirs := filepath.SplitList(os.Getenv("PATH"))
	dirs = append(dirs, "/usr/local/bin")
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "bin"))
	}
	return dirs
}

func findBinary(dirs []string) (string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, binaryName)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0o111 == 0 {
			continue
		}
		return candidate, nil
	}
	return "", &ClientError{Err: fmt.Errorf("%s binary not found in PATH, /usr/local/bin, or ~/bin", binaryName)}
}
