package oc

import (
	"fmt"
	"strings"
)

// ClientError is a fatal cluster-client failure: the oc binary could
// not be located, or an oc invocation exited non-zero. Captured
// combined output is carried verbatim so the operator sees the
// underlying tool's own diagnostics.
type ClientError struct {
	ExitCode int
	Output   string
	Err      error
}

func (e *ClientError) Error() string {
	msg := fmt.Sprintf("oc client error: %v", e.Err)
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("oc exited with code %d: %v", e.ExitCode, e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ClientError) Unwrap() error {
	return e.Err
}
