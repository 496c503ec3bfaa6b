package output

import (
	"io"
	"strings"

	"github.com/clusterops/openshift-inventory-gen/internal/config"
	"github.com/clusterops/openshift-inventory-gen/internal/inventory"
)

const (
	childrenHeader = "[OSEv3:children]"
	varsHeader     = "[OSEv3:vars]"
)

// Render serializes the assembled inventory in the downstream grammar:
// children block, vars block, then one block per group, each followed
// by a single blank line. The whole document is built in memory and
// written in one shot so a failed run never leaves partial output.
func Render(w io.Writer, inv *inventory.Inventory) error {
	var b strings.Builder

	b.WriteString(childrenHeader + "\n")
	for _, group := range inv.Groups {
		b.WriteString(group.Name() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(varsHeader + "\n")
	writeVars(&b, inv)
	b.WriteString("\n")

	for _, group := range inv.Groups {
		b.WriteString("[" + group.Name() + "]\n")
		for _, host := range group.Hosts() {
			b.WriteString(host.Line() + "\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeVars(b *strings.Builder, inv *inventory.Inventory) {
	vars := inv.Vars
	if vars.SSHUser != "" {
		writeVar(b, config.KeySSHUser, vars.SSHUser)
	}
	if vars.BecomeUser != "" {
		writeVar(b, config.KeyBecomeUser, vars.BecomeUser)
		writeVar(b, "ansible_become", "yes")
	}
	if vars.UninstallImages != "" {
		writeVar(b, config.KeyUninstallImages, vars.UninstallImages)
	}
	if vars.DeploymentType != "" {
		writeVar(b, config.KeyDeploymentType, vars.DeploymentType)
	}
	if vars.InstallExamples != "" {
		writeVar(b, config.KeyInstallExamples, vars.InstallExamples)
	}
	if vars.Release != "" {
		writeVar(b, config.KeyRelease, vars.Release)
	}
	if vars.ImageTag != "" {
		writeVar(b, config.KeyImageTag, vars.ImageTag)
	}
	if vars.LoggingImageVersion != "" {
		writeVar(b, config.KeyLoggingImageVersion, vars.LoggingImageVersion)
	}
	if vars.DisableCheck != "" {
		writeVar(b, config.KeyDisableCheck, vars.DisableCheck)
	}
	// Always emitted, whatever its value.
	writeVar(b, config.KeyInstallLogging, config.FormatBool(inv.InstallLogging))
}

func writeVar(b *strings.Builder, key, value string) {
	b.WriteString(key + "=" + value + "\n")
}
