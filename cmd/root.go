package cmd

import (
	"fmt"
	"os"

	"github.com/clusterops/openshift-inventory-gen/internal/exit"
	"github.com/clusterops/openshift-inventory-gen/internal/generate"
	"github.com/clusterops/openshift-inventory-gen/internal/oc"
	"github.com/clusterops/openshift-inventory-gen/internal/output"
	"github.com/spf13/cobra"
)

var (
	userConfigPath string
	verbose        bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openshift-inventory-gen [output-file]",
		Short: "Generate an Ansible inventory from a running OpenShift cluster",
		Long: "Reads the cluster's master configuration, queries live node and etcd\n" +
			"membership through oc, and writes the resulting host inventory to the\n" +
			"given file or standard output.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.InitStyles()
			diag := output.NewDiag(verbose)

			opts := generate.Options{
				UserConfigPath: userConfigPath,
				Diag:           diag,
			}
			inv, err := generate.Run(cmd.Context(), opts, func(kubeconfigPath string) (generate.ClusterClient, error) {
				return oc.NewClient(kubeconfigPath)
			})
			if err != nil {
				return exit.New(1, err)
			}

			dest := os.Stdout
			if len(args) == 1 {
				file, err := os.Create(args[0])
				if err != nil {
					return exit.New(1, fmt.Errorf("cannot open inventory output %s: %w", args[0], err))
				}
				defer file.Close()
				dest = file
				diag.Infof("writing inventory to %s", args[0])
			}
			if err := output.Render(dest, inv); err != nil {
				return exit.New(1, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userConfigPath, "config", "", "path to the generator config file (overrides USER_CONFIG)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")

	return cmd
}
