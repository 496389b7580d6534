package commands

import (
	"github.com/spf13/cobra"

	"github.com/dervirvel/the-littlest-jupyterhub/cmd/tljh-config/handlers"
)

// Apply returns the command for translating the admin configuration into
// the traitlet configuration JupyterHub reads at startup.
func Apply() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Generate the JupyterHub configuration from config.yaml",
		Long: `Generate the JupyterHub traitlet configuration.

Loads config.yaml, merges secret files from the state directory, applies
documented defaults for everything left unset, and writes the resulting
traitlet configuration for JupyterHub's startup sequence.
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Apply(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: state/jupyterhub_config.yaml, \"-\" for stdout)")

	return cmd
}
