package commands

import (
	"github.com/spf13/cobra"

	"github.com/dervirvel/the-littlest-jupyterhub/cmd/tljh-config/handlers"
)

// Get returns the command for reading a single configuration value.
func Get() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value by dotted key path",
		Long: `Print a configuration value by dotted key path.

Examples:
  tljh-config get auth.type
  tljh-config get services.cull.every
`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Get(args[0])
		},
	}
}
