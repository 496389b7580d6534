package commands

import (
	"github.com/spf13/cobra"

	"github.com/dervirvel/the-littlest-jupyterhub/cmd/tljh-config/handlers"
)

// Set returns the command for setting a configuration value.
func Set() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value by dotted key path",
		Long: `Set a configuration value by dotted key path.

Values parse like YAML scalars: "true" becomes a boolean, "10" an
integer. Intermediate sections are created as needed.

Examples:
  tljh-config set limits.memory 2G
  tljh-config set services.cull.every 120
  tljh-config set auth.type dummyauthenticator.DummyAuthenticator
`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Set(args[0], args[1])
		},
	}
}

// Unset returns the command for removing a configuration key.
func Unset() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration key by dotted key path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Unset(args[0])
		},
	}
}
