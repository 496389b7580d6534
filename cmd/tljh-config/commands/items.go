package commands

import (
	"github.com/spf13/cobra"

	"github.com/dervirvel/the-littlest-jupyterhub/cmd/tljh-config/handlers"
)

// AddItem returns the command for appending a value to a list.
func AddItem() *cobra.Command {
	return &cobra.Command{
		Use:   "add-item <key> <value>",
		Short: "Append a value to a configuration list",
		Long: `Append a value to a configuration list, creating the list if needed.

Examples:
  tljh-config add-item users.admin alice
  tljh-config add-item users.allowed bob
`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.AddItem(args[0], args[1])
		},
	}
}

// RemoveItem returns the command for removing a value from a list.
func RemoveItem() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <key> <value>",
		Short: "Remove a value from a configuration list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.RemoveItem(args[0], args[1])
		},
	}
}
