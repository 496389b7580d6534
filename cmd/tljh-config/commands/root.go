// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the tljh-config CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tljh-config",
		Short: "Inspect and edit The Littlest JupyterHub configuration",
	}

	// Config editing
	cmd.AddCommand(Show())
	cmd.AddCommand(Get())
	cmd.AddCommand(Set())
	cmd.AddCommand(Unset())
	cmd.AddCommand(AddItem())
	cmd.AddCommand(RemoveItem())

	// Setup and translation
	cmd.AddCommand(Init())
	cmd.AddCommand(Apply())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
