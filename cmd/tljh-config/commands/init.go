package commands

import (
	"github.com/spf13/cobra"

	"github.com/dervirvel/the-littlest-jupyterhub/cmd/tljh-config/handlers"
)

// Init returns the command for interactively creating an initial
// config.yaml.
//
// The wizard asks only the handful of choices every deployment faces:
// authenticator, per-user memory limit, default application, and whether
// idle servers should be culled. Everything else keeps its documented
// default.
func Init() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an initial configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), prefix)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Install prefix to write config.yaml under (default: active install prefix)")

	return cmd
}
