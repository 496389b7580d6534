// Package main is the entry point for the tljh-config CLI.
//
// tljh-config is the admin tool of The Littlest JupyterHub. It inspects
// and edits the distribution's config.yaml with dotted key paths, runs an
// interactive setup wizard, and translates the admin configuration into
// the traitlet configuration JupyterHub consumes at startup.
//
// Commands: show, get, set, unset, add-item, remove-item, apply, init.
//
// For detailed usage information, run:
//
//	tljh-config --help
package main

import (
	"fmt"
	"os"

	"github.com/dervirvel/the-littlest-jupyterhub/cmd/tljh-config/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
