package handlers

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dervirvel/the-littlest-jupyterhub/internal/config"
)

// Factory function variables for apply - can be replaced in tests.
var (
	applyLoadConfig     = config.LoadConfig
	applyWriteHubConfig = config.WriteHubConfig
)

// Apply loads the admin configuration, translates it into the traitlet
// configuration JupyterHub reads at startup, and writes the result.
// output "-" prints to stdout; empty means the default state-directory
// path.
func Apply(output string) error {
	logger := newLogger()

	overrides, err := applyLoadConfig(logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	hub := &config.HubConfig{}
	config.ApplyConfig(overrides, hub, logger)

	if output == "-" {
		data, err := yaml.Marshal(hub.TraitletMap())
		if err != nil {
			return fmt.Errorf("failed to marshal hub config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	if output == "" {
		output = config.HubConfigPath()
	}
	if err := applyWriteHubConfig(hub, output); err != nil {
		return err
	}

	fmt.Printf("Wrote JupyterHub configuration to %s\n", output)
	return nil
}
