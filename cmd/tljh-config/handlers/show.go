package handlers

import (
	"fmt"

	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/dervirvel/the-littlest-jupyterhub/internal/config"
)

// Factory function variables for show - can be replaced in tests.
var showLoadRaw = config.LoadRaw

// Show prints the current config.yaml contents, optionally as JSON.
func Show(jsonOutput bool) error {
	raw, err := showLoadRaw(config.ConfigPath())
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if jsonOutput {
		jsonData, err := sigsyaml.YAMLToJSON(data)
		if err != nil {
			return fmt.Errorf("failed to convert config to JSON: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Print(string(data))
	return nil
}
