package handlers

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dervirvel/the-littlest-jupyterhub/internal/config"
)

// Get prints the configuration value at a dotted key path.
func Get(key string) error {
	raw, err := config.LoadRaw(config.ConfigPath())
	if err != nil {
		return err
	}

	value, err := config.GetItem(raw, key)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
