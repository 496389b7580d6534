package handlers

import (
	"fmt"

	"github.com/dervirvel/the-littlest-jupyterhub/internal/config"
)

// Set writes a configuration value at a dotted key path, creating
// intermediate sections as needed.
func Set(key, rawValue string) error {
	path := config.ConfigPath()
	raw, err := config.LoadRaw(path)
	if err != nil {
		return err
	}

	value := config.ParseValue(rawValue)
	if err := config.SetItem(raw, key, value); err != nil {
		return err
	}
	if err := config.SaveRaw(path, raw); err != nil {
		return err
	}

	fmt.Printf("Set %s = %v\n", key, value)
	return nil
}

// Unset removes a configuration key.
func Unset(key string) error {
	path := config.ConfigPath()
	raw, err := config.LoadRaw(path)
	if err != nil {
		return err
	}

	if err := config.UnsetItem(raw, key); err != nil {
		return err
	}
	if err := config.SaveRaw(path, raw); err != nil {
		return err
	}

	fmt.Printf("Removed %s\n", key)
	return nil
}
