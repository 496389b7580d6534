package handlers

import (
	"fmt"

	"github.com/dervirvel/the-littlest-jupyterhub/internal/config"
)

// AddItem appends a value to a configuration list, creating the list if
// needed.
func AddItem(key, rawValue string) error {
	path := config.ConfigPath()
	raw, err := config.LoadRaw(path)
	if err != nil {
		return err
	}

	value := config.ParseValue(rawValue)
	if err := config.AddItem(raw, key, value); err != nil {
		return err
	}
	if err := config.SaveRaw(path, raw); err != nil {
		return err
	}

	fmt.Printf("Added %v to %s\n", value, key)
	return nil
}

// RemoveItem removes a value from a configuration list.
func RemoveItem(key, rawValue string) error {
	path := config.ConfigPath()
	raw, err := config.LoadRaw(path)
	if err != nil {
		return err
	}

	value := config.ParseValue(rawValue)
	if err := config.RemoveItem(raw, key, value); err != nil {
		return err
	}
	if err := config.SaveRaw(path, raw); err != nil {
		return err
	}

	fmt.Printf("Removed %v from %s\n", value, key)
	return nil
}
