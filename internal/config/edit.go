package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// The tljh-config CLI edits the raw config.yaml mapping with dotted key
// paths (e.g. "services.cull.every") instead of the typed schema, so it
// works unchanged for keys this binary does not know about yet.

// LoadRaw reads a YAML mapping from path. A missing file yields an empty
// mapping.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return raw, nil
}

// SaveRaw writes a YAML mapping to path, creating parent directories as
// needed.
func SaveRaw(path string, raw map[string]any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetItem returns the value at a dotted key path.
func GetItem(raw map[string]any, path string) (any, error) {
	parent, key, err := descend(raw, path, false)
	if err != nil {
		return nil, err
	}

	value, ok := parent[key]
	if !ok {
		return nil, fmt.Errorf("no key %q in config", path)
	}
	return value, nil
}

// SetItem sets the value at a dotted key path, creating intermediate
// mappings as needed.
func SetItem(raw map[string]any, path string, value any) error {
	parent, key, err := descend(raw, path, true)
	if err != nil {
		return err
	}
	parent[key] = value
	return nil
}

// UnsetItem removes the key at a dotted key path. Removing a key that does
// not exist is an error so typos surface.
func UnsetItem(raw map[string]any, path string) error {
	parent, key, err := descend(raw, path, false)
	if err != nil {
		return err
	}

	if _, ok := parent[key]; !ok {
		return fmt.Errorf("no key %q in config", path)
	}
	delete(parent, key)
	return nil
}

// AddItem appends value to the list at a dotted key path, creating the
// list if needed.
func AddItem(raw map[string]any, path string, value any) error {
	parent, key, err := descend(raw, path, true)
	if err != nil {
		return err
	}

	existing, ok := parent[key]
	if !ok || existing == nil {
		parent[key] = []any{value}
		return nil
	}

	list, ok := existing.([]any)
	if !ok {
		return fmt.Errorf("%q is a %T, not a list", path, existing)
	}
	parent[key] = append(list, value)
	return nil
}

// RemoveItem removes the first occurrence of value from the list at a
// dotted key path.
func RemoveItem(raw map[string]any, path string, value any) error {
	parent, key, err := descend(raw, path, false)
	if err != nil {
		return err
	}

	list, ok := parent[key].([]any)
	if !ok {
		return fmt.Errorf("%q is not a list", path)
	}

	for i, item := range list {
		if reflect.DeepEqual(item, value) {
			parent[key] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%v not found in %q", value, path)
}

// descend walks all but the last segment of a dotted key path and returns
// the mapping holding the final key. With vivify set, missing intermediate
// mappings are created; traversing through a non-mapping value is always
// an error.
func descend(raw map[string]any, path string, vivify bool) (map[string]any, string, error) {
	if path == "" {
		return nil, "", errors.New("empty key path")
	}

	parts := strings.Split(path, ".")
	current := raw
	for i, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok || next == nil {
			if !vivify {
				return nil, "", fmt.Errorf("no key %q in config", strings.Join(parts[:i+1], "."))
			}
			child := map[string]any{}
			current[part] = child
			current = child
			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			return nil, "", fmt.Errorf("%q is a %T, not a mapping", strings.Join(parts[:i+1], "."), next)
		}
		current = child
	}

	return current, parts[len(parts)-1], nil
}

// ParseValue interprets a CLI argument the way it would parse inside a
// YAML document, so "true", "5" and "2.5" become bool, int and float
// rather than strings.
func ParseValue(s string) any {
	var value any
	if err := yaml.Unmarshal([]byte(s), &value); err != nil {
		return s
	}
	if value == nil {
		return s
	}
	switch value.(type) {
	case bool, int, float64, string:
		return value
	default:
		// Anything structured stays a plain string; the CLI edits
		// scalars only.
		return s
	}
}
