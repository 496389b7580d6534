package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads config.yaml under the active install prefix and merges
// in secret files from the state directory. See LoadConfigFrom.
func LoadConfig(logger zerolog.Logger) (*Overrides, error) {
	return LoadConfigFrom(InstallPrefix(), logger)
}

// LoadConfigFrom builds the effective overrides for an install prefix.
//
// A missing config.yaml yields empty overrides rather than an error: a
// fresh install has no admin config yet. Secret values read from the state
// directory win over values in config.yaml, so the installer-generated
// traefik password cannot be clobbered by a stale file entry. Malformed
// YAML propagates to the caller.
func LoadConfigFrom(prefix string, logger zerolog.Logger) (*Overrides, error) {
	overrides := &Overrides{}

	path := filepath.Join(prefix, ConfigFilename)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug().Str("path", path).Msg("no admin config file, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, overrides); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	secrets, err := loadSecrets(prefix, logger)
	if err != nil {
		return nil, err
	}
	if err := mergo.Merge(overrides, secrets, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge secrets: %w", err)
	}

	return overrides, nil
}

// loadSecrets collects overrides from individual secret files in the state
// directory. A missing secret file simply contributes nothing.
func loadSecrets(prefix string, logger zerolog.Logger) (*Overrides, error) {
	overrides := &Overrides{}

	password, err := readSecretFile(filepath.Join(prefix, "state", TraefikSecretFilename))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug().Msg("no traefik API secret file")
	case err != nil:
		return nil, err
	default:
		overrides.TraefikAPI = &TraefikAPI{Password: password}
	}

	return overrides, nil
}

// readSecretFile reads a one-value-per-file secret, trimming trailing
// whitespace (editors and shell redirects love trailing newlines).
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("failed to read secret file %s: %w", path, err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

// SaveConfig writes overrides as config.yaml under the given prefix,
// creating the directory if needed. Callers should pass file-backed
// overrides, not the secret-merged result of LoadConfig.
func SaveConfig(overrides *Overrides, prefix string) error {
	data, err := yaml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(prefix, 0o755); err != nil {
		return fmt.Errorf("failed to create install prefix: %w", err)
	}

	path := filepath.Join(prefix, ConfigFilename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
