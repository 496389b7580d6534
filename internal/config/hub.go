package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HubConfig is the target configuration object the translator populates.
// It mirrors the traitlet classes JupyterHub reads at startup: each struct
// field corresponds to a dotted attribute path like Spawner.mem_limit.
//
// Nil pointer fields mean "attribute not set at all" so JupyterHub's own
// default applies; they are omitted from the rendered traitlet map rather
// than rendered as null.
type HubConfig struct {
	Spawner       SpawnerConfig
	JupyterHub    JupyterHubConfig
	Authenticator AuthenticatorConfig
	TraefikProxy  TraefikProxyConfig

	// AuthClassOptions holds traitlets set under authenticator class
	// names, e.g. AuthClassOptions["DummyAuthenticator"]["password"].
	AuthClassOptions map[string]map[string]any
}

// SpawnerConfig maps to the Spawner traitlet class.
type SpawnerConfig struct {
	MemLimit   *string
	CPULimit   *float64
	DefaultURL *string
}

// JupyterHubConfig maps to the JupyterHub traitlet class.
type JupyterHubConfig struct {
	AuthenticatorClass string
	Services           []HubService
}

// HubService is one entry of JupyterHub.services: a subprocess the hub
// starts and supervises.
type HubService struct {
	Name    string   `yaml:"name"`
	Admin   bool     `yaml:"admin"`
	Command []string `yaml:"command"`
}

// AuthenticatorConfig maps to the Authenticator base class shared by all
// authenticator implementations.
type AuthenticatorConfig struct {
	AdminUsers   []string
	AllowedUsers []string
}

// TraefikProxyConfig maps to the TraefikTomlProxy traitlet class.
type TraefikProxyConfig struct {
	APIUsername string
	APIPassword string
}

// traefikProxyClass is the proxy implementation the distribution ships.
const traefikProxyClass = "TraefikTomlProxy"

// TraitletMap flattens the config into the class-name → traitlet → value
// mapping JupyterHub consumes. Unset pointer fields are absent from the
// result, not null.
func (c *HubConfig) TraitletMap() map[string]map[string]any {
	m := make(map[string]map[string]any)
	set := func(class, key string, value any) {
		if m[class] == nil {
			m[class] = make(map[string]any)
		}
		m[class][key] = value
	}

	if c.Spawner.MemLimit != nil {
		set("Spawner", "mem_limit", *c.Spawner.MemLimit)
	}
	if c.Spawner.CPULimit != nil {
		set("Spawner", "cpu_limit", *c.Spawner.CPULimit)
	}
	if c.Spawner.DefaultURL != nil {
		set("Spawner", "default_url", *c.Spawner.DefaultURL)
	}

	if c.JupyterHub.AuthenticatorClass != "" {
		set("JupyterHub", "authenticator_class", c.JupyterHub.AuthenticatorClass)
	}
	if len(c.JupyterHub.Services) > 0 {
		set("JupyterHub", "services", c.JupyterHub.Services)
	}

	if len(c.Authenticator.AdminUsers) > 0 {
		set("Authenticator", "admin_users", c.Authenticator.AdminUsers)
	}
	if len(c.Authenticator.AllowedUsers) > 0 {
		set("Authenticator", "allowed_users", c.Authenticator.AllowedUsers)
	}

	set(traefikProxyClass, "traefik_api_username", c.TraefikProxy.APIUsername)
	set(traefikProxyClass, "traefik_api_password", c.TraefikProxy.APIPassword)

	for class, opts := range c.AuthClassOptions {
		for key, value := range opts {
			set(class, key, value)
		}
	}

	return m
}

// WriteHubConfig renders the traitlet map as YAML at path, creating parent
// directories as needed.
func WriteHubConfig(c *HubConfig, path string) error {
	data, err := yaml.Marshal(c.TraitletMap())
	if err != nil {
		return fmt.Errorf("failed to marshal hub config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write hub config: %w", err)
	}

	return nil
}
