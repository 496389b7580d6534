package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string { return &s }

func TestTraitletMap_OmitsUnsetAttributes(t *testing.T) {
	t.Parallel()
	hub := &HubConfig{}
	hub.JupyterHub.AuthenticatorClass = DefaultAuthenticatorClass

	m := hub.TraitletMap()

	if _, ok := m["Spawner"]; ok {
		t.Errorf("Spawner section present = %v, want absent when nothing is set", m["Spawner"])
	}
	if got := m["JupyterHub"]["authenticator_class"]; got != DefaultAuthenticatorClass {
		t.Errorf("authenticator_class = %v, want %q", got, DefaultAuthenticatorClass)
	}
}

func TestTraitletMap_SpawnerAttributes(t *testing.T) {
	t.Parallel()
	cpu := 2.0
	hub := &HubConfig{
		Spawner: SpawnerConfig{
			MemLimit:   strPtr("42G"),
			CPULimit:   &cpu,
			DefaultURL: strPtr("/lab"),
		},
	}

	want := map[string]any{
		"mem_limit":   "42G",
		"cpu_limit":   2.0,
		"default_url": "/lab",
	}
	if got := hub.TraitletMap()["Spawner"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Spawner = %v, want %v", got, want)
	}
}

func TestTraitletMap_AuthClassOptionsFlattened(t *testing.T) {
	t.Parallel()
	hub := &HubConfig{
		AuthClassOptions: map[string]map[string]any{
			"DummyAuthenticator": {"password": "test"},
		},
	}

	m := hub.TraitletMap()
	if got := m["DummyAuthenticator"]["password"]; got != "test" {
		t.Errorf("DummyAuthenticator.password = %v, want %q", got, "test")
	}
}

func TestTraitletMap_TraefikProxyAlwaysPresent(t *testing.T) {
	t.Parallel()
	hub := &HubConfig{}
	hub.TraefikProxy.APIUsername = DefaultTraefikAPIUsername

	m := hub.TraitletMap()
	if got := m["TraefikTomlProxy"]["traefik_api_username"]; got != "api_admin" {
		t.Errorf("traefik_api_username = %v, want api_admin", got)
	}
	if got := m["TraefikTomlProxy"]["traefik_api_password"]; got != "" {
		t.Errorf("traefik_api_password = %v, want empty string", got)
	}
}

func TestWriteHubConfig(t *testing.T) {
	t.Parallel()
	hub := &HubConfig{}
	ApplyConfig(&Overrides{Limits: &Limits{Memory: "2G"}}, hub, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "state", "jupyterhub_config.yaml")
	if err := WriteHubConfig(hub, path); err != nil {
		t.Fatalf("WriteHubConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated config: %v", err)
	}

	var rendered map[string]map[string]any
	if err := yaml.Unmarshal(data, &rendered); err != nil {
		t.Fatalf("generated config is not valid YAML: %v", err)
	}

	if got := rendered["Spawner"]["mem_limit"]; got != "2G" {
		t.Errorf("rendered Spawner.mem_limit = %v, want 2G", got)
	}
	if got := rendered["JupyterHub"]["authenticator_class"]; got != DefaultAuthenticatorClass {
		t.Errorf("rendered authenticator_class = %v, want default", got)
	}
}
