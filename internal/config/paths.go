package config

import (
	"os"
	"path/filepath"
)

// DefaultInstallPrefix is where the distribution lives unless
// TLJH_INSTALL_PREFIX says otherwise.
const DefaultInstallPrefix = "/opt/tljh"

// installPrefixEnv overrides the install prefix, mainly for tests and
// development checkouts.
const installPrefixEnv = "TLJH_INSTALL_PREFIX"

// ConfigFilename is the admin-facing configuration file under the install
// prefix.
const ConfigFilename = "config.yaml"

// TraefikSecretFilename holds the traefik API password, one value per file,
// written by the installer into the state directory.
const TraefikSecretFilename = "traefik-api.secret"

// HubConfigFilename is the generated traitlet configuration consumed by
// JupyterHub at startup.
const HubConfigFilename = "jupyterhub_config.yaml"

// InstallPrefix returns the active install prefix.
func InstallPrefix() string {
	if prefix := os.Getenv(installPrefixEnv); prefix != "" {
		return prefix
	}
	return DefaultInstallPrefix
}

// ConfigPath returns the path of the admin-facing config file.
func ConfigPath() string {
	return filepath.Join(InstallPrefix(), ConfigFilename)
}

// StatePath returns the state directory, which holds secrets and generated
// files that survive upgrades.
func StatePath() string {
	return filepath.Join(InstallPrefix(), "state")
}

// HubConfigPath returns the default output path for the generated hub
// configuration.
func HubConfigPath() string {
	return filepath.Join(StatePath(), HubConfigFilename)
}

// hubPython is the Python interpreter of the hub environment, used to run
// hub-side helper scripts like the idle culler.
func hubPython(prefix string) string {
	return filepath.Join(prefix, "hub", "bin", "python3")
}

// cullScript is the idle-culling script shipped with the hub environment.
func cullScript(prefix string) string {
	return filepath.Join(prefix, "hub", "bin", "cull_idle_servers.py")
}
