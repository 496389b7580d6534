// Package config implements the configuration layer of The Littlest
// JupyterHub.
//
// Admins describe their hub in a small config.yaml (memory limits,
// authenticator, default user application, proxy credentials, idle-culler
// settings). This package loads that file, merges in secret files from the
// state directory, and translates the result into the verbose traitlet
// configuration JupyterHub consumes at startup.
//
// The [Overrides] struct is the user-facing schema. [ApplyConfig] is the
// translator: it populates a [HubConfig] with documented defaults for
// everything the admin left unset. The dotted-path helpers (SetItem,
// GetItem, ...) back the tljh-config CLI, which edits the raw YAML mapping
// without going through the typed schema.
package config
