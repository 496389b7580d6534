package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Overrides is the admin-facing configuration schema parsed from
// config.yaml. Every section is optional; a nil section means "use the
// documented defaults". Keys outside this schema are ignored so that old
// binaries keep working with newer config files.
type Overrides struct {
	Limits          *Limits          `yaml:"limits,omitempty"`
	UserEnvironment *UserEnvironment `yaml:"user_environment,omitempty"`
	Users           *Users           `yaml:"users,omitempty"`
	Auth            *Auth            `yaml:"auth,omitempty"`
	TraefikAPI      *TraefikAPI      `yaml:"traefik_api,omitempty"`
	Services        *Services        `yaml:"services,omitempty"`
}

// Limits caps the resources of each single-user server.
type Limits struct {
	// Memory is a memory limit string understood by the spawner,
	// e.g. "512M" or "42G". Empty means unlimited.
	Memory string `yaml:"memory,omitempty"`

	// CPU is the number of CPU cores each user may use. Zero means
	// unlimited.
	CPU float64 `yaml:"cpu,omitempty"`
}

// UserEnvironment configures what users see when their server starts.
type UserEnvironment struct {
	// DefaultApp selects the application users land in: "jupyterlab" or
	// "nteract". Empty leaves the choice to JupyterHub.
	DefaultApp string `yaml:"default_app,omitempty"`
}

// Users lists hub users by role.
type Users struct {
	Admin   []string `yaml:"admin,omitempty"`
	Allowed []string `yaml:"allowed,omitempty"`
}

// Auth selects the authenticator class and carries arbitrary per-class
// traitlet options. In YAML the class options live next to "type":
//
//	auth:
//	  type: dummyauthenticator.DummyAuthenticator
//	  DummyAuthenticator:
//	    password: hunter2
//
// Because the class names are user-chosen, Auth needs custom YAML
// (un)marshalling; it is the only dynamic part of the schema.
type Auth struct {
	// Type is the full import path of the authenticator class.
	Type string

	// ClassOptions maps an authenticator class name to the traitlet
	// values set under it.
	ClassOptions map[string]map[string]any
}

// UnmarshalYAML pulls "type" out of the mapping and keeps every other key
// as a per-class option block.
func (a *Auth) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if t, ok := raw["type"]; ok {
		s, ok := t.(string)
		if !ok {
			return fmt.Errorf("auth.type must be a string, got %T", t)
		}
		a.Type = s
		delete(raw, "type")
	}

	if len(raw) > 0 {
		a.ClassOptions = make(map[string]map[string]any, len(raw))
	}
	for class, v := range raw {
		opts, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("auth.%s must be a mapping of traitlet options, got %T", class, v)
		}
		a.ClassOptions[class] = opts
	}
	return nil
}

// MarshalYAML is the inverse of UnmarshalYAML: type and class options are
// folded back into a single mapping.
func (a Auth) MarshalYAML() (any, error) {
	out := make(map[string]any, len(a.ClassOptions)+1)
	if a.Type != "" {
		out["type"] = a.Type
	}
	for class, opts := range a.ClassOptions {
		out[class] = opts
	}
	return out, nil
}

// TraefikAPI holds the credentials protecting traefik's admin API.
type TraefikAPI struct {
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Services configures hub-managed background services.
type Services struct {
	Cull *CullService `yaml:"cull,omitempty"`
}

// CullService configures the idle-notebook culler. Pointer fields
// distinguish "not set, use the default" from an explicit zero.
type CullService struct {
	// Enabled turns the culler off entirely when set to false.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Timeout is the idle time in seconds after which a server is culled.
	Timeout *int `yaml:"timeout,omitempty"`

	// Every is the interval in seconds between cull checks.
	Every *int `yaml:"every,omitempty"`

	// Concurrency limits how many cull operations run at once.
	Concurrency *int `yaml:"concurrency,omitempty"`

	// MaxAge culls servers older than this many seconds regardless of
	// activity. Zero disables the age check.
	MaxAge *int `yaml:"max_age,omitempty"`

	// Users also culls the hub users themselves, not just their servers.
	Users bool `yaml:"users,omitempty"`
}
