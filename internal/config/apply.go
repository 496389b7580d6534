package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults applied by the translator when the admin config leaves a value
// unset.
const (
	// DefaultAuthenticatorClass lets any user log in and set a password
	// on first use. Sensible for small shared servers.
	DefaultAuthenticatorClass = "firstuseauthenticator.FirstUseAuthenticator"

	// DefaultTraefikAPIUsername protects traefik's admin API.
	DefaultTraefikAPIUsername = "api_admin"

	DefaultCullTimeout     = 600
	DefaultCullEvery       = 60
	DefaultCullConcurrency = 5
	DefaultCullMaxAge      = 0
)

// firstUseClass is the class name under which the first-use authenticator
// default lives.
const firstUseClass = "FirstUseAuthenticator"

// ApplyConfig translates the admin overrides into traitlet assignments on
// hub. Every recognized section maps independently; applying an empty
// Overrides produces the full set of documented defaults. The call is
// idempotent on a fresh HubConfig and never fails: unknown values are
// logged and skipped.
func ApplyConfig(overrides *Overrides, hub *HubConfig, logger zerolog.Logger) {
	if overrides == nil {
		overrides = &Overrides{}
	}

	applyLimits(overrides, hub)
	applyUserEnvironment(overrides, hub, logger)
	applyUserLists(overrides, hub)
	applyAuth(overrides, hub)
	applyTraefikAPI(overrides, hub)
	applyCullService(overrides, hub)
}

func applyLimits(overrides *Overrides, hub *HubConfig) {
	limits := overrides.Limits
	if limits == nil {
		return
	}

	if limits.Memory != "" {
		hub.Spawner.MemLimit = &limits.Memory
	}
	if limits.CPU != 0 {
		hub.Spawner.CPULimit = &limits.CPU
	}
}

func applyUserEnvironment(overrides *Overrides, hub *HubConfig, logger zerolog.Logger) {
	env := overrides.UserEnvironment
	if env == nil || env.DefaultApp == "" {
		// default_url stays unset so JupyterHub picks its own default.
		return
	}

	var url string
	switch env.DefaultApp {
	case "jupyterlab":
		url = "/lab"
	case "nteract":
		url = "/nteract"
	default:
		logger.Warn().
			Str("default_app", env.DefaultApp).
			Msg("unknown user_environment.default_app, leaving default_url unset")
		return
	}
	hub.Spawner.DefaultURL = &url
}

func applyUserLists(overrides *Overrides, hub *HubConfig) {
	users := overrides.Users
	if users == nil {
		return
	}

	hub.Authenticator.AdminUsers = users.Admin
	hub.Authenticator.AllowedUsers = users.Allowed
}

func applyAuth(overrides *Overrides, hub *HubConfig) {
	hub.JupyterHub.AuthenticatorClass = DefaultAuthenticatorClass
	// Users must be added by an admin before they can log in.
	hub.AuthClassOptions = map[string]map[string]any{
		firstUseClass: {"create_users": false},
	}

	auth := overrides.Auth
	if auth == nil {
		return
	}

	if auth.Type != "" {
		hub.JupyterHub.AuthenticatorClass = auth.Type
	}
	for class, opts := range auth.ClassOptions {
		if hub.AuthClassOptions[class] == nil {
			hub.AuthClassOptions[class] = make(map[string]any, len(opts))
		}
		for key, value := range opts {
			hub.AuthClassOptions[class][key] = value
		}
	}
}

func applyTraefikAPI(overrides *Overrides, hub *HubConfig) {
	hub.TraefikProxy.APIUsername = DefaultTraefikAPIUsername
	hub.TraefikProxy.APIPassword = ""

	api := overrides.TraefikAPI
	if api == nil {
		return
	}

	if api.Username != "" {
		hub.TraefikProxy.APIUsername = api.Username
	}
	hub.TraefikProxy.APIPassword = api.Password
}

func applyCullService(overrides *Overrides, hub *HubConfig) {
	cull := &CullService{}
	if overrides.Services != nil && overrides.Services.Cull != nil {
		cull = overrides.Services.Cull
	}

	if cull.Enabled != nil && !*cull.Enabled {
		return
	}

	prefix := InstallPrefix()
	command := []string{
		hubPython(prefix),
		cullScript(prefix),
		fmt.Sprintf("--timeout=%d", intOr(cull.Timeout, DefaultCullTimeout)),
		fmt.Sprintf("--cull-every=%d", intOr(cull.Every, DefaultCullEvery)),
		fmt.Sprintf("--concurrency=%d", intOr(cull.Concurrency, DefaultCullConcurrency)),
		fmt.Sprintf("--max-age=%d", intOr(cull.MaxAge, DefaultCullMaxAge)),
	}
	if cull.Users {
		command = append(command, "--cull-users")
	}

	hub.JupyterHub.Services = append(hub.JupyterHub.Services, HubService{
		Name:    "cull-idle",
		Admin:   true,
		Command: command,
	})
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
