package config

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
)

// memLimitRegex matches spawner memory limit strings like "512M" or "4G".
var memLimitRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?[KMGT]?$`)

// Authenticator choices offered by the wizard. Admins wanting anything
// else can set auth.type directly with tljh-config.
const (
	authFirstUse = DefaultAuthenticatorClass
	authDummy    = "dummyauthenticator.DummyAuthenticator"
	authGitHub   = "oauthenticator.github.GitHubOAuthenticator"
	authNative   = "nativeauthenticator.NativeAuthenticator"
)

// WizardResult holds the admin's choices from the init wizard.
type WizardResult struct {
	AuthType    string
	MemoryLimit string
	DefaultApp  string
	CullEnabled bool
}

// RunWizard walks the admin through an initial config.yaml. Only the
// handful of choices every deployment faces are asked; everything else
// keeps its documented default.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		AuthType:    authFirstUse,
		CullEnabled: true,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Authenticator").
				Description("How users prove who they are").
				Options(
					huh.NewOption("First-use (password set on first login)", authFirstUse),
					huh.NewOption("Dummy (shared password, testing only)", authDummy),
					huh.NewOption("GitHub OAuth", authGitHub),
					huh.NewOption("Native (signup with approval)", authNative),
				).
				Value(&result.AuthType),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Per-user memory limit (optional)").
				Description("e.g. 512M or 2G. Leave empty for no limit.").
				Placeholder("2G").
				Value(&result.MemoryLimit).
				Validate(validateMemoryLimit),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default application").
				Description("What users see when their server starts").
				Options(
					huh.NewOption("Classic notebook (JupyterHub default)", ""),
					huh.NewOption("JupyterLab", "jupyterlab"),
					huh.NewOption("nteract", "nteract"),
				).
				Value(&result.DefaultApp),
		),

		huh.NewGroup(
			huh.NewConfirm().
				Title("Cull idle user servers?").
				Description("Stops notebook servers idle for more than 10 minutes").
				Value(&result.CullEnabled),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToOverrides converts the wizard result into the minimal Overrides that
// expresses it. Choices matching a documented default are left out so the
// generated config.yaml stays small.
func (r *WizardResult) ToOverrides() *Overrides {
	overrides := &Overrides{}

	if r.AuthType != "" && r.AuthType != DefaultAuthenticatorClass {
		overrides.Auth = &Auth{Type: r.AuthType}
	}
	if r.MemoryLimit != "" {
		overrides.Limits = &Limits{Memory: r.MemoryLimit}
	}
	if r.DefaultApp != "" {
		overrides.UserEnvironment = &UserEnvironment{DefaultApp: r.DefaultApp}
	}
	if !r.CullEnabled {
		enabled := false
		overrides.Services = &Services{Cull: &CullService{Enabled: &enabled}}
	}

	return overrides
}

func validateMemoryLimit(s string) error {
	if s == "" {
		return nil
	}
	if !memLimitRegex.MatchString(s) {
		return fmt.Errorf("must be a number with an optional K/M/G/T suffix, e.g. 2G")
	}
	return nil
}
