package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestAuth_UnmarshalYAML(t *testing.T) {
	t.Parallel()
	var overrides Overrides
	err := yaml.Unmarshal([]byte(`
auth:
  type: oauthenticator.github.GitHubOAuthenticator
  GitHubOAuthenticator:
    client_id: something
    client_secret: something-else
`), &overrides)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	auth := overrides.Auth
	if auth == nil {
		t.Fatal("Auth = nil, want parsed section")
	}
	if auth.Type != "oauthenticator.github.GitHubOAuthenticator" {
		t.Errorf("Type = %q, want GitHub authenticator", auth.Type)
	}
	if got := auth.ClassOptions["GitHubOAuthenticator"]["client_id"]; got != "something" {
		t.Errorf("client_id = %v, want %q", got, "something")
	}
}

func TestAuth_UnmarshalYAML_TypeOnly(t *testing.T) {
	t.Parallel()
	var overrides Overrides
	err := yaml.Unmarshal([]byte(`
auth:
  type: dummyauthenticator.DummyAuthenticator
`), &overrides)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if overrides.Auth.Type != "dummyauthenticator.DummyAuthenticator" {
		t.Errorf("Type = %q, want dummy authenticator", overrides.Auth.Type)
	}
	if len(overrides.Auth.ClassOptions) != 0 {
		t.Errorf("ClassOptions = %v, want empty", overrides.Auth.ClassOptions)
	}
}

func TestAuth_UnmarshalYAML_RejectsScalarClassOptions(t *testing.T) {
	t.Parallel()
	var overrides Overrides
	err := yaml.Unmarshal([]byte(`
auth:
  type: dummyauthenticator.DummyAuthenticator
  DummyAuthenticator: not-a-mapping
`), &overrides)
	if err == nil {
		t.Error("Unmarshal() error = nil, want error for scalar class options")
	}
}

func TestAuth_MarshalRoundTrip(t *testing.T) {
	t.Parallel()
	in := Overrides{
		Auth: &Auth{
			Type: "nativeauthenticator.NativeAuthenticator",
			ClassOptions: map[string]map[string]any{
				"NativeAuthenticator": {"open_signup": true},
			},
		},
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out Overrides
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if out.Auth.Type != in.Auth.Type {
		t.Errorf("Type = %q, want %q", out.Auth.Type, in.Auth.Type)
	}
	if got := out.Auth.ClassOptions["NativeAuthenticator"]["open_signup"]; got != true {
		t.Errorf("open_signup = %v, want true", got)
	}
}
