package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSetItem_CreatesIntermediateMappings(t *testing.T) {
	t.Parallel()
	raw := map[string]any{}

	if err := SetItem(raw, "services.cull.every", 10); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	got, err := GetItem(raw, "services.cull.every")
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	if got != 10 {
		t.Errorf("GetItem() = %v, want 10", got)
	}
}

func TestSetItem_OverwritesExisting(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"limits": map[string]any{"memory": "1G"}}

	if err := SetItem(raw, "limits.memory", "2G"); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	got, _ := GetItem(raw, "limits.memory")
	if got != "2G" {
		t.Errorf("limits.memory = %v, want 2G", got)
	}
}

func TestSetItem_RefusesToTraverseScalar(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"limits": "oops"}

	if err := SetItem(raw, "limits.memory", "2G"); err == nil {
		t.Error("SetItem() error = nil, want error for scalar in path")
	}
}

func TestGetItem_MissingKey(t *testing.T) {
	t.Parallel()
	raw := map[string]any{}

	if _, err := GetItem(raw, "auth.type"); err == nil {
		t.Error("GetItem() error = nil, want error for missing key")
	}
}

func TestUnsetItem(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"auth": map[string]any{"type": "x", "keep": true}}

	if err := UnsetItem(raw, "auth.type"); err != nil {
		t.Fatalf("UnsetItem() error = %v", err)
	}
	if _, err := GetItem(raw, "auth.type"); err == nil {
		t.Error("auth.type still present after UnsetItem")
	}
	if _, err := GetItem(raw, "auth.keep"); err != nil {
		t.Errorf("auth.keep removed by UnsetItem: %v", err)
	}

	if err := UnsetItem(raw, "auth.type"); err == nil {
		t.Error("UnsetItem() error = nil, want error for missing key")
	}
}

func TestAddItem(t *testing.T) {
	t.Parallel()
	raw := map[string]any{}

	if err := AddItem(raw, "users.admin", "alice"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := AddItem(raw, "users.admin", "bob"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	got, _ := GetItem(raw, "users.admin")
	if !reflect.DeepEqual(got, []any{"alice", "bob"}) {
		t.Errorf("users.admin = %v, want [alice bob]", got)
	}
}

func TestAddItem_NonList(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"users": map[string]any{"admin": "alice"}}

	if err := AddItem(raw, "users.admin", "bob"); err == nil {
		t.Error("AddItem() error = nil, want error for non-list value")
	}
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"users": map[string]any{"admin": []any{"alice", "bob"}}}

	if err := RemoveItem(raw, "users.admin", "alice"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}

	got, _ := GetItem(raw, "users.admin")
	if !reflect.DeepEqual(got, []any{"bob"}) {
		t.Errorf("users.admin = %v, want [bob]", got)
	}

	if err := RemoveItem(raw, "users.admin", "carol"); err == nil {
		t.Error("RemoveItem() error = nil, want error for absent value")
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  any
	}{
		{"true", true},
		{"false", false},
		{"10", 10},
		{"2.5", 2.5},
		{"42G", "42G"},
		{"hello world", "hello world"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseValue(tt.input); got != tt.want {
				t.Errorf("ParseValue(%q) = %v (%T), want %v (%T)", tt.input, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoadRaw_MissingFile(t *testing.T) {
	t.Parallel()
	raw, err := LoadRaw(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("LoadRaw() = %v, want empty mapping", raw)
	}
}

func TestSaveRaw_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	raw := map[string]any{
		"limits": map[string]any{"memory": "2G"},
		"users":  map[string]any{"admin": []any{"alice"}},
	}

	if err := SaveRaw(path, raw); err != nil {
		t.Fatalf("SaveRaw() error = %v", err)
	}

	loaded, err := LoadRaw(path)
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, raw) {
		t.Errorf("round trip = %v, want %v", loaded, raw)
	}
}
