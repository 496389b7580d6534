package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// captureOutput captures stdout produced by f.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// setupPrefix points the install prefix at a temp directory and returns
// it, optionally seeding a config.yaml.
func setupPrefix(t *testing.T, configYAML string) string {
	t.Helper()
	prefix := t.TempDir()
	t.Setenv("TLJH_INSTALL_PREFIX", prefix)

	if configYAML != "" {
		path := filepath.Join(prefix, "config.yaml")
		if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
			t.Fatalf("failed to seed config: %v", err)
		}
	}
	return prefix
}
