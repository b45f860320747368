package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment points the XDG base directories at temporary
// directories for the duration of a test
type TestEnvironment struct {
	ConfigHome string
	StateHome  string
}

// NewTestEnvironment isolates the test from the user's config and log
// files. Tests using it must not run in parallel.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}

	// Registered before Setenv so it runs after the variables are restored.
	t.Cleanup(xdg.Reload)

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()

	return env
}

// WriteUserConfig writes the user config file for app under ConfigHome
func (e *TestEnvironment) WriteUserConfig(t *testing.T, app, name, content string) string {
	t.Helper()
	return WriteFixture(t, filepath.Join(e.ConfigHome, app), name, content)
}
