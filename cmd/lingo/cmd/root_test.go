package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the given arguments and captures its
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeLocales lays out a small locale directory with an en base and a
// partially translated de.
func writeLocales(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "de"), 0o755))

	enApp := `{
	"title": "Dashboard",
	"greeting": "Hello, {{name}}!",
	"items_one": "{{count}} item",
	"items_other": "{{count}} items"
}`
	deApp := `{
	"title": "Übersicht",
	"greeting": "Hallo, {{name}}!",
	"extra": "Extra"
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "app.json"), []byte(enApp), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de", "app.json"), []byte(deApp), 0o644))
	return dir
}
