package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"reswgen/internal/export"
)

const itemsYAML = `
items:
  - key: Welcome
    value: "Welcome {0}"
    comment: "#Format[String name]"
  - key: Files_One
    value: "{0} file"
  - key: Files_Other
    value: "{0} files"
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeItems(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Resources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBuildCommand(t *testing.T) {
	items := writeItems(t, itemsYAML)
	cfg := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := run(t, "build", "--config", cfg, "--items", items, "--resource", "Strings/en-US/Resources.resw",
		"--namespace", "App.Strings.en-US", "--advanced")
	require.Error(t, err, "an explicit config file must exist")

	out, err := run(t, "build", "--items", items, "--resource", "Strings/en-US/Resources.resw",
		"--namespace", "App.Strings.en-US", "--advanced", "--env-file", "")
	require.NoError(t, err)

	var cf export.ClassFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &cf))
	assert.Equal(t, "Resources", cf.Class)
	assert.Equal(t, []string{"App", "Strings"}, cf.Namespaces)
	require.Len(t, cf.Localizations, 2)
	assert.Equal(t, "Files", cf.Localizations[0].Key)
	assert.Equal(t, "Welcome", cf.Localizations[1].Key)
}

func TestBuildCommand_OutFile(t *testing.T) {
	items := writeItems(t, itemsYAML)
	outFile := filepath.Join(t.TempDir(), "gen", "model.yaml")

	_, err := run(t, "build", "--items", items, "-o", outFile, "--env-file", "")
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class: Resources")
}

func TestCheckCommand(t *testing.T) {
	good := writeItems(t, itemsYAML)

	out, err := run(t, "check", "--items", good, "--advanced", "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Resources: 2 localizations")

	bad := writeItems(t, "items:\n  - key: Broken\n    value: x\n    comment: \"#Format[Nope]\"\n")
	_, err = run(t, "check", "--items", bad, "--advanced", "--env-file", "")
	require.Error(t, err)
}

func TestNamespaceCommand(t *testing.T) {
	out, err := run(t, "namespace", "App.Strings.fr-CA")
	require.NoError(t, err)
	assert.Equal(t, "App.Strings\nlocale: fr-CA\n", out)

	out, err = run(t, "namespace", "App.Resources")
	require.NoError(t, err)
	assert.Equal(t, "App.Resources\n", out)
}
