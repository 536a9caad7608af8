package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"reswgen/internal/builder"
	"reswgen/internal/resw"
)

func buildSample(t *testing.T) *ClassFile {
	t.Helper()

	items := []resw.Item{
		{Key: "AppName", Value: "Contoso"},
		{Key: "Footer", Value: "{0} - {1} - {2}", Comment: `#Format["(c)", YEAR, (AppName)]`},
		{Key: "Files_One", Value: "{0} file", Comment: "#FormatNet[Plural Int count]"},
		{Key: "Files_Other", Value: "{0} files"},
		{Key: "Files_None", Value: "No files"},
		{Key: "Greeting_Variant1", Value: "Hello Sir"},
	}

	c := builder.New().Parse("Resources.resw", items, "App.Strings.de-DE", true)

	return Class(c)
}

func TestClass(t *testing.T) {
	cf := buildSample(t)

	assert.Equal(t, SchemaVersion, cf.Version)
	assert.Equal(t, "Resources", cf.Class)
	assert.Equal(t, []string{"App", "Strings"}, cf.Namespaces)
	assert.True(t, cf.RequiresHelperLibrary)
	require.Len(t, cf.Localizations, 4)

	files := cf.Localizations[0]
	assert.Equal(t, "Files", files.Key)
	assert.Equal(t, "plural", files.Kind)
	assert.True(t, files.DotNetFormatting)
	assert.True(t, files.SupportNoneState)
	assert.True(t, files.HasPlaceholders)
	assert.Equal(t, "count", files.PluralParameter)
	assert.Equal(t, []ParameterEntry{{Kind: KindFunction, Type: "Int", Name: "count"}}, files.Parameters)
	assert.Empty(t, files.ExtraParameters)

	greeting := cf.Localizations[1]
	assert.Equal(t, "variant", greeting.Kind)
	assert.Equal(t, "variantId", greeting.VariantParameter)
	assert.False(t, greeting.HasPlaceholders)
	assert.Equal(t, []ParameterEntry{{Kind: KindFunction, Type: "Long", Name: "variantId", VariantID: true}},
		greeting.ExtraParameters)

	footer := cf.Localizations[3]
	assert.Equal(t, "Footer", footer.Key)
	assert.True(t, footer.HasPlaceholders)
	assert.False(t, cf.Localizations[2].HasPlaceholders)
	assert.Equal(t, []ParameterEntry{
		{Kind: KindLiteral, Value: "(c)"},
		{Kind: KindMacro, Value: "YEAR"},
		{Kind: KindStringRef, Value: "AppName"},
	}, footer.Parameters)
}

func TestClassYAML(t *testing.T) {
	c := builder.New().Parse("Resources.resw", []resw.Item{{Key: "Title", Value: "Home"}}, "App", false)

	data, err := ClassYAML(c)
	require.NoError(t, err)

	var decoded ClassFile
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *Class(c), decoded)
	assert.Contains(t, string(data), "resource_file: Resources")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "model.yaml")

	require.NoError(t, WriteFile(path, []byte("class: X\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class: X\n", string(data))
}
