package screen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_String(t *testing.T) {
	ref := Reference{Package: "screens", Constructor: "NewHomeScreen"}
	assert.Equal(t, "screens.NewHomeScreen", ref.String())
	assert.True(t, ref.Valid())
	assert.False(t, Reference{Package: "screens"}.Valid())
	assert.False(t, Reference{Package: " ", Constructor: "X"}.Valid())
}

func TestNewRegistry_SkipsMalformed(t *testing.T) {
	registry := NewRegistry(
		Entry{Name: "home", Reference: refHome},
		Entry{Name: "home", Reference: refDetail},
		Entry{Name: "broken", Reference: Reference{Package: "screens"}},
		Entry{Name: "", Reference: refDetail},
	)

	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, []string{"home"}, registry.Names())
	assert.ElementsMatch(t, []string{"home", "broken", "(unnamed)"}, registry.Skipped())

	entry, ok := registry.Lookup("home")
	require.True(t, ok)
	assert.Equal(t, refHome, entry.Reference, "first entry wins")

	_, ok = registry.Lookup("broken")
	assert.False(t, ok)
}

func TestRegistry_NilSafe(t *testing.T) {
	var registry *Registry
	_, ok := registry.Lookup("home")
	assert.False(t, ok)
	assert.Zero(t, registry.Len())
	assert.Nil(t, registry.Names())
}

func TestParseRegistry_JSON(t *testing.T) {
	data := []byte(`{
		"home": {"package": "screens", "constructor": "NewHomeScreen"},
		"frog": {"package": "screens", "constructor": "NewFrogDetailScreen"},
		"odd": "not an object",
		"half": {"package": "screens"}
	}`)

	registry, err := ParseRegistry(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"frog", "home"}, registry.Names())
	assert.ElementsMatch(t, []string{"half", "odd"}, registry.Skipped())

	entry, ok := registry.Lookup("frog")
	require.True(t, ok)
	assert.Equal(t, "screens.NewFrogDetailScreen", entry.Reference.String())
}

func TestParseRegistry_TOML(t *testing.T) {
	data := []byte(`
[home]
package = "screens"
constructor = "NewHomeScreen"

[mystery]
package = "screens"
constructor = "NewMysteryScreen"

[empty]
`)

	registry, err := ParseRegistry(data, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "mystery"}, registry.Names())
	assert.Equal(t, []string{"empty"}, registry.Skipped())
}

func TestParseRegistry_YAML(t *testing.T) {
	data := []byte(`
home:
  package: screens
  constructor: NewHomeScreen
frog:
  package: screens
  constructor: [NewFrogDetailScreen]
empty:
`)

	registry, err := ParseRegistry(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, registry.Names())
	assert.ElementsMatch(t, []string{"empty", "frog"}, registry.Skipped())
}

func TestParseRegistry_ModuleClassAliases(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"json", `{"home": {"module": "screens", "class": "NewHomeScreen"}}`, FormatJSON},
		{"toml", "[home]\nmodule = \"screens\"\nclass = \"NewHomeScreen\"\n", FormatTOML},
		{"yaml", "home:\n  module: screens\n  class: NewHomeScreen\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := ParseRegistry([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Empty(t, registry.Skipped())

			entry, ok := registry.Lookup("home")
			require.True(t, ok)
			assert.Equal(t, Reference{Package: "screens", Constructor: "NewHomeScreen"}, entry.Reference)
		})
	}
}

func TestParseRegistry_PackageWinsOverModule(t *testing.T) {
	data := []byte(`{"home": {"package": "screens", "module": "legacy", "constructor": "NewHomeScreen", "class": "HomeScreen"}}`)

	registry, err := ParseRegistry(data, FormatJSON)
	require.NoError(t, err)
	entry, ok := registry.Lookup("home")
	require.True(t, ok)
	assert.Equal(t, "screens.NewHomeScreen", entry.Reference.String())
}

func TestParseRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"broken json", `{"home": `, FormatJSON},
		{"broken toml", `[home`, FormatTOML},
		{"broken yaml", "home: [", FormatYAML},
		{"unknown format", `{}`, "ini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := ParseRegistry([]byte(tt.data), tt.format)
			assert.Error(t, err)
			require.NotNil(t, registry, "a usable empty registry is always returned")
			assert.Zero(t, registry.Len())
		})
	}
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "screens.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"home": {"package": "screens", "constructor": "NewHomeScreen"}}`), 0o644))

	registry, err := LoadRegistry(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())

	tomlPath := filepath.Join(dir, "screens.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[home]\npackage = \"screens\"\nconstructor = \"NewHomeScreen\"\n"), 0o644))

	registry, err = LoadRegistry(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())

	registry, err = LoadRegistry(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)
	require.NotNil(t, registry)
	assert.Zero(t, registry.Len())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("screens.json"))
	assert.Equal(t, FormatTOML, FormatFromPath("/etc/frogquiz/screens.toml"))
	assert.Equal(t, FormatYAML, FormatFromPath("screens.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("screens.YAML"))
	assert.Equal(t, FormatJSON, FormatFromPath("screens"))
}
