package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStore_Lookup(t *testing.T) {
	store := MapStore{
		"AI_PROVIDER_FORMAT": "openai",
		"GOOGLE_API_BASE":    "",
	}

	v, ok := store.Lookup("AI_PROVIDER_FORMAT")
	assert.True(t, ok)
	assert.Equal(t, "openai", v)

	// Presence is reported separately from the value.
	v, ok = store.Lookup("GOOGLE_API_BASE")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = store.Lookup("MISSING")
	assert.False(t, ok)
}

func TestDefaultStore(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	assert.Nil(t, Default())

	store := MapStore{"k": "v"}
	SetDefault(store)
	require.NotNil(t, Default())

	v, ok := Default().Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	SetDefault(nil)
	assert.Nil(t, Default())
}

func TestParseYAML(t *testing.T) {
	store, err := ParseYAML([]byte(`
AI_PROVIDER_FORMAT: openai
OPENAI_API_KEY: sk-test
VERTEX_LOCATION: us-central1
MAX_RETRIES: 3
DEBUG: true
GOOGLE_API_BASE:
`))
	require.NoError(t, err)

	v, ok := store.Lookup("AI_PROVIDER_FORMAT")
	assert.True(t, ok)
	assert.Equal(t, "openai", v)

	// Non-string scalars are stringified.
	v, _ = store.Lookup("MAX_RETRIES")
	assert.Equal(t, "3", v)
	v, _ = store.Lookup("DEBUG")
	assert.Equal(t, "true", v)

	// A key with no value is present with an empty value.
	v, ok = store.Lookup("GOOGLE_API_BASE")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestParseYAML_RejectsNestedMappings(t *testing.T) {
	_, err := ParseYAML([]byte("providers:\n  openai: sk-test\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-scalar")
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("{not yaml"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY: sk-file\n"), 0o600))

	store, err := LoadFile(path)
	require.NoError(t, err)

	v, ok := store.Lookup("OPENAI_API_KEY")
	assert.True(t, ok)
	assert.Equal(t, "sk-file", v)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSettingTableName(t *testing.T) {
	assert.Equal(t, "settings", Setting{}.TableName())
}
