package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExampleProducesLoadableSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manual_spec.yml")
	require.NoError(t, WriteExample(path, false))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Manual", m.Site.Title)
	assert.Equal(t, "/", m.Site.AppLink)
	require.Len(t, m.Pages, 1)
	assert.Len(t, m.Pages[0].Items, 2)
}

func TestWriteExampleRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manual_spec.yml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  title: mine\n"), 0o644))

	err := WriteExample(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, WriteExample(path, true))
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Manual", m.Site.Title)
}
