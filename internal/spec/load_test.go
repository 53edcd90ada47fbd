package spec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manual_spec.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyDocumentYieldsDefaults(t *testing.T) {
	m, err := Load(writeSpec(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), m)
	assert.Equal(t, "Manual", m.Site.Title)
	assert.Equal(t, "cosmo", m.Site.Theme)
	assert.Empty(t, m.Site.AppLink)
	assert.Empty(t, m.Pages)
}

func TestLoadAbsentSidebarYieldsSidebarDefaults(t *testing.T) {
	m, err := Load(writeSpec(t, "site:\n  title: \"Demo\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Demo", m.Site.Title)
	assert.Equal(t, "docked", m.Site.SidebarStyle)
	assert.True(t, m.Site.SidebarSearch)
	assert.Equal(t, 1, m.Site.CollapseLevel)
}

func TestLoadFullDocument(t *testing.T) {
	doc := `site:
  title: "PCR Primer Manual"
  theme: "flatly"
  app_link: "/app"
  sidebar:
    style: "floating"
    search: false
    collapse_level: 2

pages:
  - section: "Getting started"
    items:
      - path: "getting-started/install.qmd"
        title: "Install"
      - path: "getting-started/quickstart.qmd"
        title: "Quickstart"
  - section: "Reference"
    items:
      - path: "reference/api.qmd"
        title: "API"
`
	m, err := Load(writeSpec(t, doc))
	require.NoError(t, err)

	assert.Equal(t, SiteSpec{
		Title:         "PCR Primer Manual",
		Theme:         "flatly",
		AppLink:       "/app",
		SidebarStyle:  "floating",
		SidebarSearch: false,
		CollapseLevel: 2,
	}, m.Site)

	require.Len(t, m.Pages, 2)
	assert.Equal(t, "Getting started", m.Pages[0].Section)
	require.Len(t, m.Pages[0].Items, 2)
	assert.Equal(t, PageItem{Path: "getting-started/install.qmd", Title: "Install"}, m.Pages[0].Items[0])
	assert.Equal(t, PageItem{Path: "getting-started/quickstart.qmd", Title: "Quickstart"}, m.Pages[0].Items[1])
	assert.Equal(t, "Reference", m.Pages[1].Section)
}

func TestLoadSectionDefaultsAndEmptyItems(t *testing.T) {
	m, err := Load(writeSpec(t, "pages:\n  - items: []\n"))
	require.NoError(t, err)
	require.Len(t, m.Pages, 1)
	assert.Equal(t, "Section", m.Pages[0].Section)
	assert.Empty(t, m.Pages[0].Items)
}

func TestLoadMissingItemTitle(t *testing.T) {
	doc := `pages:
  - section: "Guides"
    items:
      - path: "guides/a.qmd"
`
	_, err := Load(writeSpec(t, doc))
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "title", missing.Field)
	assert.Equal(t, "Guides", missing.Section)
	assert.Equal(t, 0, missing.Index)
}

func TestLoadMissingItemPath(t *testing.T) {
	doc := `pages:
  - items:
      - title: "Install"
      - path: "b.qmd"
        title: "B"
`
	_, err := Load(writeSpec(t, doc))
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "path", missing.Field)
	assert.Equal(t, "Section", missing.Section)
}

func TestLoadBooleanCoercion(t *testing.T) {
	cases := map[string]bool{
		"true": true, "True": true, "yes": true, "on": true, "1": true,
		"false": false, "no": false, "off": false, "0": false,
	}
	for in, want := range cases {
		m, err := Load(writeSpec(t, "site:\n  sidebar:\n    search: \""+in+"\"\n"))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, m.Site.SidebarSearch, "input %q", in)
	}
}

func TestLoadBooleanCoercionRejectsGarbage(t *testing.T) {
	_, err := Load(writeSpec(t, "site:\n  sidebar:\n    search: [1, 2]\n"))
	var typeErr *FieldTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "sidebar.search", typeErr.Field)

	_, err = Load(writeSpec(t, "site:\n  sidebar:\n    search: \"maybe\"\n"))
	require.ErrorAs(t, err, &typeErr)
}

func TestLoadIntegerCoercion(t *testing.T) {
	m, err := Load(writeSpec(t, "site:\n  sidebar:\n    collapse_level: \"3\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Site.CollapseLevel)

	m, err = Load(writeSpec(t, "site:\n  sidebar:\n    collapse_level: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Site.CollapseLevel)

	_, err = Load(writeSpec(t, "site:\n  sidebar:\n    collapse_level: \"deep\"\n"))
	var typeErr *FieldTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "sidebar.collapse_level", typeErr.Field)
}

func TestLoadNullSidebarFieldsYieldDefaults(t *testing.T) {
	m, err := Load(writeSpec(t, "site:\n  sidebar:\n    search:\n    collapse_level:\n"))
	require.NoError(t, err)
	assert.True(t, m.Site.SidebarSearch)
	assert.Equal(t, 1, m.Site.CollapseLevel)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("QMANUAL_TEST_TITLE", "From Env")
	m, err := Load(writeSpec(t, "site:\n  title: \"${QMANUAL_TEST_TITLE}\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "From Env", m.Site.Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMalformedDocument(t *testing.T) {
	_, err := Load(writeSpec(t, "site: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse spec document")
}

func TestLoadIsIdempotentOverDefaults(t *testing.T) {
	// Re-loading a document that spells out the defaults must equal loading
	// an empty document.
	explicit := `site:
  title: "Manual"
  theme: "cosmo"
  sidebar:
    style: "docked"
    search: true
    collapse_level: 1
`
	m1, err := Load(writeSpec(t, explicit))
	require.NoError(t, err)
	m2, err := Load(writeSpec(t, ""))
	require.NoError(t, err)
	require.Equal(t, m2, m1)
}
