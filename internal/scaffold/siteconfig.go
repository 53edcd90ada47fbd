package scaffold

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/qmanual/internal/spec"
)

// Quarto project configuration model. Struct field order mirrors the emitted
// _quarto.yml, and yaml.v3 preserves it, so output is deterministic.
type quartoConfig struct {
	Project quartoProject `yaml:"project"`
	Website quartoWebsite `yaml:"website"`
	Format  quartoFormat  `yaml:"format"`
}

type quartoProject struct {
	Type string `yaml:"type"`
}

type quartoWebsite struct {
	Title          string        `yaml:"title"`
	ReaderMode     bool          `yaml:"reader-mode"`
	PageNavigation bool          `yaml:"page-navigation"`
	Sidebar        quartoSidebar `yaml:"sidebar"`
	Navbar         *quartoNavbar `yaml:"navbar,omitempty"`
}

type quartoSidebar struct {
	Style         string     `yaml:"style"`
	Search        bool       `yaml:"search"`
	CollapseLevel int        `yaml:"collapse-level"`
	Contents      []navEntry `yaml:"contents"`
}

// navEntry is either a page link (href/text) or a nested section block
// (section/contents).
type navEntry struct {
	Href     string     `yaml:"href,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Section  string     `yaml:"section,omitempty"`
	Contents []navEntry `yaml:"contents,omitempty"`
}

type quartoNavbar struct {
	Right []navEntry `yaml:"right"`
}

type quartoFormat struct {
	HTML quartoHTML `yaml:"html"`
}

type quartoHTML struct {
	TOC   bool   `yaml:"toc"`
	Theme string `yaml:"theme"`
}

// RenderSiteConfig produces the _quarto.yml document for a manual spec. The
// sidebar lists the home page first, then one section block per declared
// section, in declaration order. The "App" navbar link is emitted only when
// an app link is configured.
func RenderSiteConfig(m *spec.ManualSpec) ([]byte, error) {
	contents := []navEntry{{Href: HomePageName, Text: "Home"}}
	for _, sec := range m.Pages {
		entry := navEntry{Section: sec.Section}
		for _, item := range sec.Items {
			entry.Contents = append(entry.Contents, navEntry{Href: item.Path, Text: item.Title})
		}
		contents = append(contents, entry)
	}

	cfg := quartoConfig{
		Project: quartoProject{Type: "website"},
		Website: quartoWebsite{
			Title:          m.Site.Title,
			ReaderMode:     true,
			PageNavigation: true,
			Sidebar: quartoSidebar{
				Style:         m.Site.SidebarStyle,
				Search:        m.Site.SidebarSearch,
				CollapseLevel: m.Site.CollapseLevel,
				Contents:      contents,
			},
		},
		Format: quartoFormat{HTML: quartoHTML{TOC: true, Theme: m.Site.Theme}},
	}
	if m.Site.AppLink != "" {
		cfg.Website.Navbar = &quartoNavbar{Right: []navEntry{{Href: m.Site.AppLink, Text: "App"}}}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("marshal quarto config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal quarto config: %w", err)
	}
	return buf.Bytes(), nil
}
