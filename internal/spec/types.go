// Package spec loads and validates manual spec documents.
//
// A spec document is a small YAML file describing the site metadata and the
// page hierarchy of a Quarto manual. Loading produces an immutable
// ManualSpec with all defaults applied; nothing mutates the tree afterwards.
package spec

// SiteSpec holds site-level settings for the generated manual.
type SiteSpec struct {
	Title         string
	Theme         string
	AppLink       string // empty means no app link is configured
	SidebarStyle  string
	SidebarSearch bool
	CollapseLevel int
}

// PageItem references a single manual page by its relative path.
type PageItem struct {
	Path  string
	Title string
}

// PageSection groups pages under a navigation heading. Item order is
// meaningful: it determines navigation order.
type PageSection struct {
	Section string
	Items   []PageItem
}

// ManualSpec is the validated, default-filled manual description.
type ManualSpec struct {
	Site  SiteSpec
	Pages []PageSection
}

// Defaults applied for absent fields in the spec document.
const (
	DefaultTitle         = "Manual"
	DefaultTheme         = "cosmo"
	DefaultSidebarStyle  = "docked"
	DefaultCollapseLevel = 1
	DefaultSectionName   = "Section"
)

// Default returns the spec produced by an empty document.
func Default() *ManualSpec {
	return &ManualSpec{
		Site: SiteSpec{
			Title:         DefaultTitle,
			Theme:         DefaultTheme,
			SidebarStyle:  DefaultSidebarStyle,
			SidebarSearch: true,
			CollapseLevel: DefaultCollapseLevel,
		},
	}
}
