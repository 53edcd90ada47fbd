package spec

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Raw document shapes. Pointer fields distinguish absent keys from zero
// values so the defaulting pass stays explicit.
type rawDocument struct {
	Site  *rawSite     `yaml:"site"`
	Pages []rawSection `yaml:"pages"`
}

type rawSite struct {
	Title   *string     `yaml:"title"`
	Theme   *string     `yaml:"theme"`
	AppLink *string     `yaml:"app_link"`
	Sidebar *rawSidebar `yaml:"sidebar"`
}

type rawSidebar struct {
	Style         *string   `yaml:"style"`
	Search        yaml.Node `yaml:"search"`
	CollapseLevel yaml.Node `yaml:"collapse_level"`
}

type rawSection struct {
	Section *string   `yaml:"section"`
	Items   []rawItem `yaml:"items"`
}

type rawItem struct {
	Path  *string `yaml:"path"`
	Title *string `yaml:"title"`
}

// Load reads a spec document and returns the validated, default-filled
// manual spec. An empty document yields Default(). Environment variable
// references (${VAR}) in the document are expanded before parsing.
func Load(path string) (*ManualSpec, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec document: %w", err)
	}

	var raw rawDocument
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return nil, fmt.Errorf("parse spec document %s: %w", path, err)
	}
	return build(&raw)
}

// build applies defaults and validation in a single pass over the raw
// document.
func build(raw *rawDocument) (*ManualSpec, error) {
	out := Default()

	if s := raw.Site; s != nil {
		if s.Title != nil {
			out.Site.Title = *s.Title
		}
		if s.Theme != nil {
			out.Site.Theme = *s.Theme
		}
		if s.AppLink != nil {
			out.Site.AppLink = *s.AppLink
		}
		if sb := s.Sidebar; sb != nil {
			if sb.Style != nil {
				out.Site.SidebarStyle = *sb.Style
			}
			search, err := coerceBool(sb.Search, "sidebar.search", true)
			if err != nil {
				return nil, err
			}
			out.Site.SidebarSearch = search

			level, err := coerceInt(sb.CollapseLevel, "sidebar.collapse_level", DefaultCollapseLevel)
			if err != nil {
				return nil, err
			}
			out.Site.CollapseLevel = level
		}
	}

	for _, sec := range raw.Pages {
		ps := PageSection{Section: DefaultSectionName}
		if sec.Section != nil {
			ps.Section = *sec.Section
		}
		for i, item := range sec.Items {
			if item.Path == nil {
				return nil, &MissingFieldError{Field: "path", Section: ps.Section, Index: i}
			}
			if item.Title == nil {
				return nil, &MissingFieldError{Field: "title", Section: ps.Section, Index: i}
			}
			ps.Items = append(ps.Items, PageItem{Path: *item.Path, Title: *item.Title})
		}
		out.Pages = append(out.Pages, ps)
	}

	return out, nil
}

// coerceBool maps a YAML node to a boolean. Accepted representations:
// YAML booleans, the strings true/false/yes/no/on/off (case-insensitive),
// and the integers 1/0. Absent or null nodes yield the default.
func coerceBool(n yaml.Node, field string, def bool) (bool, error) {
	if n.IsZero() || n.Tag == "!!null" {
		return def, nil
	}
	switch n.Tag {
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err == nil {
			return v, nil
		}
	case "!!str", "!!int":
		switch strings.ToLower(strings.TrimSpace(n.Value)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
	}
	return false, &FieldTypeError{Field: field, Value: n.Value, Want: "boolean"}
}

// coerceInt maps a YAML node to an integer. Accepted representations: YAML
// integers and base-10 integer strings. Absent or null nodes yield the
// default.
func coerceInt(n yaml.Node, field string, def int) (int, error) {
	if n.IsZero() || n.Tag == "!!null" {
		return def, nil
	}
	switch n.Tag {
	case "!!int":
		var v int
		if err := n.Decode(&v); err == nil {
			return v, nil
		}
	case "!!str":
		if v, err := strconv.Atoi(strings.TrimSpace(n.Value)); err == nil {
			return v, nil
		}
	}
	return 0, &FieldTypeError{Field: field, Value: n.Value, Want: "integer"}
}

// loadEnvFiles overlays .env/.env.local into the process environment without
// overriding variables that are already set. Missing files are not an error.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			slog.Debug("Loaded environment variables", "file", name)
			return
		}
	}
}
