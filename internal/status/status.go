// Package status inspects a generated manual project and reports writing
// progress: which pages are still auto-generated stubs and how much content
// the written ones carry.
package status

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/qmanual/internal/frontmatter"
	"git.home.luguber.info/inful/qmanual/internal/scaffold"
)

// PageStatus describes a single .qmd file in a generated manual.
type PageStatus struct {
	Path     string // relative to the manual root, slash-separated
	Title    string
	Headings int
	Words    int
	Stub     bool // still carries the generated placeholder marker
}

// Report summarizes the state of a generated manual.
type Report struct {
	Pages []PageStatus
	Total int
	Stubs int
}

// Collect scans dir for .qmd pages and builds a Report. Rendered output
// (_site) and hidden directories are skipped. Pages are ordered by relative
// path for stable output.
func Collect(dir string) (*Report, error) {
	var report Report
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if d.Name() == "_site" || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".qmd") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		page, err := inspect(path, rel)
		if err != nil {
			return err
		}
		report.Pages = append(report.Pages, *page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan manual directory: %w", err)
	}

	sort.Slice(report.Pages, func(i, j int) bool { return report.Pages[i].Path < report.Pages[j].Path })
	report.Total = len(report.Pages)
	for _, p := range report.Pages {
		if p.Stub {
			report.Stubs++
		}
	}
	return &report, nil
}

func inspect(path, rel string) (*PageStatus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields, body, _, err := frontmatter.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter of %s: %w", rel, err)
	}

	page := &PageStatus{
		Path: filepath.ToSlash(rel),
		Stub: strings.Contains(body, scaffold.StubMarker),
	}
	if title, ok := fields["title"].(string); ok {
		page.Title = title
	}

	source := []byte(body)
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(source))
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*gmast.Heading); ok {
				page.Headings++
			}
		}
		return gmast.WalkContinue, nil
	})
	page.Words = len(strings.Fields(body))
	return page, nil
}
