package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/qmanual/internal/spec"
)

// Fixed filenames at the root of a generated project.
const (
	SiteConfigName = "_quarto.yml"
	HomePageName   = "index.qmd"
)

// Generator materializes a manual project on disk.
type Generator struct {
	spec   *spec.ManualSpec
	outDir string
}

// New creates a generator for the given spec and output directory.
func New(m *spec.ManualSpec, outDir string) *Generator {
	return &Generator{spec: m, outDir: filepath.Clean(outDir)}
}

// Generate writes the site configuration, home page, and one stub page per
// declared item.
//
// The site configuration is a pure function of the spec and is always
// rewritten. The home page and stub pages are written only when absent or
// when overwrite is set, so hand-edited content survives regeneration.
// Failures propagate immediately; files written before a failing write
// remain on disk.
func (g *Generator) Generate(overwrite bool) error {
	if err := os.MkdirAll(g.outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cfg, err := RenderSiteConfig(g.spec)
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(g.outDir, SiteConfigName)
	if err := os.WriteFile(cfgPath, cfg, 0o644); err != nil {
		return fmt.Errorf("write site config: %w", err)
	}
	slog.Debug("Wrote site configuration", "path", cfgPath)

	home, err := RenderHomePage(g.spec)
	if err != nil {
		return err
	}
	if err := g.writeFile(HomePageName, home, overwrite); err != nil {
		return err
	}

	for _, sec := range g.spec.Pages {
		for _, item := range sec.Items {
			page, err := RenderPage(item.Title, sec.Section, item.Path)
			if err != nil {
				return err
			}
			if err := g.writeFile(item.Path, page, overwrite); err != nil {
				return err
			}
		}
	}

	slog.Info("Manual project generated", "output", g.outDir, "sections", len(g.spec.Pages))
	return nil
}

// writeFile writes content at relativePath under the output directory,
// creating parent directories as needed. Existing files are skipped unless
// overwrite is set. The path must stay under the output directory.
func (g *Generator) writeFile(relativePath, content string, overwrite bool) error {
	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("page path %q escapes the output directory", relativePath)
	}
	fullPath := filepath.Join(g.outDir, cleanRel)

	if !overwrite {
		if _, err := os.Stat(fullPath); err == nil {
			slog.Debug("Skipping existing file", "path", fullPath)
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", fullPath, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return fmt.Errorf("create page directory: %w", err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fullPath, err)
	}
	slog.Debug("Wrote file", "path", fullPath)
	return nil
}
