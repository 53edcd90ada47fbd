package spec

import (
	"fmt"
	"os"
)

// exampleSpec is the starter document written by WriteExample. It shows every
// supported key with its default-ish values.
const exampleSpec = `site:
  title: "My Manual"
  theme: "cosmo"
  app_link: "/"
  sidebar:
    style: "docked"
    search: true
    collapse_level: 1

pages:
  - section: "Getting started"
    items:
      - path: "getting-started/install.qmd"
        title: "Install"
      - path: "getting-started/quickstart.qmd"
        title: "Quickstart"
`

// WriteExample writes a starter spec document with example content. An
// existing file is only replaced when force is set.
func WriteExample(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("spec document already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(exampleSpec), 0o644); err != nil {
		return fmt.Errorf("write spec document: %w", err)
	}
	return nil
}
