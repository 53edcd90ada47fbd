package commands

import (
	"fmt"

	"git.home.luguber.info/inful/qmanual/internal/scaffold"
	"git.home.luguber.info/inful/qmanual/internal/spec"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Spec      string `short:"s" default:"manual_spec.yml" help:"Path to the manual spec document"`
	Out       string `short:"o" default:"manual_site" help:"Output directory for the generated project"`
	Overwrite bool   `help:"Overwrite existing home and stub pages"`
}

func (i *InitCmd) Run(_ *Global) error {
	return RunInit(i.Spec, i.Out, i.Overwrite)
}

// RunInit loads a spec document and materializes the manual project.
func RunInit(specPath, outDir string, overwrite bool) error {
	m, err := spec.Load(specPath)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}
	if err := scaffold.New(m, outDir).Generate(overwrite); err != nil {
		return err
	}
	fmt.Printf("generated: %s\n", outDir)
	return nil
}

// InitSpecCmd implements the 'init-spec' command.
type InitSpecCmd struct {
	Path  string `arg:"" optional:"" default:"manual_spec.yml" help:"Where to write the starter spec document"`
	Force bool   `help:"Overwrite an existing spec document"`
}

func (i *InitSpecCmd) Run(_ *Global) error {
	if err := spec.WriteExample(i.Path, i.Force); err != nil {
		return err
	}
	fmt.Printf("wrote starter spec: %s\n", i.Path)
	return nil
}
