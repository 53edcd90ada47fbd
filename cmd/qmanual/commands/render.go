package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/qmanual/internal/quarto"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Out string `short:"o" default:"manual_site" help:"Generated project directory"`
}

func (r *RenderCmd) Run(_ *Global) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := quarto.Render(ctx, r.Out); err != nil {
		return err
	}
	fmt.Printf("rendered: %s (see _site/)\n", r.Out)
	return nil
}

// PreviewCmd implements the 'preview' command. It blocks until the preview
// server exits or the process is interrupted.
type PreviewCmd struct {
	Out string `short:"o" default:"manual_site" help:"Generated project directory"`
}

func (p *PreviewCmd) Run(_ *Global) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return quarto.Preview(ctx, p.Out)
}
