package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/qmanual/internal/quarto"
	"git.home.luguber.info/inful/qmanual/internal/watch"
)

// WatchCmd implements the 'watch' command: keep the generated project in
// sync with the spec document until interrupted.
type WatchCmd struct {
	Spec     string        `short:"s" default:"manual_spec.yml" help:"Path to the manual spec document"`
	Out      string        `short:"o" default:"manual_site" help:"Output directory for the generated project"`
	Render   bool          `help:"Run quarto render after each regeneration"`
	Debounce time.Duration `default:"500ms" help:"Quiet period before regenerating after a change"`
}

func (w *WatchCmd) Run(_ *Global) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Regeneration never overwrites hand-edited pages; a failing reload is
	// logged and watching continues so the user can fix the document.
	regenerate := func() {
		if err := RunInit(w.Spec, w.Out, false); err != nil {
			slog.Error("Regeneration failed", "error", err)
			return
		}
		if w.Render {
			if err := quarto.Render(ctx, w.Out); err != nil {
				slog.Error("Render failed", "error", err)
			}
		}
	}

	// Generate once up front so the watcher starts from a consistent tree.
	regenerate()

	watcher, err := watch.New(w.Spec, w.Debounce, regenerate)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping watch")
	return nil
}
