// Package quarto invokes the external Quarto binary against a generated
// manual project. The binary is treated as opaque: this package supplies the
// project directory and interprets the exit code, relaying captured output
// on failure.
package quarto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Binary returns the quarto executable to invoke. QMANUAL_QUARTO overrides
// PATH lookup (used by tests and non-standard installs).
func Binary() string {
	if b := os.Getenv("QMANUAL_QUARTO"); b != "" {
		return b
	}
	return "quarto"
}

// Available reports whether the quarto binary can be resolved.
func Available() bool {
	_, err := exec.LookPath(Binary())
	return err == nil
}

// RenderError carries the exit status and captured streams of a failed
// quarto invocation so the caller can diagnose the tool's complaint.
type RenderError struct {
	Op       string // quarto subcommand, e.g. "render"
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("quarto %s failed in %s (exit %d)\nSTDOUT:\n%s\nSTDERR:\n%s",
		e.Op, e.Dir, e.ExitCode, e.Stdout, e.Stderr)
}

// Render runs `quarto render` against the project directory.
func Render(ctx context.Context, dir string) error {
	return run(ctx, "render", dir)
}

// Preview runs `quarto preview` against the project directory. It blocks
// until the preview server exits or ctx is canceled.
func Preview(ctx context.Context, dir string) error {
	return run(ctx, "preview", dir)
}

func run(ctx context.Context, subcommand, dir string) error {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, Binary(), subcommand, dir)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Info("Running quarto", "subcommand", subcommand, "dir", dir)
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &RenderError{
			Op:       subcommand,
			Dir:      dir,
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}
	return fmt.Errorf("run quarto %s: %w", subcommand, err)
}
