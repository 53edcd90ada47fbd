package commands

import (
	"fmt"

	"git.home.luguber.info/inful/qmanual/internal/status"
)

// StatusCmd implements the 'status' command.
type StatusCmd struct {
	Out string `short:"o" default:"manual_site" help:"Generated project directory"`
}

func (s *StatusCmd) Run(_ *Global) error {
	report, err := status.Collect(s.Out)
	if err != nil {
		return err
	}

	for _, p := range report.Pages {
		state := "written"
		if p.Stub {
			state = "stub"
		}
		fmt.Printf("%-8s %-44s headings=%d words=%d\n", state, p.Path, p.Headings, p.Words)
	}
	fmt.Printf("%d pages, %d still stubs\n", report.Total, report.Stubs)
	return nil
}
