package commands

import (
	"context"

	"github.com/spf13/cobra"

	"repoclone/internal/gitrepo"
	"repoclone/internal/terminalView"
)

var checkStatusCmd = &cobra.Command{
	Use:   "check-status",
	Short: "Report the working tree status of every cloned manifest entry",
	Args:  cobra.NoArgs,
	RunE:  runSession(checkStatus),
}

func init() {
	rootCmd.AddCommand(checkStatusCmd)
}

func checkStatus(ctx context.Context, s *session, _ []string) error {
	outputFolder, descriptors, err := s.loadManifest()
	if err != nil {
		return err
	}

	r := s.newReportView(s.out, terminalView.StatusLabels...)
	r.Header("Checking Git repository status:")
	reports, err := gitrepo.NewWorkingCopyManager(s.vcs, timeout).ReportStatus(ctx, descriptors, outputFolder)
	for _, report := range reports {
		r.Entry(terminalView.StatusEntry(report))
	}
	r.Render(s.width)
	return err
}
