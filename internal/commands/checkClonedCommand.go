package commands

import (
	"context"

	"github.com/spf13/cobra"

	"repoclone/internal/gitrepo"
	"repoclone/internal/terminalView"
)

var checkClonedCmd = &cobra.Command{
	Use:   "check-cloned",
	Short: "Report which manifest entries are already cloned",
	Args:  cobra.NoArgs,
	RunE:  runSession(checkCloned),
}

func init() {
	rootCmd.AddCommand(checkClonedCmd)
}

func checkCloned(ctx context.Context, s *session, _ []string) error {
	outputFolder, descriptors, err := s.loadManifest()
	if err != nil {
		return err
	}

	r := s.newReportView(s.out, terminalView.CheckLabels...)
	r.Header("Checking cloned repositories:")
	inspections, err := gitrepo.NewSynchronizer(s.vcs, outputFolder, s.options()).Check(ctx, descriptors)
	for _, inspection := range inspections {
		r.Entry(terminalView.InspectionEntry(inspection))
	}
	r.Render(s.width)
	return err
}
