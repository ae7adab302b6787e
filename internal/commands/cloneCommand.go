package commands

import (
	"context"

	"github.com/spf13/cobra"

	"repoclone/internal/ext"
	"repoclone/internal/gitrepo"
	"repoclone/internal/terminalView"
)

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone every repository of the input manifest that is not present yet",
	Long: `Clones each manifest entry into <output_folder>/<name>. Entries already cloned with the
expected remote are skipped, conflicting directories are reported and left untouched, and a
failed clone does not stop the remaining entries.`,
	Args: cobra.NoArgs,
	RunE: runSession(cloneRepositories),
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}

func cloneRepositories(ctx context.Context, s *session, _ []string) error {
	outputFolder, descriptors, err := s.loadManifest()
	if err != nil {
		return err
	}

	r := s.newReportView(s.out, terminalView.SyncLabels...)
	r.Header("Cloning repositories into " + ext.ReplaceHomeDirWithTilde(outputFolder) + ":")

	synchronizer := gitrepo.NewSynchronizer(s.vcs, outputFolder, s.options())
	synchronizer.OnOutcome = func(outcome gitrepo.Outcome) {
		r.Entry(terminalView.SyncEntry(outcome))
	}
	_, err = synchronizer.Sync(ctx, descriptors)
	r.Render(s.width)
	return err
}
