package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"repoclone/internal/color"
	"repoclone/internal/gitrepo"
	"repoclone/internal/manifest"
	"repoclone/internal/terminalView"
)

var extractCmd = &cobra.Command{
	Use:   "extract <root> [output-file]",
	Short: "Write a manifest of the repositories found under a folder",
	Long: `Walks <root> and records every repository below it, named by its path relative to
<root>, with the URL of its remote. The manifest is written to output-file (YAML when it
ends in .yaml or .yml) or, without one, printed as JSON to stdout.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSession(extractRepositories),
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extractRepositories(ctx context.Context, s *session, args []string) error {
	root := args[0]
	outputFile := ""
	if len(args) > 1 {
		outputFile = args[1]
	}

	// Without an output file stdout carries the manifest, so the report goes to stderr.
	reportOut := s.out
	if outputFile == "" {
		reportOut = s.errOut
	}
	r := s.newReportView(reportOut, terminalView.ExtractLabels...)
	r.Header(fmt.Sprintf("Extracting repositories from %s:", root))

	result, err := gitrepo.NewWorkingCopyManager(s.vcs, timeout).ExtractManifest(ctx, root)
	for _, descriptor := range result.Descriptors {
		r.Entry(terminalView.ExtractedEntry(descriptor))
	}
	for _, failure := range result.Skipped {
		r.Entry(terminalView.ExtractSkippedEntry(failure))
	}
	if err != nil {
		r.Render(s.width)
		return err
	}

	if outputFile == "" {
		err = manifest.Encode(s.out, manifest.FormatJSON, result.Descriptors)
	} else if err = manifest.Write(outputFile, result.Descriptors); err == nil {
		fmt.Fprintln(reportOut, color.FgGreen("Repositories extracted and saved to %s.", outputFile))
	}
	r.Render(s.width)
	return err
}
