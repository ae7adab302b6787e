package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"repoclone/internal/appConfig"
	"repoclone/internal/gitrepo"
	logger "repoclone/internal/log"
	"repoclone/internal/manifest"
	"repoclone/internal/terminalView"
	"repoclone/internal/vcs"
	"repoclone/internal/view"
)

// session carries what every action needs: the config store, the backend and the console.
type session struct {
	store  appConfig.Store
	vcs    gitrepo.VCS
	out    io.Writer
	errOut io.Writer
	width  int
}

func newSession(cmd *cobra.Command) (*session, error) {
	backend, err := vcs.New(backendName, remoteName)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	return &session{
		store:  appConfig.ResolveStore(configPath),
		vcs:    backend,
		out:    out,
		errOut: cmd.ErrOrStderr(),
		width:  terminalWidth(out),
	}, nil
}

func (s *session) options() gitrepo.Options {
	options := gitrepo.Options{QueryTimeout: timeout, CloneTimeout: timeout}
	if existenceOnly {
		options.Policy = gitrepo.PolicyExistenceOnly
	}
	return options
}

// loadManifest resolves the output folder and the descriptors of the configured input manifest.
func (s *session) loadManifest() (string, []manifest.Descriptor, error) {
	config, err := s.store.Load()
	if err != nil {
		return "", nil, err
	}
	outputFolder, err := s.store.RequireOutputFolder(config)
	if err != nil {
		return "", nil, err
	}
	inputFile, err := s.store.RequireInputJSONFile(config)
	if err != nil {
		return "", nil, err
	}
	descriptors, err := manifest.Load(inputFile)
	if err != nil {
		return "", nil, err
	}
	logger.Log.Infof("Loaded %d repositories from %s", len(descriptors), inputFile)
	return outputFolder, descriptors, nil
}

func (s *session) newReportView(out io.Writer, labels ...string) *terminalView.ReportView {
	vm := terminalView.NewReportViewModel(logger.GetLogFilePath(), labels...)
	return terminalView.NewReportView(vm, out, s.width, view.NewTimeElapsedView(time.Now(), out, time.Since))
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth is zero when w is not a terminal, which disables truncation.
func terminalWidth(w io.Writer) int {
	if !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0
	}
	return width
}

func runSession(action func(ctx context.Context, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return action(cmd.Context(), s, args)
	}
}
