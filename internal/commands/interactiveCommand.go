package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"repoclone/internal/color"
	logger "repoclone/internal/log"
)

const actionPrompt = "Select an action (clone/set-output/set-input/check-cloned/extract/check-status/quit): "

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for actions until quit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.interact(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask prints question and reads one trimmed line. ok is false once input is exhausted.
func (p prompter) ask(question string) (answer string, ok bool) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

// interact runs the menu loop. Errors of a single action are printed and the loop goes on;
// it ends on quit, end of input or cancellation.
func (s *session) interact(ctx context.Context, in io.Reader) error {
	p := prompter{scanner: bufio.NewScanner(in), out: s.out}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		action, ok := p.ask(actionPrompt)
		if !ok {
			return nil
		}

		var err error
		switch action {
		case "clone":
			err = cloneRepositories(ctx, s, nil)
		case "set-output":
			if dir, ok := p.ask("Enter the new output folder path: "); ok {
				err = setOutputFolder(ctx, s, []string{dir})
			}
		case "set-input":
			if file, ok := p.ask("Enter the new input JSON file path: "); ok {
				err = setInputFile(ctx, s, []string{file})
			}
		case "check-cloned":
			err = checkCloned(ctx, s, nil)
		case "extract":
			root, ok := p.ask("Enter the output folder path containing Git repositories: ")
			if !ok {
				continue
			}
			if outputFile, ok := p.ask("Enter the output JSON file path for extracted repositories: "); ok {
				err = extractRepositories(ctx, s, []string{root, outputFile})
			}
		case "check-status":
			err = checkStatus(ctx, s, nil)
		case "show-config":
			err = showConfig(ctx, s, nil)
		case "quit", "exit":
			return nil
		case "":
		default:
			s.printf("%s", color.FgRed("Invalid action. Please choose 'clone', 'set-output', 'set-input', 'check-cloned', 'extract', 'check-status', or 'quit'."))
		}
		if err != nil {
			logger.Log.Errorf("%s: %v", action, err)
			s.printf("%s", color.FgRed("Error: %v", err))
		}
	}
}
