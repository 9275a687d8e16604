package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rowfit/rowfit/pkg/textwrap"
)

// defaultWrapWidth is the character budget used when --width is not given.
// It matches the default column width (64px at 7px per character).
const defaultWrapWidth = 64.0 / 7.0

// wrapOpts holds the command-line flags for the wrap command.
type wrapOpts struct {
	width       float64 // wrap width in character units
	file        string  // read text from a file instead of the argument
	noWrap      bool    // only break on explicit newlines
	interactive bool    // open the interactive width preview
}

// newWrapCmd creates the wrap command for previewing line breaks.
// Text is given as an argument or read from a file with --file.
func newWrapCmd() *cobra.Command {
	opts := wrapOpts{width: defaultWrapWidth}

	cmd := &cobra.Command{
		Use:   "wrap [text]",
		Short: "Preview how text breaks into display lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := wrapInput(args, opts.file)
			if err != nil {
				return err
			}
			return runWrap(cmd.Context(), text, &opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "w", opts.width, "wrap width in character units")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read text from a file")
	cmd.Flags().BoolVar(&opts.noWrap, "no-wrap", false, "only break on explicit newlines")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "adjust the width interactively")

	return cmd
}

// wrapInput resolves the text to wrap from the argument or --file.
func wrapInput(args []string, file string) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("pass text as an argument or via --file, not both")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no text given (pass an argument or --file)")
	}
	return args[0], nil
}

// runWrap breaks the text and prints the resulting lines, or starts the
// interactive preview when requested.
func runWrap(ctx context.Context, text string, opts *wrapOpts) error {
	if opts.interactive {
		m := newWrapModel(text, opts.width, !opts.noWrap)
		_, err := tea.NewProgram(m).Run()
		return err
	}

	logger := loggerFromContext(ctx)
	logger.Debugf("Wrapping %d characters at width %.2f", len(text), opts.width)

	lines, err := textwrap.BreakLines(text, !opts.noWrap, opts.width)
	if err != nil {
		return err
	}

	for i, line := range lines {
		fmt.Println(StyleDim.Render(fmt.Sprintf("%3d ", i+1)) + StyleValue.Render(line))
	}
	printDetail("%d lines at width %.2f", len(lines), opts.width)
	return nil
}
