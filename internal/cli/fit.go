package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rowfit/rowfit/pkg/cache"
	"github.com/rowfit/rowfit/pkg/errors"
	"github.com/rowfit/rowfit/pkg/fit"
	"github.com/rowfit/rowfit/pkg/report"
	"github.com/rowfit/rowfit/pkg/workbook"
)

// cacheTTL is how long fit reports stay valid in the cache.
const cacheTTL = 24 * time.Hour

// fitOpts holds the command-line flags for the fit command.
type fitOpts struct {
	output       string // report output path (default: derived from input)
	proportional bool   // distribute merged-cell growth across spanned rows
	noCache      bool   // bypass the fit result cache
	quiet        bool   // suppress the per-row table
}

// newFitCmd creates the fit command for computing row heights.
//
// Default settings:
//   - absorption growth (the anchor row absorbs merged-cell shortfall)
//   - results cached for 24h, keyed by workbook content and options
//   - report written next to the input as <name>.report.json
func newFitCmd() *cobra.Command {
	var opts fitOpts

	cmd := &cobra.Command{
		Use:   "fit [workbook]",
		Short: "Compute row heights for a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report output path (default: <workbook>.report.json)")
	cmd.Flags().BoolVar(&opts.proportional, "proportional", false, "distribute merged-cell growth proportionally across spanned rows")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the fit result cache")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the per-row table")

	return cmd
}

// runFit loads the workbook, computes row heights (or retrieves a cached
// report), writes the report, and prints a summary table.
func runFit(ctx context.Context, input string, opts *fitOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "workbook %s", input)
		}
		return err
	}

	book, err := workbook.Parse(data)
	if err != nil {
		return err
	}
	name := book.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	logger.Debugf("Loaded workbook %q: %d rows", name, len(book.Sheet.RowIndices()))

	c, err := openCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer c.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.FitKey(cache.Hash(data), cache.FitKeyOpts{Proportional: opts.proportional})

	rep, cached, err := fitOrCached(ctx, c, key, book, opts.proportional, logger)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = reportPath(input)
	}
	if err := errors.ValidateOutputPath(outputPath); err != nil {
		return err
	}
	if err := report.WriteFile(rep, outputPath); err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Println(renderHeightsTable(rep))
	}

	grown := 0
	for _, r := range rep.Rows {
		if r.Height > book.Sheet.DefaultRowHeight() {
			grown++
		}
	}

	prog.done(fmt.Sprintf("Fitted %d rows", len(rep.Rows)))
	printSuccess("Fitted %s", name)
	printFile(outputPath)
	printStats(len(rep.Rows), grown, cached)
	return nil
}

// fitOrCached returns a cached report when one exists for key, otherwise
// runs the fitting pass and stores the result.
func fitOrCached(ctx context.Context, c cache.Cache, key string, book *workbook.Book, proportional bool, logger *log.Logger) (report.Report, bool, error) {
	if blob, hit, err := c.Get(ctx, key); err == nil && hit {
		rep, err := report.Read(bytes.NewReader(blob))
		if err == nil {
			logger.Debug("Using cached fit report", "key", key[:16])
			return rep, true, nil
		}
		// Corrupt entry - drop it and recompute
		_ = c.Delete(ctx, key)
	}

	f := fit.New(fit.Options{Proportional: proportional, Logger: logger})
	if err := f.StretchSheet(book.Sheet); err != nil {
		return report.Report{}, false, err
	}

	rep, err := report.Build(book.Sheet, f, book.Name, proportional)
	if err != nil {
		return report.Report{}, false, err
	}

	if blob, err := report.Marshal(rep); err == nil {
		if err := c.Set(ctx, key, blob, cacheTTL); err != nil {
			printWarning("Could not cache fit report: %v", err)
		}
	}
	return rep, false, nil
}

// reportPath derives the report output path from the input file path by
// replacing the extension with .report.json.
func reportPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".report.json"
}

// renderHeightsTable formats the fitted rows as a bordered table.
func renderHeightsTable(rep report.Report) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		lines := 0
		for _, c := range r.Cells {
			if c.Lines > lines {
				lines = c.Lines
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			strconv.FormatFloat(r.Height, 'f', 1, 64),
			strconv.Itoa(lines),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Height", "Lines").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleNumber
			}
			return StyleValue
		})

	return t.Render()
}
