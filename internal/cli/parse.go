package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ppiankov/nameparser/internal/model"
	"github.com/ppiankov/nameparser/internal/pipeline"
)

// numericArg matches arguments a shell flag parser would read as numbers:
// decimals with optional sign and exponent, and hex literals.
var numericArg = regexp.MustCompile(`^(?:0[xX][0-9a-fA-F]+|[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?)$`)

func runParse(cmd *cobra.Command, args []string) error {
	renderer, err := pipeline.NewRenderer(cfg.Output.Format, colorEnabled(cfg.Output.Color, cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, logger)
	return parseNames(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), p, renderer, args)
}

// parseNames parses every non-numeric argument and renders the list to out.
// Numeric arguments are reported on errOut and skipped.
func parseNames(ctx context.Context, out, errOut io.Writer, p *pipeline.Pipeline, r *pipeline.Renderer, args []string) error {
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		if numericArg.MatchString(arg) {
			fmt.Fprintf(errOut, "Error: Cannot parse the given input of %s\n", arg)
			continue
		}
		inputs = append(inputs, arg)
	}

	names, err := p.ParseAll(ctx, inputs)
	if err != nil {
		return err
	}

	if err := r.Render(out, names); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// colorEnabled resolves a color mode for w. auto colors only terminals and
// honours NO_COLOR.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case model.ColorAlways:
		return true
	case model.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
