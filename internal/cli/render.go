package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/pipeline"
)

// renderCommand creates the render command for drawing hex-dump images.
func (c *CLI) renderCommand() *cobra.Command {
	flags := newOptionFlags()
	var noCache bool

	cmd := &cobra.Command{
		Use:   "render <data file> [image file]",
		Short: "Render a byte range of a file as a PNG image",
		Long: `Render a byte range of a file as a transparent PNG hex dump.

The image is written to <data file>.png unless an image file is given.`,
		Example: `  hexpic render firmware.bin
  hexpic render firmware.bin head.png -a 0x1000 -n 256 --fadein 2 --fadeout 2
  hexpic render dump.json --json --color 2060a0 --fontsize 14`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, c.configPath)
			if err != nil {
				return err
			}
			opts.Input = args[0]
			output := outputPath(args)
			return c.runRender(cmd, opts, output, noCache)
		},
	}

	flags.addInput(cmd.Flags())
	flags.addLayout(cmd.Flags())
	flags.addOutput(cmd.Flags())
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&flags.opts.Refresh, "refresh", false, "render again even if the image is cached")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	sp := newSpinner(ctx, os.Stderr, renderMessage(opts))
	sp.start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if sp.cancelled() {
			sp.halt()
			printWarning("Render of %s cancelled", filepath.Base(opts.Input))
			return ctx.Err()
		}
		sp.fail("Render failed")
		if hint := failureHint(err); hint != "" {
			printDetail("%s", hint)
		}
		return err
	}

	if err := os.WriteFile(output, result.PNG, 0o644); err != nil {
		sp.fail("Write failed")
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Rendered %d bytes from 0x%x", result.Stats.BytesRead, result.Address))

	sp.succeed(fmt.Sprintf("Rendered %s", filepath.Base(opts.Input)))
	printFile(output)
	printStats(result.Stats.BytesRead, result.Geometry.Rows, result.Width, result.Height, result.CacheInfo.RenderHit)
	return nil
}

// renderMessage is the spinner line shown while opts renders.
func renderMessage(opts pipeline.Options) string {
	what := fmt.Sprintf("%d bytes", opts.Count)
	if opts.JSON {
		what = "byte values"
	}
	from := ""
	switch {
	case opts.JSON:
	case opts.Address < 0:
		from = fmt.Sprintf(" from %d before the end", -opts.Address)
	case opts.Address > 0:
		from = fmt.Sprintf(" from 0x%x", opts.Address)
	}
	return fmt.Sprintf("Rendering %s of %s%s...", what, filepath.Base(opts.Input), from)
}

// failureHint explains errors raised while sizing a render, which leave no
// output behind and go away once the options are fixed.
func failureHint(err error) string {
	if !errors.IsSizing(err) {
		return ""
	}
	if errors.Is(err, errors.ErrCodeFontUnavailable) {
		return "The font could not be loaded; check --font and --engine, then retry"
	}
	return "Nothing was drawn; check the layout options (--columns, --fadein, --fadeout, ...), then retry"
}

// outputPath returns the image file argument or <data file>.png.
func outputPath(args []string) string {
	if len(args) > 1 && strings.TrimSpace(args[1]) != "" {
		return args[1]
	}
	return args[0] + ".png"
}
