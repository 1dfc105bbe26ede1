package cli

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jebreimo/HexPic/pkg/hexdump"
	"github.com/jebreimo/HexPic/pkg/pipeline"
)

// terminalText is the dump color used when --color is not given; the image
// default of black is unreadable on most terminals.
var terminalText = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: hexdump.Opaque}

// dumpCommand creates the dump command for previewing the grid as text.
func (c *CLI) dumpCommand() *cobra.Command {
	flags := newOptionFlags()
	var plain bool

	cmd := &cobra.Command{
		Use:   "dump <data file>",
		Short: "Print a byte range with the same layout as the image",
		Long: `Print a byte range as text using the grid an image render would use:
the same first column, address labels and groups. Fade rows are dimmed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, c.configPath)
			if err != nil {
				return err
			}
			opts.Input = args[0]
			if !cmd.Flags().Changed("color") && c.configPath == "" {
				opts.Color = ""
			}
			return runDump(cmd, opts, plain, os.Stdout)
		},
	}

	flags.addInput(cmd.Flags())
	flags.addLayout(cmd.Flags())
	cmd.Flags().StringVar(&flags.opts.Color, "color", flags.opts.Color, "text color as RRGGBB")
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")

	return cmd
}

func runDump(cmd *cobra.Command, opts pipeline.Options, plain bool, w io.Writer) error {
	ctx := cmd.Context()
	opts.Logger = loggerFromContext(ctx)
	textColor := terminalText
	if opts.Color != "" {
		c, err := pipeline.ParseColor(opts.Color)
		if err != nil {
			return err
		}
		textColor = c
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	cfg, err := opts.HexConfig()
	if err != nil {
		return err
	}

	in, err := pipeline.Read(ctx, opts)
	if err != nil {
		return err
	}

	if plain {
		return hexdump.WriteText(w, cfg, in.Data, in.Count, in.Address)
	}

	rows, err := hexdump.TextRows(cfg, in.Data, in.Count, in.Address)
	if err != nil {
		return err
	}
	for i, r := range rows {
		style := rowStyle(textColor, hexdump.RowAlpha(cfg, len(rows), i))
		line := ""
		if cfg.ShowAddress {
			line = StyleNumber.Render(r.Label) + "  "
		}
		fmt.Fprintln(w, line+style.Render(r.Hex))
	}
	return nil
}
