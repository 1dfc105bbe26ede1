package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/hexdump"
	"github.com/jebreimo/HexPic/pkg/pipeline"
)

// sizeReport is the JSON form of the size command's output.
type sizeReport struct {
	Address  int64            `json:"address"`
	Count    int              `json:"count"`
	Geometry hexdump.Geometry `json:"geometry"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
}

// sizeCommand creates the size command, which computes the layout of a
// render without reading or drawing any data.
func (c *CLI) sizeCommand() *cobra.Command {
	flags := newOptionFlags()
	var format string

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the grid geometry and image size for a byte range",
		Long: `Print the grid geometry and final image size for --number bytes
starting at --address, without reading a file or drawing anything.`,
		Example: `  hexpic size -a 0x1234 -n 512
  hexpic size -a 0x10 -n 64 --columns 16 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, c.configPath)
			if err != nil {
				return err
			}
			if format != "text" && format != "json" {
				return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be text or json)", format)
			}
			return c.runSize(cmd, opts, format, os.Stdout)
		},
	}

	cmd.Flags().Int64VarP(&flags.opts.Address, "address", "a", 0, "start address")
	cmd.Flags().IntVarP(&flags.opts.Count, "number", "n", flags.opts.Count, "number of bytes")
	flags.addLayout(cmd.Flags())
	flags.addOutput(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func (c *CLI) runSize(cmd *cobra.Command, opts pipeline.Options, format string, w io.Writer) error {
	ctx := cmd.Context()
	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(false)
	if err != nil {
		return err
	}
	defer runner.Close()

	g, width, height, err := runner.Geometry(ctx, opts, opts.Count, opts.Address)
	if err != nil {
		return err
	}
	report := sizeReport{Address: opts.Address, Count: opts.Count, Geometry: g, Width: width, Height: height}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	writeSizeText(w, report)
	return nil
}

func writeSizeText(w io.Writer, r sizeReport) {
	kv := func(k, v string) { fmt.Fprintf(w, "%-14s %s\n", k, v) }
	kv("address", fmt.Sprintf("0x%x", r.Address))
	kv("count", fmt.Sprint(r.Count))
	kv("rows", fmt.Sprint(r.Geometry.Rows))
	kv("first column", fmt.Sprint(r.Geometry.FirstColumn))
	kv("address digits", fmt.Sprint(r.Geometry.AddressDigits))
	kv("cell", fmt.Sprintf("%dx%d", r.Geometry.CellWidth, r.Geometry.CellHeight))
	kv("grid", fmt.Sprintf("%dx%d", r.Geometry.Width, r.Geometry.Height))
	kv("image", fmt.Sprintf("%dx%d", r.Width, r.Height))
}
