package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/pipeline"
)

// optionFlags binds the render options shared by render, size, dump and
// serve to command flags.
type optionFlags struct {
	opts pipeline.Options
	size string
}

// copiers copies one flag's value from the flag-bound options onto options
// loaded from a config file.
var copiers = map[string]func(dst, src *pipeline.Options){
	"address":    func(d, s *pipeline.Options) { d.Address = s.Address },
	"number":     func(d, s *pipeline.Options) { d.Count = s.Count },
	"json":       func(d, s *pipeline.Options) { d.JSON = s.JSON },
	"columns":    func(d, s *pipeline.Options) { d.Columns = s.Columns },
	"group":      func(d, s *pipeline.Options) { d.GroupSize = s.GroupSize },
	"byte-gap":   func(d, s *pipeline.Options) { d.ByteGap = s.ByteGap },
	"group-gap":  func(d, s *pipeline.Options) { d.GroupGap = s.GroupGap },
	"no-address": func(d, s *pipeline.Options) { d.HideAddress = s.HideAddress },
	"no-align":   func(d, s *pipeline.Options) { d.NoAlign = s.NoAlign },
	"fadein":     func(d, s *pipeline.Options) { d.FadeIn = s.FadeIn },
	"fadeout":    func(d, s *pipeline.Options) { d.FadeOut = s.FadeOut },
	"font":       func(d, s *pipeline.Options) { d.Font = s.Font },
	"fontsize":   func(d, s *pipeline.Options) { d.FontSize = s.FontSize },
	"engine":     func(d, s *pipeline.Options) { d.Engine = s.Engine },
	"backend":    func(d, s *pipeline.Options) { d.Backend = s.Backend },
	"color":      func(d, s *pipeline.Options) { d.Color = s.Color },
	"size":       func(d, s *pipeline.Options) { d.Width, d.Height = s.Width, s.Height },
	"margin":     func(d, s *pipeline.Options) { d.Margin = s.Margin },
	"scale":      func(d, s *pipeline.Options) { d.Scale = s.Scale },
	"refresh":    func(d, s *pipeline.Options) { d.Refresh = s.Refresh },
}

func newOptionFlags() *optionFlags {
	return &optionFlags{opts: pipeline.DefaultOptions()}
}

// addInput registers the flags that select the byte range.
func (f *optionFlags) addInput(fs *pflag.FlagSet) {
	fs.Int64VarP(&f.opts.Address, "address", "a", f.opts.Address, "start address; negative counts back from the end of the file")
	fs.IntVarP(&f.opts.Count, "number", "n", f.opts.Count, "number of bytes to render")
	fs.BoolVar(&f.opts.JSON, "json", false, "read a JSON document {\"address\": N, \"data\": [...]} instead of a binary file")
}

// addLayout registers the grid and font flags.
func (f *optionFlags) addLayout(fs *pflag.FlagSet) {
	fs.IntVar(&f.opts.Columns, "columns", f.opts.Columns, "bytes per row")
	fs.IntVar(&f.opts.GroupSize, "group", f.opts.GroupSize, "bytes per group")
	fs.IntVar(&f.opts.ByteGap, "byte-gap", f.opts.ByteGap, "pixels between byte pairs")
	fs.IntVar(&f.opts.GroupGap, "group-gap", f.opts.GroupGap, "extra pixels between groups")
	fs.BoolVar(&f.opts.HideAddress, "no-address", false, "omit the address column")
	fs.BoolVar(&f.opts.NoAlign, "no-align", false, "start the first byte in column 0 regardless of its address")
	fs.IntVar(&f.opts.FadeIn, "fadein", 0, "number of rows that fade in at the top")
	fs.IntVar(&f.opts.FadeOut, "fadeout", 0, "number of rows that fade out at the bottom")
	fs.StringVar(&f.opts.Font, "font", "", "font file or installed font name (default: embedded Go Mono)")
	fs.Float64Var(&f.opts.FontSize, "fontsize", f.opts.FontSize, "font size in points")
	fs.StringVar(&f.opts.Engine, "engine", f.opts.Engine, "font engine: opentype, freetype, basic")
}

// addOutput registers the image flags.
func (f *optionFlags) addOutput(fs *pflag.FlagSet) {
	fs.StringVar(&f.opts.Backend, "backend", f.opts.Backend, "drawing backend: ximage, gg")
	fs.StringVar(&f.opts.Color, "color", f.opts.Color, "text color as RRGGBB")
	fs.StringVarP(&f.size, "size", "s", "", "image size as WIDTHxHEIGHT (default: fit the grid)")
	fs.IntVar(&f.opts.Margin, "margin", f.opts.Margin, "transparent border in pixels")
	fs.Float64Var(&f.opts.Scale, "scale", f.opts.Scale, "scale factor applied after drawing")
}

// resolve returns the options for one run: the config file, if any, with
// explicitly set flags applied on top.
func (f *optionFlags) resolve(cmd *cobra.Command, configPath string) (pipeline.Options, error) {
	if f.size != "" {
		w, h, err := parseSize(f.size)
		if err != nil {
			return pipeline.Options{}, err
		}
		f.opts.Width, f.opts.Height = w, h
	}
	if configPath == "" {
		return f.opts, nil
	}

	base, err := loadConfig(configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if apply, ok := copiers[fl.Name]; ok {
			apply(&base, &f.opts)
		}
	})
	return base, nil
}

// loadConfig reads options from a TOML or YAML file on top of the defaults.
func loadConfig(path string) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &opts); err != nil {
			return pipeline.Options{}, configError(path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return pipeline.Options{}, configError(path, err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return pipeline.Options{}, configError(path, err)
		}
	default:
		return pipeline.Options{}, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
	return opts, nil
}

func configError(path string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	return errors.Wrap(errors.ErrCodeInvalidFormat, err, "config file %s", path)
}

// parseSize parses "WIDTHxHEIGHT". A non-positive dimension fits the grid.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (want WIDTHxHEIGHT)", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid size width %q", ws)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid size height %q", hs)
	}
	return w, h, nil
}
