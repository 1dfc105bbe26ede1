package server

import (
	"net/url"
	"strconv"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/pipeline"
)

// optionsFromQuery applies query parameters on top of base. Unknown
// parameters are rejected so that typos do not silently fall back to
// defaults.
func optionsFromQuery(base pipeline.Options, q url.Values) (pipeline.Options, error) {
	opts := base.Copy()
	opts.Input = ""
	opts.JSON = false

	ints := map[string]*int{
		"count":      &opts.Count,
		"columns":    &opts.Columns,
		"group_size": &opts.GroupSize,
		"byte_gap":   &opts.ByteGap,
		"group_gap":  &opts.GroupGap,
		"fade_in":    &opts.FadeIn,
		"fade_out":   &opts.FadeOut,
		"width":      &opts.Width,
		"height":     &opts.Height,
		"margin":     &opts.Margin,
	}
	floats := map[string]*float64{
		"font_size": &opts.FontSize,
		"scale":     &opts.Scale,
	}
	bools := map[string]*bool{
		"hide_address": &opts.HideAddress,
		"no_align":     &opts.NoAlign,
		"refresh":      &opts.Refresh,
	}
	strs := map[string]*string{
		"font":    &opts.Font,
		"engine":  &opts.Engine,
		"backend": &opts.Backend,
		"color":   &opts.Color,
	}

	for key, vals := range q {
		v := vals[len(vals)-1]
		var err error
		switch {
		case key == "address":
			opts.Address, err = strconv.ParseInt(v, 0, 64)
		case ints[key] != nil:
			*ints[key], err = strconv.Atoi(v)
		case floats[key] != nil:
			*floats[key], err = strconv.ParseFloat(v, 64)
		case bools[key] != nil:
			*bools[key], err = strconv.ParseBool(v)
		case strs[key] != nil:
			*strs[key] = v
		default:
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "unknown parameter %q", key)
		}
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", key, v)
		}
	}

	// Only server-side defaults may name a font file.
	if q.Has("font") && opts.Font != "" {
		if err := errors.ValidateFontName(opts.Font); err != nil {
			return pipeline.Options{}, err
		}
	}
	return opts, nil
}
