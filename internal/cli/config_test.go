package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jebreimo/HexPic/pkg/errors"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"640x480", 640, 480, false},
		{"640X480", 640, 480, false},
		{"0x0", 0, 0, false},
		{"-1x200", -1, 200, false},
		{"640", 0, 0, true},
		{"ax480", 0, 0, true},
		{"640xb", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "hexpic.toml", "columns = 16\nfade_in = 2\ncolor = \"ff0000\"\n"},
		{"yaml", "hexpic.yaml", "columns: 16\nfade_in: 2\ncolor: ff0000\n"},
		{"yml", "hexpic.yml", "columns: 16\nfade_in: 2\ncolor: \"ff0000\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := loadConfig(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if opts.Columns != 16 || opts.FadeIn != 2 || opts.Color != "ff0000" {
				t.Errorf("got columns=%d fade_in=%d color=%q", opts.Columns, opts.FadeIn, opts.Color)
			}
			// Fields absent from the file keep their defaults.
			if opts.GroupSize != 4 || opts.Count != 1024 || opts.Margin != 2 {
				t.Errorf("defaults lost: group=%d count=%d margin=%d", opts.GroupSize, opts.Count, opts.Margin)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"unsupported", writeFile(t, "hexpic.ini", "columns=16"), errors.ErrCodeUnsupported},
		{"missing", filepath.Join(t.TempDir(), "missing.yaml"), errors.ErrCodeFileNotFound},
		{"bad toml", writeFile(t, "bad.toml", "columns = [\n"), errors.ErrCodeInvalidFormat},
		{"bad yaml", writeFile(t, "bad.yaml", "columns: [1, 2\n"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig(%s) error = %v, want code %s", tt.path, err, tt.code)
			}
		})
	}
}

func newFlagCommand(t *testing.T, args ...string) (*cobra.Command, *optionFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f := newOptionFlags()
	f.addInput(cmd.Flags())
	f.addLayout(cmd.Flags())
	f.addOutput(cmd.Flags())
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd, f
}

func TestResolveFlagsOverrideConfig(t *testing.T) {
	path := writeFile(t, "hexpic.toml", "columns = 16\nfade_in = 2\ncolor = \"ff0000\"\nwidth = 10\n")
	cmd, f := newFlagCommand(t, "--columns", "8", "-s", "100x50", "-a", "0x20")

	opts, err := f.resolve(cmd, path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if opts.Columns != 8 {
		t.Errorf("Columns = %d, want 8 from flag", opts.Columns)
	}
	if opts.FadeIn != 2 || opts.Color != "ff0000" {
		t.Errorf("FadeIn = %d, Color = %q, want config values", opts.FadeIn, opts.Color)
	}
	if opts.Width != 100 || opts.Height != 50 {
		t.Errorf("size = %dx%d, want 100x50", opts.Width, opts.Height)
	}
	if opts.Address != 0x20 {
		t.Errorf("Address = %d, want 0x20", opts.Address)
	}
}

func TestResolveWithoutConfig(t *testing.T) {
	cmd, f := newFlagCommand(t, "--fadeout", "3", "--no-address")

	opts, err := f.resolve(cmd, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if opts.FadeOut != 3 || !opts.HideAddress {
		t.Errorf("FadeOut = %d, HideAddress = %v", opts.FadeOut, opts.HideAddress)
	}
	if opts.Columns != 32 {
		t.Errorf("Columns = %d, want default 32", opts.Columns)
	}
}

func TestResolveBadSize(t *testing.T) {
	cmd, f := newFlagCommand(t, "-s", "big")
	if _, err := f.resolve(cmd, ""); err == nil {
		t.Error("resolve() with bad size should fail")
	}
}
