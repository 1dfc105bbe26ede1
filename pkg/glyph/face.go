package glyph

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/fonts"
)

// Face engines.
const (
	EngineOpenType = "opentype"
	EngineFreeType = "freetype"
	EngineBasic    = "basic"
)

// DefaultSize is the default font size in pixels.
const DefaultSize = 10

// ValidEngines is the set of supported face engines.
var ValidEngines = map[string]bool{
	EngineOpenType: true,
	EngineFreeType: true,
	EngineBasic:    true,
}

// FaceOptions selects a font face.
type FaceOptions struct {
	Font   string  // font file path or name; empty for the bundled font
	Size   float64 // size in pixels
	Engine string  // opentype (default), freetype or basic
}

// LoadFace resolves and parses the selected font and returns a face at the
// requested size. Failures are FONT_UNAVAILABLE errors.
func LoadFace(opts FaceOptions) (font.Face, error) {
	engine := opts.Engine
	if engine == "" {
		engine = EngineOpenType
	}
	if !ValidEngines[engine] {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid font engine: %q (must be one of: opentype, freetype, basic)", engine)
	}
	if engine == EngineBasic {
		return basicfont.Face7x13, nil
	}

	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	data, digest, err := readFont(opts.Font)
	if err != nil {
		return nil, err
	}

	switch engine {
	case EngineFreeType:
		f, err := parsed(digest, engine, func() (any, error) { return truetype.Parse(data) })
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontUnavailable, err, "parse font %s", fontLabel(opts.Font))
		}
		return truetype.NewFace(f.(*truetype.Font), &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	default:
		f, err := parsed(digest, engine, func() (any, error) { return opentype.Parse(data) })
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontUnavailable, err, "parse font %s", fontLabel(opts.Font))
		}
		face, err := opentype.NewFace(f.(*opentype.Font), &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontUnavailable, err, "create face for %s", fontLabel(opts.Font))
		}
		return face, nil
	}
}

// ResolveFont returns the file path for a font selection. Existing paths are
// returned unchanged; anything else is looked up by file name in the system
// font directories. The bundled font resolves to an empty path.
func ResolveFont(name string) (string, error) {
	if name == "" || name == fonts.DefaultName {
		return "", nil
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFontUnavailable, err, "font %q not found", name)
	}
	return path, nil
}

// FontDigest returns a content hash identifying the font a selection
// resolves to. The built-in bitmap face has a fixed digest.
func FontDigest(opts FaceOptions) (string, error) {
	if opts.Engine == EngineBasic {
		return EngineBasic, nil
	}
	_, digest, err := readFont(opts.Font)
	return digest, err
}

// readFont returns the font data for a selection and a digest identifying it.
func readFont(name string) ([]byte, string, error) {
	path, err := ResolveFont(name)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return fonts.DefaultTTF(), fonts.DefaultDigest(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeFontUnavailable, err, "read font %s", path)
	}
	sum := sha256.Sum256(data)
	return data, hex.EncodeToString(sum[:]), nil
}

func fontLabel(name string) string {
	if name == "" {
		return fonts.DefaultName
	}
	return name
}

// Parsed fonts are immutable, so one parse per font file and engine is
// shared by every face built from it.
var (
	parsedMu    sync.Mutex
	parsedFonts = map[string]any{}
)

func parsed(digest, engine string, parse func() (any, error)) (any, error) {
	key := engine + ":" + digest

	parsedMu.Lock()
	defer parsedMu.Unlock()
	if f, ok := parsedFonts[key]; ok {
		return f, nil
	}
	f, err := parse()
	if err != nil {
		return nil, err
	}
	parsedFonts[key] = f
	return f, nil
}
