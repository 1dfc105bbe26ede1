// Package glyph provides the text measuring and drawing capability used by
// the hexdump renderer.
//
// # Faces
//
// [LoadFace] turns a font selection into a golang.org/x/image font.Face. The
// font is either the bundled Go Mono face, a font file path, or a font file
// name looked up in the system font directories with go-findfont. Three
// engines can rasterize it:
//
//   - opentype: golang.org/x/image/font/opentype (default)
//   - freetype: github.com/golang/freetype/truetype
//   - basic: the fixed 7x13 bitmap face, which ignores font and size
//
// # Backends
//
// [NewRenderer] wraps a face in a [hexdump.TextRenderer]:
//
//   - ximage: draws with font.Drawer onto any draw.Image (default)
//   - gg: draws with a fogleman/gg context; the canvas must be *image.RGBA
//
// Glyphs are measured the way the classic PIL script measured them: the
// width is the advance and the height runs from the top of the ascent to the
// bottom of the glyph's ink.
//
// A face, and therefore a renderer, must not be used by more than one
// goroutine at a time. Parsed fonts are cached and shared.
//
// [hexdump.TextRenderer]: github.com/jebreimo/HexPic/pkg/hexdump.TextRenderer
package glyph
