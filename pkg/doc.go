// Package pkg provides the core libraries for HexPic hex-dump images.
//
// # Overview
//
// HexPic draws a range of bytes as a transparent image: an optional column
// of hex addresses, then the bytes as two-digit hex pairs laid out in rows
// and groups, with rows near the top and bottom optionally fading out. The
// pkg directory is organized into these areas:
//
//  1. [hexdump] - Domain logic (address math, layout, fades, the grid walk)
//  2. [glyph] and [fonts] - Font loading, glyph measuring and drawing
//  3. [cache] - Caching of glyph metrics and encoded images
//  4. [pipeline] - Orchestration (read → measure → layout → render → encode)
//  5. [server] - The HTTP render API
//  6. [io] - Reading byte ranges and JSON documents, writing PNG
//
// # Architecture
//
// The typical data flow through HexPic:
//
//	Binary file or JSON document
//	         ↓
//	    [io] package (read the byte range)
//	         ↓
//	    [glyph] package (measure the 16 hex digits)
//	         ↓
//	    [hexdump] package (layout + draw)
//	         ↓
//	    PNG output
//
// # Quick Start
//
// Render 256 bytes of a file with the embedded font:
//
//	import (
//	    "context"
//	    "github.com/jebreimo/HexPic/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	opts := pipeline.DefaultOptions()
//	opts.Input = "firmware.bin"
//	opts.Count = 256
//	result, err := runner.Execute(context.Background(), opts)
//
// Or drive the engine directly with your own canvas:
//
//	cfg := hexdump.DefaultConfig()
//	face, _ := glyph.LoadFace(glyph.FaceOptions{})
//	tr, _ := glyph.NewRenderer(face, glyph.BackendXImage)
//	m, _ := hexdump.Measure(tr)
//	img, geom, err := hexdump.Render(cfg, m, tr, nil, image.Pt(2, 2), hexdump.Bytes(data), len(data), 0x1000)
package pkg
