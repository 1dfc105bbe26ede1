package io

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// WritePNG encodes img as PNG and writes it to w.
func WritePNG(img image.Image, w io.Writer) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(img, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPNG writes img to a PNG file at path.
func ExportPNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(img, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecodePNG decodes PNG data, as stored in the artifact cache.
func DecodePNG(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}
