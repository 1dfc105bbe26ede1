package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jebreimo/HexPic/pkg/errors"
)

// Range is a run of bytes read from a file.
type Range struct {
	Address  int64  // absolute offset of Data[0] in the file
	Data     []byte // may be shorter than requested at end of file
	FileSize int64
}

// ReadRange opens path and reads up to count bytes starting at pos. A
// negative pos is relative to the end of the file. Reading past the end
// yields a short or empty range, not an error.
func ReadRange(path string, pos int64, count int) (Range, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Range{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Range{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	r, err := ReadRangeFrom(f, pos, count)
	if err != nil {
		return Range{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ReadRangeFrom is ReadRange over an open file or other seekable reader.
func ReadRangeFrom(rs io.ReadSeeker, pos int64, count int) (Range, error) {
	if count < 0 {
		return Range{}, errors.New(errors.ErrCodeConfiguration, "byte count must not be negative, got %d", count)
	}
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return Range{}, errors.Wrap(errors.ErrCodeInternal, err, "seek")
	}

	start := pos
	if pos < 0 {
		start = size + pos
		if start < 0 {
			return Range{}, errors.New(errors.ErrCodeConfiguration,
				"address %d is before the start of a %d byte file", pos, size)
		}
	}
	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return Range{}, errors.Wrap(errors.ErrCodeInternal, err, "seek to %d", start)
	}

	data, err := io.ReadAll(io.LimitReader(rs, int64(count)))
	if err != nil {
		return Range{}, errors.Wrap(errors.ErrCodeInternal, err, "read %d bytes at %d", count, start)
	}
	return Range{Address: start, Data: data, FileSize: size}, nil
}

// Document is the JSON form of a byte run.
type Document struct {
	Address int64 `json:"address"`
	Data    []int `json:"data"`
}

// ReadJSON decodes a Document from r. Unknown fields are rejected.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	if doc.Address < 0 {
		return Document{}, errors.New(errors.ErrCodeConfiguration, "address must not be negative, got %d", doc.Address)
	}
	return doc, nil
}

// ImportJSON reads a Document from the file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	doc, err := ReadJSON(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
