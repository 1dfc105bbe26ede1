// Package io reads the byte ranges that get rendered and writes the
// resulting images.
//
// # Input
//
// [ReadRange] reads up to count bytes of a file starting at a position.
// A negative position counts back from the end of the file, so
//
//	r, err := io.ReadRange("firmware.bin", -256, 256)
//
// reads the last 256 bytes and reports their absolute address in
// [Range.Address]. The address is what gets drawn in the labels.
//
// [ReadJSON] and [ImportJSON] read a JSON document holding the bytes as
// integers, which is how the render server accepts structured input:
//
//	{"address": 4096, "data": [222, 173, 190, 239]}
//
// Values are not range-checked here; the renderer reports out-of-range
// values with their position.
//
// # Output
//
// [WritePNG] and [ExportPNG] encode images as PNG through
// github.com/disintegration/imaging.
package io
