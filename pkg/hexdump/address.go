package hexdump

// FirstColumn returns the column the first byte is drawn in: address modulo
// the row width when data is aligned, otherwise 0.
func FirstColumn(cfg Config, address int64) int {
	if !cfg.AlignData || cfg.BytesPerRow <= 0 {
		return 0
	}
	return int(address % int64(cfg.BytesPerRow))
}

// AddressDigits returns the number of hex digits needed for address labels:
// ceil(log16(address+count)), at least 1.
//
// The result is computed with integers as the smallest d where
// 16^d >= address+count, which is exact where a floating point logarithm
// is not (log16(4096) may round to just above 3).
func AddressDigits(count int, address int64) int {
	end := uint64(address) + uint64(count)
	digits := 1
	for limit := uint64(16); limit < end && digits < 16; limit <<= 4 {
		digits++
	}
	return digits
}

// FormatAddress returns value as exactly digits lowercase hex characters,
// zero-padded. Nibbles above digits are dropped, matching what is drawn.
func FormatAddress(value uint64, digits int) string {
	buf := make([]byte, 0, digits)
	for _, d := range nibbles(value, digits) {
		buf = append(buf, HexChars[d])
	}
	return string(buf)
}

// IsLandmark reports whether address gets a label even when it is not the
// first row.
func IsLandmark(address int64) bool {
	return address%LandmarkInterval == 0
}

// nibbles splits value into digits nibbles, most significant first.
func nibbles(value uint64, digits int) []int {
	out := make([]int, digits)
	for i := range out {
		shift := uint(4 * (digits - i - 1))
		if shift >= 64 {
			continue
		}
		out[i] = int(value>>shift) & 0xf
	}
	return out
}
