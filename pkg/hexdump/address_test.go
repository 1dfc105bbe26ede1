package hexdump

import "testing"

func TestFirstColumn(t *testing.T) {
	const bpr = 16
	tests := []struct {
		address int64
		aligned int
	}{
		{0, 0},
		{bpr - 1, bpr - 1},
		{bpr, 0},
		{bpr + 5, 5},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.BytesPerRow = bpr

		cfg.AlignData = true
		if got := FirstColumn(cfg, tt.address); got != tt.aligned {
			t.Errorf("FirstColumn(aligned, %d) = %d, want %d", tt.address, got, tt.aligned)
		}

		cfg.AlignData = false
		if got := FirstColumn(cfg, tt.address); got != 0 {
			t.Errorf("FirstColumn(unaligned, %d) = %d, want 0", tt.address, got)
		}
	}
}

func TestAddressDigits(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		address int64
		want    int
	}{
		{"empty", 0, 0, 1},
		{"single byte", 1, 0, 1},
		{"sixteen bytes", 16, 0, 1},
		{"seventeen bytes", 17, 0, 2},
		{"full byte range", 256, 0, 2},
		{"257 bytes", 257, 0, 3},
		{"exact power", 4096, 0, 3},
		{"past power", 1, 0x1000, 4},
		{"large offset", 0x100, 0xffff00, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddressDigits(tt.count, tt.address); got != tt.want {
				t.Errorf("AddressDigits(%d, %#x) = %d, want %d", tt.count, tt.address, got, tt.want)
			}
		})
	}
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		value  uint64
		digits int
		want   string
	}{
		{0, 1, "0"},
		{0, 2, "00"},
		{0x20, 2, "20"},
		{0xabc, 4, "0abc"},
		{0x1ff, 2, "ff"},
		{0xdeadbeef, 8, "deadbeef"},
	}

	for _, tt := range tests {
		if got := FormatAddress(tt.value, tt.digits); got != tt.want {
			t.Errorf("FormatAddress(%#x, %d) = %q, want %q", tt.value, tt.digits, got, tt.want)
		}
	}
}

func TestIsLandmark(t *testing.T) {
	for _, a := range []int64{0, 0x80, 0x100, 0x1380} {
		if !IsLandmark(a) {
			t.Errorf("IsLandmark(%#x) = false, want true", a)
		}
	}
	for _, a := range []int64{0x20, 0x40, 0x7f, 0x81} {
		if IsLandmark(a) {
			t.Errorf("IsLandmark(%#x) = true, want false", a)
		}
	}
}
