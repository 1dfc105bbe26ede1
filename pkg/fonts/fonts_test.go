package fonts

import "testing"

func TestDefaultTTF(t *testing.T) {
	data := DefaultTTF()
	if len(data) < 4 {
		t.Fatalf("DefaultTTF() returned %d bytes", len(data))
	}
	// TrueType files start with the sfnt version 0x00010000.
	if data[0] != 0 || data[1] != 1 || data[2] != 0 || data[3] != 0 {
		t.Errorf("DefaultTTF() header = % x, want 00 01 00 00", data[:4])
	}
}

func TestDefaultDigestStable(t *testing.T) {
	d1 := DefaultDigest()
	d2 := DefaultDigest()
	if d1 != d2 {
		t.Error("DefaultDigest should be deterministic")
	}
	if len(d1) != 64 {
		t.Errorf("DefaultDigest length = %d, want 64", len(d1))
	}
}
