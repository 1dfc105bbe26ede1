package hexdump

import (
	"bytes"
	"testing"

	hperrors "github.com/jebreimo/HexPic/pkg/errors"
)

func TestWriteText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BytesPerRow = 4
	cfg.GroupSize = 2

	var buf bytes.Buffer
	if err := WriteText(&buf, cfg, Bytes{0, 1, 2, 3, 4}, 5, 2); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	want := "2         00 01\n" +
		"   02 03  04\n"
	if buf.String() != want {
		t.Errorf("WriteText() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteTextWithoutAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BytesPerRow = 8
	cfg.ShowAddress = false

	var buf bytes.Buffer
	if err := WriteText(&buf, cfg, sequential(10), 10, 0); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	want := "00 01 02 03  04 05 06 07\n08 09\n"
	if buf.String() != want {
		t.Errorf("WriteText() = %q, want %q", buf.String(), want)
	}
}

func TestTextRowsLandmarksAndPhases(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BytesPerRow = 32
	cfg.FadeInRows = 1
	cfg.FadeOutRows = 1

	rows, err := TextRows(cfg, sequential(256), 256, 0)
	if err != nil {
		t.Fatalf("TextRows() error = %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(rows))
	}
	wantLabels := []string{"00", "  ", "  ", "  ", "80", "  ", "  ", "  "}
	for i, r := range rows {
		if r.Label != wantLabels[i] {
			t.Errorf("row %d label = %q, want %q", i, r.Label, wantLabels[i])
		}
	}
	if rows[0].Phase != PhaseFadeIn || rows[3].Phase != PhaseBody || rows[7].Phase != PhaseFadeOut {
		t.Errorf("phases = %v, %v, %v", rows[0].Phase, rows[3].Phase, rows[7].Phase)
	}
}

func TestTextRowsDataIntegrity(t *testing.T) {
	_, err := TextRows(DefaultConfig(), Values{1, 2, 300}, 3, 0)
	if !hperrors.Is(err, hperrors.ErrCodeDataIntegrity) {
		t.Errorf("TextRows() error = %v, want DATA_INTEGRITY", err)
	}
}
