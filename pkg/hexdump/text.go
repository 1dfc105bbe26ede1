package hexdump

import (
	"bufio"
	"io"
	"strings"

	"github.com/jebreimo/HexPic/pkg/errors"
)

// TextRow is one row of a text preview.
type TextRow struct {
	Label string // address label, or spaces when the row has none
	Hex   string // byte pairs separated by one space, plus one more after each group
	Phase Phase
}

// TextRows lays out the same grid as [Render] as text: one character per
// cell, one space per byte gap and one more per group gap. Address labels
// follow the same first-row and landmark rules; fade bands are reported via
// Phase since text has no alpha.
func TextRows(cfg Config, data Data, count int, address int64) ([]TextRow, error) {
	g, err := Layout(cfg, &Metrics{CellWidth: 1, CellHeight: 1}, count, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = Bytes(nil)
	}
	seps := GroupSeparators(cfg)
	end := min(count, data.Len())
	blank := strings.Repeat(" ", g.AddressDigits)

	rows := make([]TextRow, 0, g.Rows)
	next := 0
	for row := 0; row < g.Rows; row++ {
		tr := TextRow{Label: blank, Phase: RowPhase(cfg, g.Rows, row)}
		rowAddr := address + int64(next)
		if cfg.ShowAddress && (row == 0 || IsLandmark(rowAddr)) {
			tr.Label = FormatAddress(uint64(rowAddr), g.AddressDigits)
		}

		var sb strings.Builder
		col := 0
		if row == 0 {
			col = g.FirstColumn
			for c := 0; c < col; c++ {
				sb.WriteString("   ")
				if seps[c] > 0 {
					sb.WriteByte(' ')
				}
			}
		}
		for ; col < cfg.BytesPerRow && next < end; col++ {
			v := data.At(next)
			if v < 0 || v > 0xff {
				return nil, dataIntegrityError(next, address+int64(next), row, col, v)
			}
			sb.WriteString(FormatAddress(uint64(v), 2))
			sb.WriteByte(' ')
			if seps[col] > 0 {
				sb.WriteByte(' ')
			}
			next++
		}
		tr.Hex = strings.TrimRight(sb.String(), " ")
		rows = append(rows, tr)
	}
	return rows, nil
}

// WriteText writes the text preview to w, one row per line.
func WriteText(w io.Writer, cfg Config, data Data, count int, address int64) error {
	rows, err := TextRows(cfg, data, count, address)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if cfg.ShowAddress {
			bw.WriteString(r.Label)
			bw.WriteString("  ")
		}
		bw.WriteString(r.Hex)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write text dump")
	}
	return nil
}
