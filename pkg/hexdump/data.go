package hexdump

// Data is the byte sequence being rendered.
//
// At returns an int rather than a byte so that sources decoded from looser
// formats (JSON arrays, text) can carry values the renderer must reject.
type Data interface {
	Len() int
	At(i int) int
}

// Bytes adapts a byte slice to [Data].
type Bytes []byte

func (b Bytes) Len() int     { return len(b) }
func (b Bytes) At(i int) int { return int(b[i]) }

// Values is a [Data] of arbitrary integers. Values outside 0..255 make the
// render fail with a data integrity error at the offending offset.
type Values []int

func (v Values) Len() int     { return len(v) }
func (v Values) At(i int) int { return v[i] }

// Ensure both adapters implement Data.
var (
	_ Data = Bytes(nil)
	_ Data = Values(nil)
)
