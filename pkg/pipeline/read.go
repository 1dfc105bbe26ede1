package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jebreimo/HexPic/pkg/cache"
	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/hexdump"
	hexio "github.com/jebreimo/HexPic/pkg/io"
	"github.com/jebreimo/HexPic/pkg/observability"
)

// Read loads the input named by opts.Input.
//
// Binary files are read from opts.Address for opts.Count bytes, and the
// resolved address of the first byte becomes the start address. JSON
// documents (opts.JSON) carry their own address and are rendered whole.
func Read(ctx context.Context, opts Options) (Input, error) {
	if opts.Input == "" {
		return Input{}, errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	observability.Pipeline().OnReadStart(ctx, opts.Input)
	start := time.Now()

	in, err := read(opts)
	observability.Pipeline().OnReadComplete(ctx, opts.Input, in.dataLen(), time.Since(start), err)
	if err != nil {
		return Input{}, err
	}
	return in, nil
}

func read(opts Options) (Input, error) {
	if opts.JSON {
		doc, err := hexio.ImportJSON(opts.Input)
		if err != nil {
			return Input{}, err
		}
		return ValuesInput(opts.Input, doc.Address, doc.Data), nil
	}
	r, err := hexio.ReadRange(opts.Input, opts.Address, opts.Count)
	if err != nil {
		return Input{}, err
	}
	in := BytesInput(opts.Input, r.Address, r.Data)
	in.Count = opts.Count
	return in, nil
}

// BytesInput wraps raw bytes. Count defaults to len(data).
func BytesInput(source string, address int64, data []byte) Input {
	return Input{
		Source:  source,
		Address: address,
		Count:   len(data),
		Data:    hexdump.Bytes(data),
		Hash:    cache.Hash(data),
	}
}

// ValuesInput wraps integer byte values that have not been range-checked.
func ValuesInput(source string, address int64, values []int) Input {
	encoded, _ := json.Marshal(values)
	return Input{
		Source:  source,
		Address: address,
		Count:   len(values),
		Data:    hexdump.Values(values),
		Hash:    cache.Hash(append([]byte("values:"), encoded...)),
	}
}

func (in Input) dataLen() int {
	if in.Data == nil {
		return 0
	}
	return in.Data.Len()
}
