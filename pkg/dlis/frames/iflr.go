package frames

import (
	"fmt"

	"github.com/samcharles93/dlis/pkg/dlis/eflr"
	"github.com/samcharles93/dlis/pkg/rp66"
)

// minIFLRBody is the smallest logical record body; shorter no-format
// bodies are padded up to it.
const minIFLRBody = 12

// RowEncoder turns one source row into a frame-data IFLR body: the frame
// reference, the 1-based frame number, and the channel samples in frame
// order, byte-swapped to big-endian.
type RowEncoder struct {
	obname  []byte
	keys    []string
	codes   []rp66.Code
	widths  []int
	rowSize int
}

// NewRowEncoder prepares the encoder for a frame. Every channel must
// have a fixed-size representation code assigned by this point.
func NewRowEncoder(frame *eflr.Frame) (*RowEncoder, error) {
	obname, err := frame.AppendObname(nil)
	if err != nil {
		return nil, err
	}
	channels := frame.Channels()
	enc := &RowEncoder{
		obname: obname,
		keys:   make([]string, len(channels)),
		codes:  make([]rp66.Code, len(channels)),
		widths: make([]int, len(channels)),
	}
	for i, ch := range channels {
		code := ch.RepCode()
		size, ok := code.FixedSize()
		if !ok || !code.IsNumeric() {
			return nil, &DataError{Dataset: ch.DatasetKey(),
				Detail: fmt.Sprintf("channel %s has no fixed-size numeric representation code", ch.Name())}
		}
		enc.keys[i] = ch.DatasetKey()
		enc.codes[i] = code
		enc.widths[i] = ch.Width()
		enc.rowSize += size * ch.Width()
	}
	return enc, nil
}

// RowSize returns the encoded size of the channel samples of one row,
// excluding the frame reference and frame number.
func (e *RowEncoder) RowSize() int { return e.rowSize }

// Keys returns the dataset keys the encoder reads, in frame order.
func (e *RowEncoder) Keys() []string { return e.keys }

// ValidateChunk checks that the chunk carries every dataset with the
// declared width.
func (e *RowEncoder) ValidateChunk(chunk Chunk) error {
	for i, key := range e.keys {
		col, ok := chunk.Column(key)
		if !ok {
			return &DataError{Dataset: key, Detail: "missing from the source chunk"}
		}
		if col.Width() != e.widths[i] {
			return &DataError{Dataset: key,
				Detail: fmt.Sprintf("has %d samples per row; channel declares %d", col.Width(), e.widths[i])}
		}
	}
	return nil
}

// AppendRow appends the IFLR body for one row of the chunk.
func (e *RowEncoder) AppendRow(dst []byte, chunk Chunk, row int, frameNumber uint32) ([]byte, error) {
	dst = append(dst, e.obname...)
	dst, err := rp66.AppendUvari(dst, frameNumber)
	if err != nil {
		return dst, err
	}
	for i, key := range e.keys {
		col, ok := chunk.Column(key)
		if !ok {
			return dst, &DataError{Dataset: key, Detail: "missing from the source chunk"}
		}
		if dst, err = col.AppendRow(dst, row, e.codes[i]); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// NoFormatBody builds the body of a no-format IFLR: the no-format
// object's reference followed by the opaque payload, padded to the
// minimum record body length.
func NoFormatBody(target *eflr.NoFormat, data []byte) ([]byte, error) {
	dst, err := target.AppendObname(nil)
	if err != nil {
		return nil, err
	}
	dst = append(dst, data...)
	for len(dst) < minIFLRBody {
		dst = append(dst, 0x01)
	}
	return dst, nil
}
