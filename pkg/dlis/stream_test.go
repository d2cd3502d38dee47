package dlis

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// parsedRecord is one reassembled logical record.
type parsedRecord struct {
	lrType  byte
	eflr    bool
	body    []byte
	nSegs   int
	segLens []int
}

// parsedStream is the outcome of walking a produced byte stream.
type parsedStream struct {
	sul     []byte
	vrLens  []int
	records []parsedRecord
}

// walkStream decodes the storage unit label, the visible record
// framing, and the segment framing of a produced stream, reassembling
// logical record bodies. It checks the structural invariants along the
// way.
func walkStream(t *testing.T, data []byte, maxRecordLength int) parsedStream {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 80, "stream shorter than a storage unit label")
	out := parsedStream{sul: data[:80]}
	rest := data[80:]

	var open *parsedRecord
	for len(rest) > 0 {
		require.GreaterOrEqual(t, len(rest), 4, "truncated visible record header")
		vrLen := int(binary.BigEndian.Uint16(rest[:2]))
		require.Equal(t, byte(0xFF), rest[2])
		require.Equal(t, byte(0x01), rest[3])
		require.GreaterOrEqual(t, vrLen, 4)
		require.LessOrEqual(t, vrLen, maxRecordLength, "visible record exceeds the configured maximum")
		require.Zero(t, vrLen%2, "visible record length must be even")
		require.LessOrEqual(t, vrLen, len(rest), "visible record runs past the stream")
		out.vrLens = append(out.vrLens, vrLen)

		segs := rest[4:vrLen]
		for len(segs) > 0 {
			require.GreaterOrEqual(t, len(segs), 4, "truncated segment header")
			segLen := int(binary.BigEndian.Uint16(segs[:2]))
			flags := segs[2]
			lrType := segs[3]
			require.GreaterOrEqual(t, segLen, 16, "segment below the 16-byte minimum")
			require.Zero(t, segLen%2, "segment length must be even")
			require.LessOrEqual(t, segLen, len(segs), "segment runs past its visible record")

			payload := segs[4:segLen]
			if flags&0x01 != 0 {
				require.Equal(t, byte(0x01), payload[len(payload)-1], "pad byte must carry the pad length")
				payload = payload[:len(payload)-1]
			}

			hasPred := flags&0x40 != 0
			hasSucc := flags&0x20 != 0
			if hasPred {
				require.NotNil(t, open, "continuation segment without an open record")
				require.Equal(t, open.lrType, lrType)
				open.body = append(open.body, payload...)
				open.nSegs++
				open.segLens = append(open.segLens, segLen)
			} else {
				require.Nil(t, open, "new record while another is still open")
				open = &parsedRecord{
					lrType:  lrType,
					eflr:    flags&0x80 != 0,
					body:    append([]byte(nil), payload...),
					nSegs:   1,
					segLens: []int{segLen},
				}
			}
			if !hasSucc {
				out.records = append(out.records, *open)
				open = nil
			}
			segs = segs[segLen:]
		}
		rest = rest[vrLen:]
	}
	require.Nil(t, open, "stream ended with an unterminated record")
	return out
}

// eflrRecords filters the reassembled records down to the explicitly
// formatted ones of the given type.
func (s parsedStream) eflrRecords(lrType byte) []parsedRecord {
	var out []parsedRecord
	for _, r := range s.records {
		if r.eflr && r.lrType == lrType {
			out = append(out, r)
		}
	}
	return out
}

// iflrRecords filters down to the indirectly formatted records of the
// given type.
func (s parsedStream) iflrRecords(lrType byte) []parsedRecord {
	var out []parsedRecord
	for _, r := range s.records {
		if !r.eflr && r.lrType == lrType {
			out = append(out, r)
		}
	}
	return out
}
