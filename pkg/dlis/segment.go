package dlis

import (
	"github.com/samcharles93/dlis/pkg/rp66"
)

// Logical record segment framing constants.
const (
	segHeaderSize  = 4
	minSegmentBody = 12
	padByte        = 0x01
)

// Segment attribute flag bits, MSB first.
const (
	segFlagEFLR        = 1 << 7
	segFlagPredecessor = 1 << 6
	segFlagSuccessor   = 1 << 5
	segFlagPadding     = 1 << 0
)

// forEachSegment splits a logical record body into segments of at most
// maxBody payload bytes and hands each complete segment (header,
// payload, optional pad byte) to emit. Split points are chosen so that
// no segment payload falls under the 12-byte minimum. The slice passed
// to emit is reused between calls.
func forEachSegment(body []byte, lrType uint8, isEFLR bool, maxBody int, emit func(seg []byte) error) error {
	if maxBody < 2*minSegmentBody {
		return configErr("maximum segment body %d is below the smallest splittable size %d", maxBody, 2*minSegmentBody)
	}
	if len(body) < minSegmentBody {
		return configErr("logical record body of %d bytes is below the %d-byte minimum", len(body), minSegmentBody)
	}

	var seg []byte
	start := 0
	for start < len(body) {
		remaining := len(body) - start
		n := remaining
		if n > maxBody {
			n = maxBody
		}
		if future := remaining - n; future > 0 && future < minSegmentBody {
			n -= minSegmentBody - future
		}

		size := n + segHeaderSize
		padded := size%2 != 0
		if padded {
			size++
		}

		flags := byte(0)
		if isEFLR {
			flags |= segFlagEFLR
		}
		if start > 0 {
			flags |= segFlagPredecessor
		}
		if start+n < len(body) {
			flags |= segFlagSuccessor
		}
		if padded {
			flags |= segFlagPadding
		}

		seg = seg[:0]
		seg = rp66.AppendUNorm(seg, uint16(size))
		seg = append(seg, flags, lrType)
		seg = append(seg, body[start:start+n]...)
		if padded {
			seg = append(seg, padByte)
		}

		if err := emit(seg); err != nil {
			return err
		}
		start += n
	}
	return nil
}
