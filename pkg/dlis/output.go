package dlis

import (
	"fmt"
	"io"

	"github.com/samcharles93/dlis/pkg/rp66"
)

const vrHeaderSize = 4

// byteWriter pushes bytes to the sink, keeping a running total.
type byteWriter struct {
	w     io.Writer
	total int64
}

func (bw *byteWriter) write(p []byte) error {
	for len(p) > 0 {
		n, err := bw.w.Write(p)
		if err != nil {
			return fmt.Errorf("dlis: sink write failed: %w", err)
		}
		bw.total += int64(n)
		p = p[n:]
	}
	return nil
}

// bufferedOutput accumulates bytes up to the configured output chunk
// size before handing them to the sink. Byte slices added in one call
// are never split across flushes, so a visible record header always
// travels with its body.
type bufferedOutput struct {
	buf []byte
	max int
	bw  *byteWriter
}

func newBufferedOutput(size int, bw *byteWriter) *bufferedOutput {
	return &bufferedOutput{buf: make([]byte, 0, size), max: size, bw: bw}
}

func (o *bufferedOutput) add(p []byte) error {
	if len(o.buf)+len(p) > o.max {
		if err := o.flush(); err != nil {
			return err
		}
	}
	if len(p) > o.max {
		return o.bw.write(p)
	}
	o.buf = append(o.buf, p...)
	return nil
}

func (o *bufferedOutput) flush() error {
	if len(o.buf) == 0 {
		return nil
	}
	if err := o.bw.write(o.buf); err != nil {
		return err
	}
	o.buf = o.buf[:0]
	return nil
}

// vrPacker packs logical record segments into visible records of at
// most maxLength bytes each, including the 4-byte visible record
// header.
type vrPacker struct {
	maxLength int
	vr        []byte // body of the visible record under construction
	out       *bufferedOutput
}

func newVRPacker(maxLength int, out *bufferedOutput) *vrPacker {
	return &vrPacker{maxLength: maxLength, out: out}
}

// addSegment appends one segment, starting a new visible record when
// the current one cannot take it. A segment is never split across
// visible records.
func (p *vrPacker) addSegment(seg []byte) error {
	if vrHeaderSize+len(seg) > p.maxLength {
		return configErr("segment of %d bytes does not fit a visible record of %d", len(seg), p.maxLength)
	}
	if vrHeaderSize+len(p.vr)+len(seg) > p.maxLength {
		if err := p.flushVR(); err != nil {
			return err
		}
	}
	p.vr = append(p.vr, seg...)
	return nil
}

// flushVR emits the visible record under construction: UNORM length,
// 0xFF, format version 1, then the packed segments.
func (p *vrPacker) flushVR() error {
	if len(p.vr) == 0 {
		return nil
	}
	header := make([]byte, 0, vrHeaderSize)
	header = rp66.AppendUNorm(header, uint16(vrHeaderSize+len(p.vr)))
	header = append(header, 0xFF, 0x01)
	if err := p.out.add(append(header, p.vr...)); err != nil {
		return err
	}
	p.vr = p.vr[:0]
	return nil
}

// finish emits the pending visible record and drains the buffer.
func (p *vrPacker) finish() error {
	if err := p.flushVR(); err != nil {
		return err
	}
	return p.out.flush()
}
