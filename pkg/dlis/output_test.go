package dlis

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVRPackerGroupsSegments(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	bw := &byteWriter{w: &sink}
	out := newBufferedOutput(1<<16, bw)
	packer := newVRPacker(100, out)

	seg := make([]byte, 40)
	for i := 0; i < 4; i++ {
		require.NoError(t, packer.addSegment(seg))
	}
	require.NoError(t, packer.finish())

	raw := sink.Bytes()
	// 100-byte ceiling fits two 40-byte segments per visible record.
	require.Len(t, raw, 2*(4+80))
	first := binary.BigEndian.Uint16(raw[:2])
	assert.Equal(t, uint16(84), first)
	assert.Equal(t, byte(0xFF), raw[2])
	assert.Equal(t, byte(0x01), raw[3])
	second := binary.BigEndian.Uint16(raw[84 : 84+2])
	assert.Equal(t, uint16(84), second)
}

func TestVRPackerRejectsOversizedSegment(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	packer := newVRPacker(64, newBufferedOutput(1<<16, &byteWriter{w: &sink}))
	err := packer.addSegment(make([]byte, 64))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestBufferedOutputFlushDiscipline(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	bw := &byteWriter{w: &sink}
	out := newBufferedOutput(10, bw)

	require.NoError(t, out.add([]byte("abcdef")))
	assert.Zero(t, sink.Len(), "bytes are held until the buffer fills")

	require.NoError(t, out.add([]byte("ghijk")))
	assert.Equal(t, "abcdef", sink.String(), "the overflowing add flushes the prior bytes whole")

	// A slice larger than the buffer bypasses it after a flush.
	require.NoError(t, out.add(bytes.Repeat([]byte{'x'}, 25)))
	assert.Equal(t, len("abcdefghijk")+25, sink.Len())

	require.NoError(t, out.flush())
	assert.Equal(t, int64(sink.Len()), bw.total)
}
