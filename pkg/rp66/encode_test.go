package rp66

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUvariBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x80}},
		{16383, []byte{0xBF, 0xFF}},
		{16384, []byte{0xC0, 0x00, 0x40, 0x00}},
		{MaxUvari, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tc := range cases {
		got, err := AppendUvari(nil, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "value %d", tc.value)
		assert.Equal(t, len(tc.want), UvariSize(tc.value))
	}

	_, err := AppendUvari(nil, MaxUvari+1)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, UVARI, encErr.Code)
}

func TestAppendDTime(t *testing.T) {
	t.Parallel()

	instant := time.Date(2023, time.July, 13, 11, 30, 45, 125_000_000, time.UTC)
	got, err := AppendDTime(nil, instant)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7B, 0x07, 0x0D, 0x0B, 0x1E, 0x2D, 0x00, 0x7D}, got)

	_, err = AppendDTime(nil, time.Date(1899, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
	_, err = AppendDTime(nil, time.Date(2156, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestAppendObname(t *testing.T) {
	t.Parallel()

	got, err := AppendObname(nil, 1, 0, "DEPTH")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x05, 'D', 'E', 'P', 'T', 'H'}, got)

	got, err = AppendObname(nil, 300, 2, "A")
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, uint16(300+0x8000), binary.BigEndian.Uint16(got[:2]))
	assert.Equal(t, byte(2), got[2])
}

func TestAppendObjref(t *testing.T) {
	t.Parallel()

	got, err := AppendObjref(nil, "CHANNEL", 1, 0, "RPM")
	require.NoError(t, err)
	want := []byte{0x07}
	want = append(want, "CHANNEL"...)
	want = append(want, 0x01, 0x00, 0x03)
	want = append(want, "RPM"...)
	assert.Equal(t, want, got)
}

func TestFloatRoundTrips(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1, -1, 7.5, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		b := AppendFDoubl(nil, v)
		require.Len(t, b, 8)
		assert.Equal(t, v, math.Float64frombits(binary.BigEndian.Uint64(b)))
	}
	for _, v := range []float32{0, 1, -2.25, math.MaxFloat32} {
		b := AppendFSingl(nil, v)
		require.Len(t, b, 4)
		assert.Equal(t, v, math.Float32frombits(binary.BigEndian.Uint32(b)))
	}
}

func TestFloat16Bits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float32
		want uint16
	}{
		{0, 0x0000},
		{1, 0x3C00},
		{-2, 0xC000},
		{0.5, 0x3800},
		// largest half-precision normal
		{65504, 0x7BFF},
		{float32(math.Inf(1)), 0x7C00},
		{float32(math.Inf(-1)), 0xFC00},
		// overflow saturates to infinity
		{1e9, 0x7C00},
		// smallest subnormal
		{5.9604645e-8, 0x0001},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, float16bits(tc.in), "value %v", tc.in)
	}
}

func TestIntegerRangeChecks(t *testing.T) {
	t.Parallel()

	ok := []struct {
		code Code
		v    int64
		want []byte
	}{
		{SSHORT, -128, []byte{0x80}},
		{SNORM, -1, []byte{0xFF, 0xFF}},
		{SLONG, 1 << 20, []byte{0x00, 0x10, 0x00, 0x00}},
		{USHORT, 255, []byte{0xFF}},
		{UNORM, 0x1234, []byte{0x12, 0x34}},
		{ULONG, math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tc := range ok {
		got, err := AppendInt(nil, tc.code, tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	bad := []struct {
		code Code
		v    int64
	}{
		{SSHORT, 128},
		{SNORM, 1 << 16},
		{USHORT, -1},
		{UNORM, 1 << 16},
		{ULONG, -5},
		{ASCII, 1},
	}
	for _, tc := range bad {
		_, err := AppendInt(nil, tc.code, tc.v)
		assert.Error(t, err, "%s %d", tc.code, tc.v)
	}
}

func TestAppendStrings(t *testing.T) {
	t.Parallel()

	got, err := AppendIdent(nil, "FRAME")
	require.NoError(t, err)
	assert.Equal(t, append([]byte{5}, "FRAME"...), got)

	_, err = AppendIdent(nil, "caf\xc3\xa9")
	assert.Error(t, err)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	_, err = AppendIdent(nil, string(long))
	assert.Error(t, err)

	got, err = AppendASCII(nil, string(long))
	require.NoError(t, err)
	assert.Equal(t, byte(0x81), got[0]) // two-byte UVARI length
	assert.Len(t, got, 302)

	_, err = AppendUnits(nil, "m/s")
	assert.NoError(t, err)
	_, err = AppendUnits(nil, "m^2")
	assert.Error(t, err)
}

func TestAppendStatus(t *testing.T) {
	t.Parallel()

	got, err := AppendStatus(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
	_, err = AppendStatus(nil, 2)
	assert.Error(t, err)
}

func TestInference(t *testing.T) {
	t.Parallel()

	assert.Equal(t, USHORT, InferInts([]int64{0, 255}))
	assert.Equal(t, UNORM, InferInts([]int64{0, 256}))
	assert.Equal(t, ULONG, InferInts([]int64{1 << 20}))
	assert.Equal(t, SSHORT, InferInts([]int64{-1, 100}))
	assert.Equal(t, SNORM, InferInts([]int64{-200}))
	assert.Equal(t, SLONG, InferInts([]int64{-70000}))

	assert.Equal(t, FSINGL, InferFloats([]float64{0.5, 1.25}))
	assert.Equal(t, FDOUBL, InferFloats([]float64{math.Pi}))

	assert.Equal(t, IDENT, InferString("DEPTH"))
	assert.Equal(t, ASCII, InferString("two words"))
}

func TestFixedSize(t *testing.T) {
	t.Parallel()

	for c, want := range map[Code]int{
		USHORT: 1, SSHORT: 1, STATUS: 1,
		UNORM: 2, SNORM: 2, FSHORT: 2,
		ULONG: 4, SLONG: 4, FSINGL: 4,
		FDOUBL: 8, DTIME: 8,
	} {
		got, ok := c.FixedSize()
		require.True(t, ok, c)
		assert.Equal(t, want, got, c)
	}
	for _, c := range []Code{UVARI, IDENT, ASCII, OBNAME, OBJREF, UNITS} {
		_, ok := c.FixedSize()
		assert.False(t, ok, c)
	}
}
