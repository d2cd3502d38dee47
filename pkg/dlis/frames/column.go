// Package frames supplies the data side of frame records: typed columns,
// chunked cursors over tabular sources, and the per-row encoding of
// frame-data and no-format records.
package frames

import (
	"fmt"

	"github.com/samcharles93/dlis/pkg/rp66"
)

// Column is one dataset: a typed, row-major block of samples with a
// fixed number of samples per row. The zero Column is empty.
type Column struct {
	code  rp66.Code
	width int

	f64 []float64
	f32 []float32
	i32 []int32
	i16 []int16
	i8  []int8
	u32 []uint32
	u16 []uint16
	u8  []uint8
}

// Float64s wraps vals as a scalar column of doubles.
func Float64s(vals []float64) Column { return Column{code: rp66.FDOUBL, width: 1, f64: vals} }

// Float32s wraps vals as a scalar column of singles.
func Float32s(vals []float32) Column { return Column{code: rp66.FSINGL, width: 1, f32: vals} }

// Int32s wraps vals as a scalar column of signed 32-bit integers.
func Int32s(vals []int32) Column { return Column{code: rp66.SLONG, width: 1, i32: vals} }

// Int16s wraps vals as a scalar column of signed 16-bit integers.
func Int16s(vals []int16) Column { return Column{code: rp66.SNORM, width: 1, i16: vals} }

// Int8s wraps vals as a scalar column of signed 8-bit integers.
func Int8s(vals []int8) Column { return Column{code: rp66.SSHORT, width: 1, i8: vals} }

// Uint32s wraps vals as a scalar column of unsigned 32-bit integers.
func Uint32s(vals []uint32) Column { return Column{code: rp66.ULONG, width: 1, u32: vals} }

// Uint16s wraps vals as a scalar column of unsigned 16-bit integers.
func Uint16s(vals []uint16) Column { return Column{code: rp66.UNORM, width: 1, u16: vals} }

// Uint8s wraps vals as a scalar column of unsigned 8-bit integers.
func Uint8s(vals []uint8) Column { return Column{code: rp66.USHORT, width: 1, u8: vals} }

// Float64Matrix wraps a rectangular matrix as a column with one row per
// outer element.
func Float64Matrix(rows [][]float64) (Column, error) {
	if len(rows) == 0 {
		return Column{}, fmt.Errorf("frames: empty matrix")
	}
	width := len(rows[0])
	if width == 0 {
		return Column{}, fmt.Errorf("frames: matrix rows must not be empty")
	}
	flat := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return Column{}, fmt.Errorf("frames: matrix row %d has %d samples; expected %d", i, len(row), width)
		}
		flat = append(flat, row...)
	}
	return Column{code: rp66.FDOUBL, width: width, f64: flat}, nil
}

// WithWidth reshapes the column to the given samples-per-row width; the
// flat length must divide evenly.
func (c Column) WithWidth(width int) (Column, error) {
	if width < 1 {
		return Column{}, fmt.Errorf("frames: width must be positive; got %d", width)
	}
	if c.flatLen()%width != 0 {
		return Column{}, fmt.Errorf("frames: %d samples do not divide into rows of %d", c.flatLen(), width)
	}
	c.width = width
	return c, nil
}

// Code returns the natural representation code of the column data.
func (c Column) Code() rp66.Code { return c.code }

// Width returns the number of samples per row.
func (c Column) Width() int { return c.width }

// Rows returns the number of rows.
func (c Column) Rows() int {
	if c.width == 0 {
		return 0
	}
	return c.flatLen() / c.width
}

func (c Column) flatLen() int {
	switch c.code {
	case rp66.FDOUBL:
		return len(c.f64)
	case rp66.FSINGL:
		return len(c.f32)
	case rp66.SLONG:
		return len(c.i32)
	case rp66.SNORM:
		return len(c.i16)
	case rp66.SSHORT:
		return len(c.i8)
	case rp66.ULONG:
		return len(c.u32)
	case rp66.UNORM:
		return len(c.u16)
	case rp66.USHORT:
		return len(c.u8)
	}
	return 0
}

// Slice returns the rows [from, to) as a column sharing the backing
// data.
func (c Column) Slice(from, to int) Column {
	lo, hi := from*c.width, to*c.width
	out := c
	switch c.code {
	case rp66.FDOUBL:
		out.f64 = c.f64[lo:hi]
	case rp66.FSINGL:
		out.f32 = c.f32[lo:hi]
	case rp66.SLONG:
		out.i32 = c.i32[lo:hi]
	case rp66.SNORM:
		out.i16 = c.i16[lo:hi]
	case rp66.SSHORT:
		out.i8 = c.i8[lo:hi]
	case rp66.ULONG:
		out.u32 = c.u32[lo:hi]
	case rp66.UNORM:
		out.u16 = c.u16[lo:hi]
	case rp66.USHORT:
		out.u8 = c.u8[lo:hi]
	}
	return out
}

// FloatAt returns sample idx of the given row as a float64.
func (c Column) FloatAt(row, idx int) float64 {
	i := row*c.width + idx
	switch c.code {
	case rp66.FDOUBL:
		return c.f64[i]
	case rp66.FSINGL:
		return float64(c.f32[i])
	case rp66.SLONG:
		return float64(c.i32[i])
	case rp66.SNORM:
		return float64(c.i16[i])
	case rp66.SSHORT:
		return float64(c.i8[i])
	case rp66.ULONG:
		return float64(c.u32[i])
	case rp66.UNORM:
		return float64(c.u16[i])
	case rp66.USHORT:
		return float64(c.u8[i])
	}
	return 0
}

// MinMax returns the smallest and largest sample of the column.
func (c Column) MinMax() (float64, float64) {
	n := c.flatLen()
	if n == 0 {
		return 0, 0
	}
	lo, hi := c.FloatAt(0, 0), c.FloatAt(0, 0)
	for i := 1; i < n; i++ {
		v := c.FloatAt(i/c.width, i%c.width)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// AppendRow appends row's samples big-endian under the given target
// code. When the target code differs from the column's natural code the
// samples are converted; a sample that cannot be represented reports an
// encode error.
func (c Column) AppendRow(dst []byte, row int, code rp66.Code) ([]byte, error) {
	if code == c.code {
		return c.appendRowNative(dst, row), nil
	}
	var err error
	for idx := 0; idx < c.width; idx++ {
		v := c.FloatAt(row, idx)
		switch {
		case code.IsFloat():
			dst, err = rp66.AppendFloat(dst, code, v)
		case code.IsInteger():
			if v != float64(int64(v)) {
				return dst, &rp66.EncodeError{Code: code, Value: v, Reason: "not an integer"}
			}
			dst, err = rp66.AppendInt(dst, code, int64(v))
		default:
			return dst, &rp66.EncodeError{Code: code, Value: v, Reason: "not a frame data code"}
		}
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

func (c Column) appendRowNative(dst []byte, row int) []byte {
	lo, hi := row*c.width, (row+1)*c.width
	switch c.code {
	case rp66.FDOUBL:
		for _, v := range c.f64[lo:hi] {
			dst = rp66.AppendFDoubl(dst, v)
		}
	case rp66.FSINGL:
		for _, v := range c.f32[lo:hi] {
			dst = rp66.AppendFSingl(dst, v)
		}
	case rp66.SLONG:
		for _, v := range c.i32[lo:hi] {
			dst = rp66.AppendSLong(dst, v)
		}
	case rp66.SNORM:
		for _, v := range c.i16[lo:hi] {
			dst = rp66.AppendSNorm(dst, v)
		}
	case rp66.SSHORT:
		for _, v := range c.i8[lo:hi] {
			dst = rp66.AppendSShort(dst, v)
		}
	case rp66.ULONG:
		for _, v := range c.u32[lo:hi] {
			dst = rp66.AppendULong(dst, v)
		}
	case rp66.UNORM:
		for _, v := range c.u16[lo:hi] {
			dst = rp66.AppendUNorm(dst, v)
		}
	case rp66.USHORT:
		for _, v := range c.u8[lo:hi] {
			dst = rp66.AppendUShort(dst, v)
		}
	}
	return dst
}
