package rp66

import "math"

// InferInts returns the narrowest integer code that losslessly holds
// every value in vs. Unsigned codes are preferred for non-negative sets.
func InferInts(vs []int64) Code {
	if len(vs) == 0 {
		return SLONG
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo >= 0 {
		switch {
		case hi <= math.MaxUint8:
			return USHORT
		case hi <= math.MaxUint16:
			return UNORM
		case hi <= math.MaxUint32:
			return ULONG
		}
		return SLONG // out of 32-bit unsigned range; caller gets the overflow on encode
	}
	switch {
	case lo >= math.MinInt8 && hi <= math.MaxInt8:
		return SSHORT
	case lo >= math.MinInt16 && hi <= math.MaxInt16:
		return SNORM
	default:
		return SLONG
	}
}

// InferFloats returns FSINGL when every value survives a round trip
// through float32, FDOUBL otherwise.
func InferFloats(vs []float64) Code {
	for _, v := range vs {
		if float64(float32(v)) != v {
			return FDOUBL
		}
	}
	if len(vs) == 0 {
		return FDOUBL
	}
	return FSINGL
}

// InferString returns IDENT when s fits the IDENT charset and length,
// ASCII otherwise.
func InferString(s string) Code {
	if IdentSafe(s) {
		return IDENT
	}
	return ASCII
}
