// Package rp66 implements the representation codes of the RP66 v1 (DLIS)
// standard: the on-wire byte layouts used for every primitive value in a
// DLIS file.
//
// All multi-byte values are big-endian regardless of the host byte order.
// The encoders that return an error never truncate silently; a value
// outside the domain of its code is reported as an *EncodeError.
package rp66

import "fmt"

// Code selects an on-wire byte layout, as listed in RP66 v1 Appendix B.
type Code uint8

const (
	FSHORT Code = 1  // 16-bit IEEE 754 float
	FSINGL Code = 2  // 32-bit IEEE 754 float
	FSING1 Code = 3  // two FSINGL (value + bound)
	FSING2 Code = 4  // three FSINGL (value + two bounds)
	ISINGL Code = 5  // IBM single-precision float (written as SLONG bit pattern)
	VSINGL Code = 6  // VAX single-precision float (written as SLONG bit pattern)
	FDOUBL Code = 7  // 64-bit IEEE 754 float
	FDOUB1 Code = 8  // two FDOUBL
	FDOUB2 Code = 9  // three FDOUBL
	CSINGL Code = 10 // complex, two FSINGL
	CDOUBL Code = 11 // complex, two FDOUBL
	SSHORT Code = 12 // signed 8-bit integer
	SNORM  Code = 13 // signed 16-bit integer
	SLONG  Code = 14 // signed 32-bit integer
	USHORT Code = 15 // unsigned 8-bit integer
	UNORM  Code = 16 // unsigned 16-bit integer
	ULONG  Code = 17 // unsigned 32-bit integer
	UVARI  Code = 18 // variable-length unsigned integer (1, 2, or 4 bytes)
	IDENT  Code = 19 // short identifier string
	ASCII  Code = 20 // length-prefixed ASCII string
	DTIME  Code = 21 // calendar date and time
	ORIGIN Code = 22 // origin reference (UVARI)
	OBNAME Code = 23 // object name: origin + copy number + identifier
	OBJREF Code = 24 // typed object reference: set type + OBNAME
	ATTREF Code = 25 // attribute reference
	STATUS Code = 26 // boolean flag, 0 or 1
	UNITS  Code = 27 // units expression (restricted character set)
)

var codeNames = map[Code]string{
	FSHORT: "FSHORT", FSINGL: "FSINGL", FSING1: "FSING1", FSING2: "FSING2",
	ISINGL: "ISINGL", VSINGL: "VSINGL", FDOUBL: "FDOUBL", FDOUB1: "FDOUB1",
	FDOUB2: "FDOUB2", CSINGL: "CSINGL", CDOUBL: "CDOUBL", SSHORT: "SSHORT",
	SNORM: "SNORM", SLONG: "SLONG", USHORT: "USHORT", UNORM: "UNORM",
	ULONG: "ULONG", UVARI: "UVARI", IDENT: "IDENT", ASCII: "ASCII",
	DTIME: "DTIME", ORIGIN: "ORIGIN", OBNAME: "OBNAME", OBJREF: "OBJREF",
	ATTREF: "ATTREF", STATUS: "STATUS", UNITS: "UNITS",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// Valid reports whether c is one of the codes defined by the standard.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// FixedSize returns the encoded size in bytes of a value of code c, when
// that size does not depend on the value. The second return is false for
// the variable-length codes (UVARI, IDENT, ASCII, UNITS, ORIGIN, OBNAME,
// OBJREF, ATTREF).
func (c Code) FixedSize() (int, bool) {
	switch c {
	case SSHORT, USHORT, STATUS:
		return 1, true
	case FSHORT, SNORM, UNORM:
		return 2, true
	case FSINGL, ISINGL, VSINGL, SLONG, ULONG:
		return 4, true
	case FSING1, CSINGL, FDOUBL, DTIME:
		return 8, true
	case FSING2:
		return 12, true
	case FDOUB1, CDOUBL:
		return 16, true
	case FDOUB2:
		return 24, true
	default:
		return 0, false
	}
}

// IsInteger reports whether c encodes integer values.
func (c Code) IsInteger() bool {
	switch c {
	case SSHORT, SNORM, SLONG, USHORT, UNORM, ULONG, UVARI:
		return true
	}
	return false
}

// IsUnsigned reports whether c encodes unsigned integer values.
func (c Code) IsUnsigned() bool {
	switch c {
	case USHORT, UNORM, ULONG, UVARI:
		return true
	}
	return false
}

// IsFloat reports whether c encodes floating-point values.
func (c Code) IsFloat() bool {
	switch c {
	case FSHORT, FSINGL, FDOUBL:
		return true
	}
	return false
}

// IsNumeric reports whether c encodes plain numeric values.
func (c Code) IsNumeric() bool {
	return c.IsInteger() || c.IsFloat()
}

// IsString reports whether c encodes character data.
func (c Code) IsString() bool {
	switch c {
	case IDENT, ASCII, UNITS:
		return true
	}
	return false
}

// IsReference reports whether c encodes a reference to another object.
func (c Code) IsReference() bool {
	switch c {
	case OBNAME, OBJREF, ATTREF:
		return true
	}
	return false
}
