// Package eflr models Explicitly Formatted Logical Records: typed
// attributes, object items, and the sets that carry them as attribute-
// templated tables in a DLIS file.
package eflr

import (
	"fmt"
	"time"

	"github.com/samcharles93/dlis/pkg/rp66"
)

// Kind discriminates the payload of a Scalar.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindString
	KindTime
	KindRef
)

// Scalar is one attribute element: a tagged union over the value kinds an
// attribute can carry.
type Scalar struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
	Time  time.Time
	Ref   *Item
}

func intScalar(v int64) Scalar      { return Scalar{Kind: KindInt, Int: v} }
func floatScalar(v float64) Scalar  { return Scalar{Kind: KindFloat, Float: v} }
func strScalar(v string) Scalar     { return Scalar{Kind: KindString, Str: v} }
func timeScalar(v time.Time) Scalar { return Scalar{Kind: KindTime, Time: v} }
func refScalar(v *Item) Scalar      { return Scalar{Kind: KindRef, Ref: v} }

// attrKind selects the validation rules of an attribute. Serialisation is
// shared; only the accepted values and codes differ.
type attrKind uint8

const (
	attrGeneric attrKind = iota
	attrText              // ASCII free text
	attrIdent             // IDENT names and dictionary terms
	attrNumeric           // any numeric code
	attrInteger           // integer codes only
	attrDimension         // UVARI vector of positive integers
	attrRef               // OBNAME/OBJREF object references
	attrDTime             // calendar instant, or elapsed number with units
	attrStatus            // USHORT flag, 0 or 1
)

// Attribute is one labelled, typed field of an Item. Its value may be a
// single scalar, an ordered list, or a list of equally sized rows.
type Attribute struct {
	label       string
	kind        attrKind
	multivalued bool
	multidim    bool

	code        rp66.Code // explicitly assigned; 0 when unset
	defaultCode rp66.Code // fixed by the object class; 0 when free
	units       string
	vals        []Scalar
	rows        int // number of rows when a nested value was set
}

// attribute option constructors used by the object class definitions.

func textAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrText, defaultCode: rp66.ASCII}
}

func textListAttr(label string) *Attribute {
	a := textAttr(label)
	a.multivalued = true
	return a
}

func identAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrIdent, defaultCode: rp66.IDENT}
}

func identListAttr(label string) *Attribute {
	a := identAttr(label)
	a.multivalued = true
	return a
}

func numericAttr(label string, code rp66.Code) *Attribute {
	return &Attribute{label: label, kind: attrNumeric, code: code}
}

func numericListAttr(label string, code rp66.Code) *Attribute {
	a := numericAttr(label, code)
	a.multivalued = true
	return a
}

func measurementAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrNumeric, multivalued: true, multidim: true}
}

func integerAttr(label string, code rp66.Code) *Attribute {
	return &Attribute{label: label, kind: attrInteger, code: code}
}

func dimensionAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrDimension, code: rp66.UVARI, multivalued: true}
}

func refAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrRef, defaultCode: rp66.OBNAME}
}

func refListAttr(label string) *Attribute {
	a := refAttr(label)
	a.multivalued = true
	return a
}

func objrefListAttr(label string) *Attribute {
	a := refListAttr(label)
	a.defaultCode = rp66.OBJREF
	return a
}

func objrefAttr(label string) *Attribute {
	a := refAttr(label)
	a.defaultCode = rp66.OBJREF
	return a
}

func dtimeAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrDTime, defaultCode: rp66.DTIME}
}

func statusAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrStatus, code: rp66.USHORT}
}

// Label returns the attribute's label as written in the set template.
func (a *Attribute) Label() string { return a.label }

// Multivalued reports whether the attribute accepts a list of values.
func (a *Attribute) Multivalued() bool { return a.multivalued }

// HasValue reports whether a value has been assigned.
func (a *Attribute) HasValue() bool { return len(a.vals) > 0 }

// Count returns the number of scalar elements of the current value, with
// nested rows flattened. It is 1 for unset single-valued attributes.
func (a *Attribute) Count() int {
	if len(a.vals) == 0 {
		return 1
	}
	return len(a.vals)
}

// Rows returns the declared row count of a nested value, or 0 when the
// value is flat.
func (a *Attribute) Rows() int { return a.rows }

// Units returns the units expression, empty when unset.
func (a *Attribute) Units() string { return a.units }

// SetUnits assigns a units expression. Reference-valued attributes cannot
// carry units.
func (a *Attribute) SetUnits(units string) error {
	if a.kind == attrRef {
		return valueErr(a.label, ErrInvalidCount, "reference attributes cannot carry units")
	}
	if !rp66.IdentSafe(units) {
		return valueErr(a.label, ErrInvalidCharset, fmt.Sprintf("units %q are not IDENT-safe", units))
	}
	a.units = units
	return nil
}

// Code returns the representation code in force: the explicitly assigned
// one, the class default, or a code inferred from the value.
func (a *Attribute) Code() rp66.Code {
	if a.code != 0 {
		return a.code
	}
	if a.defaultCode != 0 {
		// A date-time attribute holding an elapsed number is written
		// with a numeric code instead of DTIME.
		if a.defaultCode == rp66.DTIME && len(a.vals) > 0 && a.vals[0].Kind != KindTime {
			return a.inferCode()
		}
		return a.defaultCode
	}
	return a.inferCode()
}

// SetCode assigns an explicit representation code, checked against the
// attribute's allowed set.
func (a *Attribute) SetCode(c rp66.Code) error {
	if !c.Valid() {
		return valueErr(a.label, ErrInvalidCode, fmt.Sprintf("unknown representation code %d", uint8(c)))
	}
	ok := true
	switch a.kind {
	case attrText:
		ok = c == rp66.ASCII || c == rp66.IDENT
	case attrIdent:
		ok = c == rp66.IDENT
	case attrNumeric:
		ok = c.IsNumeric()
	case attrInteger, attrDimension:
		ok = c.IsInteger()
	case attrRef:
		ok = c == rp66.OBNAME || c == rp66.OBJREF
	case attrDTime:
		ok = c == rp66.DTIME || c.IsNumeric()
	case attrStatus:
		ok = c == rp66.USHORT
	}
	if !ok {
		return valueErr(a.label, ErrInvalidCode, fmt.Sprintf("code %s is not allowed here", c))
	}
	a.code = c
	return nil
}

func (a *Attribute) inferCode() rp66.Code {
	if len(a.vals) == 0 {
		return 0
	}
	switch a.vals[0].Kind {
	case KindInt:
		ints := make([]int64, len(a.vals))
		allInt := true
		for i, v := range a.vals {
			if v.Kind == KindFloat {
				allInt = false
				break
			}
			ints[i] = v.Int
		}
		if allInt {
			return rp66.InferInts(ints)
		}
		fallthrough
	case KindFloat:
		floats := make([]float64, len(a.vals))
		for i, v := range a.vals {
			if v.Kind == KindInt {
				floats[i] = float64(v.Int)
			} else {
				floats[i] = v.Float
			}
		}
		return rp66.InferFloats(floats)
	case KindString:
		code := rp66.IDENT
		for _, v := range a.vals {
			if rp66.InferString(v.Str) == rp66.ASCII {
				code = rp66.ASCII
			}
		}
		return code
	case KindTime:
		return rp66.DTIME
	case KindRef:
		return rp66.OBNAME
	}
	return 0
}

// Scalars returns the flattened value elements.
func (a *Attribute) Scalars() []Scalar { return a.vals }

// Ints returns the value elements as integers. Float elements are
// reported only if integral.
func (a *Attribute) Ints() []int64 {
	out := make([]int64, 0, len(a.vals))
	for _, v := range a.vals {
		switch v.Kind {
		case KindInt:
			out = append(out, v.Int)
		case KindFloat:
			if i := int64(v.Float); float64(i) == v.Float {
				out = append(out, i)
			}
		}
	}
	return out
}

// Floats returns the numeric value elements as float64.
func (a *Attribute) Floats() []float64 {
	out := make([]float64, 0, len(a.vals))
	for _, v := range a.vals {
		switch v.Kind {
		case KindInt:
			out = append(out, float64(v.Int))
		case KindFloat:
			out = append(out, v.Float)
		}
	}
	return out
}

// Strings returns the string value elements.
func (a *Attribute) Strings() []string {
	out := make([]string, 0, len(a.vals))
	for _, v := range a.vals {
		if v.Kind == KindString {
			out = append(out, v.Str)
		}
	}
	return out
}

// Refs returns the referenced items.
func (a *Attribute) Refs() []*Item {
	out := make([]*Item, 0, len(a.vals))
	for _, v := range a.vals {
		if v.Kind == KindRef {
			out = append(out, v.Ref)
		}
	}
	return out
}

// FirstString returns the first string element, empty when none.
func (a *Attribute) FirstString() string {
	if len(a.vals) > 0 && a.vals[0].Kind == KindString {
		return a.vals[0].Str
	}
	return ""
}

// FirstTime returns the first time element and whether one is present.
func (a *Attribute) FirstTime() (time.Time, bool) {
	if len(a.vals) > 0 && a.vals[0].Kind == KindTime {
		return a.vals[0].Time, true
	}
	return time.Time{}, false
}

// appendTemplate writes the attribute's template component: one
// descriptor byte and the label. Counts, codes, units, and values are
// never carried in the template.
func (a *Attribute) appendTemplate(dst []byte) ([]byte, error) {
	dst = append(dst, compAttribute|attrHasLabel)
	return rp66.AppendASCII(dst, a.label)
}

// appendBody writes the attribute's per-item component. An attribute
// without a value is written as a single absent-component byte.
func (a *Attribute) appendBody(dst []byte) ([]byte, error) {
	if len(a.vals) == 0 {
		return append(dst, compAbsent), nil
	}

	desc := byte(compAttribute)
	if len(a.vals) != 1 {
		desc |= attrHasCount
	}
	code := a.Code()
	if code != 0 {
		desc |= attrHasCode
	}
	if a.units != "" {
		desc |= attrHasUnits
	}
	desc |= attrHasValue
	dst = append(dst, desc)

	var err error
	if len(a.vals) != 1 {
		dst, err = rp66.AppendUvari(dst, uint32(len(a.vals)))
		if err != nil {
			return dst, err
		}
	}
	if code != 0 {
		dst = rp66.AppendUShort(dst, uint8(code))
	}
	if a.units != "" {
		dst, err = rp66.AppendASCII(dst, a.units)
		if err != nil {
			return dst, err
		}
	}
	for _, v := range a.vals {
		dst, err = appendScalar(dst, code, v)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// appendScalar encodes one element under the attribute's code.
func appendScalar(dst []byte, code rp66.Code, v Scalar) ([]byte, error) {
	switch {
	case code.IsInteger():
		switch v.Kind {
		case KindInt:
			return rp66.AppendInt(dst, code, v.Int)
		case KindFloat:
			if v.Float != float64(int64(v.Float)) {
				return dst, &rp66.EncodeError{Code: code, Value: v.Float, Reason: "not an integer"}
			}
			return rp66.AppendInt(dst, code, int64(v.Float))
		}
	case code.IsFloat():
		switch v.Kind {
		case KindInt:
			return rp66.AppendFloat(dst, code, float64(v.Int))
		case KindFloat:
			return rp66.AppendFloat(dst, code, v.Float)
		}
	case code.IsString():
		if v.Kind == KindString {
			return rp66.AppendString(dst, code, v.Str)
		}
	case code == rp66.DTIME:
		if v.Kind == KindTime {
			return rp66.AppendDTime(dst, v.Time)
		}
	case code == rp66.STATUS:
		if v.Kind == KindInt {
			return rp66.AppendStatus(dst, int(v.Int))
		}
	case code == rp66.OBNAME:
		if v.Kind == KindRef {
			return v.Ref.AppendObname(dst)
		}
	case code == rp66.OBJREF:
		if v.Kind == KindRef {
			return v.Ref.AppendObjref(dst)
		}
	}
	return dst, &rp66.EncodeError{Code: code, Value: v, Reason: "value kind does not match the representation code"}
}
