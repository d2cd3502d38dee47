package eflr

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samcharles93/dlis/pkg/rp66"
)

// SetValue assigns the attribute's value. Accepted Go types depend on the
// attribute: strings for text and identifier attributes, numbers (or
// numeric strings) for numeric ones, positive integers for dimensions,
// *Item for references, time.Time or an elapsed number for date-time
// attributes, bool or 0/1 for status flags. Slices are accepted for
// multivalued attributes and nested slices for multidimensional ones.
func (a *Attribute) SetValue(v any) error {
	if v == nil {
		a.vals = nil
		a.rows = 0
		return nil
	}

	scalars, rows, err := a.toScalars(v)
	if err != nil {
		return err
	}
	if rows > 0 && !a.multidim {
		return valueErr(a.label, ErrInvalidCount, "attribute is not multidimensional")
	}
	if len(scalars) != 1 && !a.multivalued {
		return valueErr(a.label, ErrInvalidCount, fmt.Sprintf("attribute is single-valued; got %d values", len(scalars)))
	}
	a.vals = scalars
	a.rows = rows
	return nil
}

// toScalars normalises v to a flat scalar list, returning the row count
// for nested input (0 for flat input).
func (a *Attribute) toScalars(v any) ([]Scalar, int, error) {
	switch vv := v.(type) {
	case []string:
		out := make([]Scalar, 0, len(vv))
		for _, s := range vv {
			sc, err := a.convert(s)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
		return out, 0, nil
	case []int:
		out := make([]Scalar, 0, len(vv))
		for _, n := range vv {
			sc, err := a.convert(n)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
		return out, 0, nil
	case []int64:
		out := make([]Scalar, 0, len(vv))
		for _, n := range vv {
			sc, err := a.convert(n)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
		return out, 0, nil
	case []float64:
		out := make([]Scalar, 0, len(vv))
		for _, f := range vv {
			sc, err := a.convert(f)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
		return out, 0, nil
	case [][]float64:
		return a.nestedFloats(vv)
	case [][]int:
		nested := make([][]float64, len(vv))
		for i, row := range vv {
			nested[i] = make([]float64, len(row))
			for j, n := range row {
				nested[i][j] = float64(n)
			}
		}
		return a.nestedFloats(nested)
	case []*Item:
		out := make([]Scalar, 0, len(vv))
		for _, it := range vv {
			sc, err := a.convert(it)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
		return out, 0, nil
	case []any:
		out := make([]Scalar, 0, len(vv))
		for _, e := range vv {
			sc, err := a.convert(e)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
		return out, 0, nil
	default:
		sc, err := a.convert(v)
		if err != nil {
			return nil, 0, err
		}
		return []Scalar{sc}, 0, nil
	}
}

func (a *Attribute) nestedFloats(rows [][]float64) ([]Scalar, int, error) {
	if len(rows) == 0 {
		return nil, 0, valueErr(a.label, ErrInvalidCount, "empty nested value")
	}
	width := len(rows[0])
	out := make([]Scalar, 0, len(rows)*width)
	for _, row := range rows {
		if len(row) != width {
			return nil, 0, valueErr(a.label, ErrInvalidCount, "nested rows have unequal lengths")
		}
		for _, f := range row {
			sc, err := a.convert(f)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sc)
		}
	}
	return out, len(rows), nil
}

// convert validates one element against the attribute kind.
func (a *Attribute) convert(v any) (Scalar, error) {
	switch a.kind {
	case attrText:
		s, ok := v.(string)
		if !ok {
			return Scalar{}, a.typeErr(v, "string")
		}
		return strScalar(s), nil

	case attrIdent:
		s, ok := v.(string)
		if !ok {
			return Scalar{}, a.typeErr(v, "string")
		}
		if !rp66.IdentSafe(s) {
			return Scalar{}, valueErr(a.label, ErrInvalidCharset, fmt.Sprintf("%q is not IDENT-safe", s))
		}
		return strScalar(s), nil

	case attrNumeric:
		return a.convertNumber(v)

	case attrInteger:
		sc, err := a.convertNumber(v)
		if err != nil {
			return Scalar{}, err
		}
		if sc.Kind != KindInt {
			return Scalar{}, valueErr(a.label, ErrTypeMismatch, fmt.Sprintf("expected an integer; got %v", v))
		}
		return sc, nil

	case attrDimension:
		sc, err := a.convertNumber(v)
		if err != nil {
			return Scalar{}, err
		}
		if sc.Kind != KindInt || sc.Int < 1 {
			return Scalar{}, valueErr(a.label, ErrOutOfRange, fmt.Sprintf("dimension entries must be positive integers; got %v", v))
		}
		return sc, nil

	case attrRef:
		switch ref := v.(type) {
		case *Item:
			return refScalar(ref), nil
		case interface{ EFLRItem() *Item }:
			return refScalar(ref.EFLRItem()), nil
		}
		return Scalar{}, a.typeErr(v, "object reference")

	case attrDTime:
		switch t := v.(type) {
		case time.Time:
			return timeScalar(t), nil
		case int:
			return intScalar(int64(t)), nil
		case int64:
			return intScalar(t), nil
		case float64:
			return floatScalar(t), nil
		}
		return Scalar{}, a.typeErr(v, "time.Time or elapsed number")

	case attrStatus:
		switch b := v.(type) {
		case bool:
			if b {
				return intScalar(1), nil
			}
			return intScalar(0), nil
		case int:
			if b != 0 && b != 1 {
				return Scalar{}, valueErr(a.label, ErrOutOfRange, fmt.Sprintf("status must be 0 or 1; got %d", b))
			}
			return intScalar(int64(b)), nil
		}
		return Scalar{}, a.typeErr(v, "bool or 0/1")

	default:
		switch val := v.(type) {
		case string:
			return strScalar(val), nil
		case time.Time:
			return timeScalar(val), nil
		case *Item:
			return refScalar(val), nil
		default:
			return a.convertNumber(v)
		}
	}
}

// convertNumber accepts Go numeric types plus numeric strings, as the
// object builders receive loosely typed values.
func (a *Attribute) convertNumber(v any) (Scalar, error) {
	switch n := v.(type) {
	case int:
		return intScalar(int64(n)), nil
	case int8:
		return intScalar(int64(n)), nil
	case int16:
		return intScalar(int64(n)), nil
	case int32:
		return intScalar(int64(n)), nil
	case int64:
		return intScalar(n), nil
	case uint8:
		return intScalar(int64(n)), nil
	case uint16:
		return intScalar(int64(n)), nil
	case uint32:
		return intScalar(int64(n)), nil
	case float32:
		return floatScalar(float64(n)), nil
	case float64:
		if n == float64(int64(n)) && a.code != 0 && a.code.IsInteger() {
			return intScalar(int64(n)), nil
		}
		return floatScalar(n), nil
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return intScalar(i), nil
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return floatScalar(f), nil
		}
		return Scalar{}, valueErr(a.label, ErrTypeMismatch, fmt.Sprintf("%q is not numeric", n))
	default:
		return Scalar{}, a.typeErr(v, "number")
	}
}

func (a *Attribute) typeErr(v any, want string) error {
	return valueErr(a.label, ErrTypeMismatch, fmt.Sprintf("expected %s; got %T", want, v))
}
