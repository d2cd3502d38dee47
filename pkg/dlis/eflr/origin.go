package eflr

import (
	"time"

	"github.com/samcharles93/dlis/pkg/rp66"
)

// SetTypeOrigin is the class set type of origin objects.
const SetTypeOrigin = "ORIGIN"

// DefaultFieldName is stamped on origins without an explicit field name.
const DefaultFieldName = "WILDCAT"

// Origin describes the circumstances under which a logical file was
// produced. Its file set number is the origin reference stamped on every
// object of the file.
type Origin struct {
	*Item
}

// NewOriginSet creates an origin set with an optional set name.
func NewOriginSet(name string) *Set {
	return NewSet(SetTypeOrigin, LROrigin, name)
}

// NewOrigin creates an origin object registered with the given set.
func NewOrigin(set *Set, name string) *Origin {
	it := newItem(set, name,
		textAttr("FILE-ID"),
		identAttr("FILE-SET-NAME"),
		integerAttr("FILE-SET-NUMBER", rp66.UVARI),
		integerAttr("FILE-NUMBER", rp66.UVARI),
		identAttr("FILE-TYPE"),
		textAttr("PRODUCT"),
		textAttr("VERSION"),
		textListAttr("PROGRAMS"),
		dtimeAttr("CREATION-TIME"),
		textAttr("ORDER-NUMBER"),
		integerAttr("DESCENT-NUMBER", rp66.UNORM),
		integerAttr("RUN-NUMBER", rp66.UNORM),
		integerAttr("WELL-ID", rp66.UNORM),
		textAttr("WELL-NAME"),
		textAttr("FIELD-NAME"),
		integerAttr("PRODUCER-CODE", rp66.UNORM),
		textAttr("PRODUCER-NAME"),
		textAttr("COMPANY"),
		identAttr("NAME-SPACE-NAME"),
		integerAttr("NAME-SPACE-VERSION", rp66.UVARI),
	)
	return &Origin{Item: it}
}

// FileSetNumber returns the origin's file set number, 0 when unset.
func (o *Origin) FileSetNumber() uint32 {
	ints := o.Attr("FILE-SET-NUMBER").Ints()
	if len(ints) == 0 {
		return 0
	}
	return uint32(ints[0])
}

// SetFileSetNumber assigns the file set number. It must stay fixed once
// objects reference it, so reassignment is rejected.
func (o *Origin) SetFileSetNumber(v uint32) error {
	attr := o.Attr("FILE-SET-NUMBER")
	if attr.HasValue() {
		return valueErr("FILE-SET-NUMBER", ErrOutOfRange, "file set number cannot be reassigned")
	}
	if v == 0 || v > rp66.MaxUvari {
		return valueErr("FILE-SET-NUMBER", ErrOutOfRange, "file set number must be in 1..1073741823")
	}
	return attr.SetValue(int64(v))
}

// CreationTime returns the declared creation time and whether it is set.
func (o *Origin) CreationTime() (time.Time, bool) {
	return o.Attr("CREATION-TIME").FirstTime()
}

// ApplyDefaults fills the field name and creation time when unset.
func (o *Origin) ApplyDefaults(now time.Time) error {
	if fn := o.Attr("FIELD-NAME"); !fn.HasValue() {
		if err := fn.SetValue(DefaultFieldName); err != nil {
			return err
		}
	}
	if ct := o.Attr("CREATION-TIME"); !ct.HasValue() {
		if err := ct.SetValue(now); err != nil {
			return err
		}
	}
	return nil
}
