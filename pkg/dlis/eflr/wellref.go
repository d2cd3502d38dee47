package eflr

import (
	"github.com/samcharles93/dlis/pkg/rp66"
)

// SetTypeWellReferencePoint is the class set type of well reference
// point objects.
const SetTypeWellReferencePoint = "WELL-REFERENCE"

// WellReferencePoint fixes the spatial reference of the well.
type WellReferencePoint struct {
	*Item
}

// NewWellReferencePointSet creates a well-reference-point set.
func NewWellReferencePointSet(name string) *Set {
	return NewSet(SetTypeWellReferencePoint, LROrigin, name)
}

// NewWellReferencePoint creates a well-reference-point object.
func NewWellReferencePoint(set *Set, name string) *WellReferencePoint {
	it := newItem(set, name,
		textAttr("PERMANENT-DATUM"),
		textAttr("VERTICAL-ZERO"),
		numericAttr("PERMANENT-DATUM-ELEVATION", rp66.FDOUBL),
		numericAttr("ABOVE-PERMANENT-DATUM", rp66.FDOUBL),
		numericAttr("MAGNETIC-DECLINATION", rp66.FDOUBL),
		textAttr("COORDINATE-1-NAME"),
		numericAttr("COORDINATE-1-VALUE", rp66.FDOUBL),
		textAttr("COORDINATE-2-NAME"),
		numericAttr("COORDINATE-2-VALUE", rp66.FDOUBL),
		textAttr("COORDINATE-3-NAME"),
		numericAttr("COORDINATE-3-VALUE", rp66.FDOUBL),
	)
	return &WellReferencePoint{Item: it}
}
