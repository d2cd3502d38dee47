package eflr

// SetTypeAxis is the class set type of axis objects.
const SetTypeAxis = "AXIS"

// Axis describes a coordinate axis of array-valued channels or
// measurements.
type Axis struct {
	*Item
}

// NewAxisSet creates an axis set with an optional set name.
func NewAxisSet(name string) *Set {
	return NewSet(SetTypeAxis, LRAxis, name)
}

// NewAxis creates an axis object registered with the given set.
func NewAxis(set *Set, name string) *Axis {
	it := newItem(set, name,
		identAttr("AXIS-ID"),
		coordinatesAttr("COORDINATES"),
		numericAttr("SPACING", 0),
	)
	return &Axis{Item: it}
}

// coordinatesAttr accepts numbers or textual identifiers, as axis
// coordinates may be either.
func coordinatesAttr(label string) *Attribute {
	return &Attribute{label: label, kind: attrGeneric, multivalued: true}
}
