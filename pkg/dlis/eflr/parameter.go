package eflr

// SetTypeParameter is the class set type of parameter objects.
const SetTypeParameter = "PARAMETER"

// Parameter holds a named value, possibly zoned.
type Parameter struct {
	*Item
}

// NewParameterSet creates a parameter set with an optional set name.
func NewParameterSet(name string) *Set {
	return NewSet(SetTypeParameter, LRStatic, name)
}

// NewParameter creates a parameter object registered with the given set.
func NewParameter(set *Set, name string) *Parameter {
	it := newItem(set, name,
		textAttr("LONG-NAME"),
		dimensionAttr("DIMENSION"),
		refListAttr("AXIS"),
		refListAttr("ZONES"),
		&Attribute{label: "VALUES", kind: attrGeneric, multivalued: true},
	)
	return &Parameter{Item: it}
}
