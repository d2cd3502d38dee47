package eflr

// SetTypePath is the class set type of path objects.
const SetTypePath = "PATH"

// Path ties channels to a frame and a well reference point, with the
// geometric offsets of the measurement path.
type Path struct {
	*Item
}

// NewPathSet creates a path set with an optional set name.
func NewPathSet(name string) *Set {
	return NewSet(SetTypePath, LRFrame, name)
}

// NewPath creates a path object registered with the given set.
func NewPath(set *Set, name string) *Path {
	it := newItem(set, name,
		refAttr("FRAME-TYPE"),
		refAttr("WELL-REFERENCE-POINT"),
		refListAttr("VALUE"),
		numericAttr("BOREHOLE-DEPTH", 0),
		numericAttr("VERTICAL-DEPTH", 0),
		numericAttr("RADIAL-DRIFT", 0),
		numericAttr("ANGULAR-DRIFT", 0),
		numericAttr("TIME", 0),
		numericAttr("DEPTH-OFFSET", 0),
		numericAttr("MEASURE-POINT-OFFSET", 0),
		numericAttr("TOOL-ZERO-OFFSET", 0),
	)
	return &Path{Item: it}
}
