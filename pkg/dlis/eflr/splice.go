package eflr

// SetTypeSplice is the class set type of splice objects.
const SetTypeSplice = "SPLICE"

// Splice ties an output channel to the input channels and zones it was
// spliced from.
type Splice struct {
	*Item
}

// NewSpliceSet creates a splice set with an optional set name.
func NewSpliceSet(name string) *Set {
	return NewSet(SetTypeSplice, LRStatic, name)
}

// NewSplice creates a splice object registered with the given set.
func NewSplice(set *Set, name string) *Splice {
	it := newItem(set, name,
		refAttr("OUTPUT-CHANNEL"),
		refListAttr("INPUT-CHANNELS"),
		refListAttr("ZONES"),
	)
	return &Splice{Item: it}
}
