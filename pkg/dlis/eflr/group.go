package eflr

// SetTypeGroup is the class set type of group objects.
const SetTypeGroup = "GROUP"

// Group collects arbitrary objects, and possibly other groups, under a
// common description.
type Group struct {
	*Item
}

// NewGroupSet creates a group set with an optional set name.
func NewGroupSet(name string) *Set {
	return NewSet(SetTypeGroup, LRStatic, name)
}

// NewGroup creates a group object registered with the given set.
func NewGroup(set *Set, name string) *Group {
	it := newItem(set, name,
		textAttr("DESCRIPTION"),
		identAttr("OBJECT-TYPE"),
		objrefListAttr("OBJECT-LIST"),
		refListAttr("GROUP-LIST"),
	)
	return &Group{Item: it}
}
