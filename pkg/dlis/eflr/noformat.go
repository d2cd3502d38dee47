package eflr

// SetTypeNoFormat is the class set type of no-format objects.
const SetTypeNoFormat = "NO-FORMAT"

// NoFormat describes a stream of unformatted data carried in no-format
// IFLRs.
type NoFormat struct {
	*Item
}

// NewNoFormatSet creates a no-format set with an optional set name.
func NewNoFormatSet(name string) *Set {
	return NewSet(SetTypeNoFormat, LRUnformatted, name)
}

// NewNoFormat creates a no-format object registered with the given set.
func NewNoFormat(set *Set, name string) *NoFormat {
	it := newItem(set, name,
		identAttr("CONSUMER-NAME"),
		textAttr("DESCRIPTION"),
	)
	return &NoFormat{Item: it}
}
