package eflr

// SetTypeZone is the class set type of zone objects.
const SetTypeZone = "ZONE"

// Zone bounds an interval over depth or time.
type Zone struct {
	*Item
}

// NewZoneSet creates a zone set with an optional set name.
func NewZoneSet(name string) *Set {
	return NewSet(SetTypeZone, LRStatic, name)
}

// NewZone creates a zone object registered with the given set.
func NewZone(set *Set, name string) *Zone {
	it := newItem(set, name,
		textAttr("DESCRIPTION"),
		identAttr("DOMAIN"),
		dtimeAttr("MAXIMUM"),
		dtimeAttr("MINIMUM"),
	)
	return &Zone{Item: it}
}

// Domain returns the declared zone domain, empty when unset.
func (z *Zone) Domain() string {
	return z.Attr("DOMAIN").FirstString()
}
