package eflr

import (
	"fmt"

	"github.com/samcharles93/dlis/pkg/rp66"
)

// Logical record type codes for explicitly formatted records.
const (
	LRFileHeader  uint8 = 0
	LROrigin      uint8 = 1
	LRAxis        uint8 = 2
	LRChannel     uint8 = 3
	LRFrame       uint8 = 4
	LRStatic      uint8 = 5
	LRScript      uint8 = 6
	LRUpdate      uint8 = 7
	LRUnformatted uint8 = 8
	LRLongName    uint8 = 9
	LRSpec        uint8 = 10
	LRDict        uint8 = 11
)

// Logical record type codes for indirectly formatted records.
const (
	LRFrameData    uint8 = 0
	LRNoFormatData uint8 = 1
)

// Component descriptor bytes and attribute presence bits.
const (
	compAbsent    byte = 0x00
	compAttribute byte = 0x20
	compObject    byte = 0x70
	compSet       byte = 0xF0
	setHasName    byte = 0x08

	attrHasLabel byte = 0x10
	attrHasCount byte = 0x08
	attrHasCode  byte = 0x04
	attrHasUnits byte = 0x02
	attrHasValue byte = 0x01
)

// Record is one logical record ready for segmentation: a type code, the
// EFLR/IFLR discriminator, and a body.
type Record interface {
	LogicalRecordType() uint8
	IsEFLR() bool
	Body() ([]byte, error)
}

// Set is a collection of items of one object class sharing an attribute
// template. It serialises as one explicitly formatted logical record.
type Set struct {
	setType string
	name    string
	lrType  uint8
	items   []*Item
}

// NewSet creates a set of the given class. The set name is optional and
// distinguishes multiple sets of the same class within one file.
func NewSet(setType string, lrType uint8, name string) *Set {
	return &Set{setType: setType, lrType: lrType, name: name}
}

// Type returns the class set type, e.g. "CHANNEL".
func (s *Set) Type() string { return s.setType }

// Name returns the optional set name.
func (s *Set) Name() string { return s.name }

// Items returns the registered items in insertion order.
func (s *Set) Items() []*Item { return s.items }

// Len returns the number of registered items.
func (s *Set) Len() int { return len(s.items) }

// LogicalRecordType implements Record.
func (s *Set) LogicalRecordType() uint8 { return s.lrType }

// IsEFLR implements Record.
func (s *Set) IsEFLR() bool { return true }

// SetOriginReference stamps the given origin reference on every item that
// has not been bound to an origin explicitly.
func (s *Set) SetOriginReference(v uint32) {
	for _, it := range s.items {
		if !it.originExplicit {
			it.originRef = v
		}
	}
}

// Discard removes an item that failed registration-time validation, so
// a rejected object never reaches the wire.
func (s *Set) Discard(it *Item) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] == it {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Set) register(it *Item) {
	for _, existing := range s.items {
		if existing.name == it.name {
			it.copyNumber++
		}
	}
	s.items = append(s.items, it)
}

// appendSetComponent writes the set descriptor, type, and optional name.
func (s *Set) appendSetComponent(dst []byte) ([]byte, error) {
	var err error
	if s.name != "" {
		dst = append(dst, compSet|setHasName)
		if dst, err = rp66.AppendASCII(dst, s.setType); err != nil {
			return dst, err
		}
		return rp66.AppendASCII(dst, s.name)
	}
	dst = append(dst, compSet)
	return rp66.AppendASCII(dst, s.setType)
}

// Body serialises the set: set component, attribute template, then each
// item. A set without items produces an empty body and is skipped by the
// writer.
func (s *Set) Body() ([]byte, error) {
	if len(s.items) == 0 {
		return nil, nil
	}

	template := s.items[0]
	for _, it := range s.items[1:] {
		if len(it.attrs) != len(template.attrs) {
			return nil, &SchemaError{SetType: s.setType, Detail: fmt.Sprintf(
				"item %s has %d attributes; template has %d", it.name, len(it.attrs), len(template.attrs))}
		}
		for i, attr := range it.attrs {
			if attr.label != template.attrs[i].label {
				return nil, &SchemaError{SetType: s.setType, Detail: fmt.Sprintf(
					"item %s attribute %d is %s; template says %s", it.name, i, attr.label, template.attrs[i].label)}
			}
		}
	}

	dst, err := s.appendSetComponent(nil)
	if err != nil {
		return nil, err
	}
	for _, attr := range template.attrs {
		if dst, err = attr.appendTemplate(dst); err != nil {
			return nil, err
		}
	}
	for _, it := range s.items {
		if dst, err = it.appendBody(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Item is one named object of a set: an ordered collection of attributes
// identified by (name, origin reference, copy number).
type Item struct {
	name           string
	copyNumber     uint8
	originRef      uint32
	originExplicit bool
	set            *Set
	attrs          []*Attribute
	index          map[string]*Attribute
}

func newItem(set *Set, name string, attrs ...*Attribute) *Item {
	it := &Item{
		name:  name,
		set:   set,
		attrs: attrs,
		index: make(map[string]*Attribute, len(attrs)),
	}
	for _, a := range attrs {
		it.index[a.label] = a
	}
	set.register(it)
	return it
}

// Name returns the object name.
func (it *Item) Name() string { return it.name }

// CopyNumber returns the copy number disambiguating same-named objects.
func (it *Item) CopyNumber() uint8 { return it.copyNumber }

// SetCopyNumber overrides the copy number assigned at registration.
func (it *Item) SetCopyNumber(n uint8) { it.copyNumber = n }

// Set returns the set this item belongs to.
func (it *Item) Set() *Set { return it.set }

// SetType returns the class set type of the owning set.
func (it *Item) SetType() string { return it.set.setType }

// OriginReference returns the origin reference stamped on the item, 0
// when not yet assigned.
func (it *Item) OriginReference() uint32 { return it.originRef }

// SetOriginReference binds the item to an origin explicitly; the stamp
// survives the writer's defaulting pass.
func (it *Item) SetOriginReference(v uint32) {
	it.originRef = v
	it.originExplicit = true
}

// Attr returns the attribute with the given template label, or nil.
func (it *Item) Attr(label string) *Attribute { return it.index[label] }

// Attributes returns the item's attributes in template order.
func (it *Item) Attributes() []*Attribute { return it.attrs }

// EFLRItem makes *Item satisfy the reference conversion used by
// attribute setters; typed wrappers embed Item and inherit it.
func (it *Item) EFLRItem() *Item { return it }

// AppendObname writes the item's OBNAME reference bytes.
func (it *Item) AppendObname(dst []byte) ([]byte, error) {
	if it.originRef == 0 {
		return dst, &ReferenceError{Object: it.describe(), Detail: "origin reference has not been assigned"}
	}
	return rp66.AppendObname(dst, it.originRef, it.copyNumber, it.name)
}

// AppendObjref writes the item's typed OBJREF reference bytes.
func (it *Item) AppendObjref(dst []byte) ([]byte, error) {
	if it.originRef == 0 {
		return dst, &ReferenceError{Object: it.describe(), Detail: "origin reference has not been assigned"}
	}
	return rp66.AppendObjref(dst, it.set.setType, it.originRef, it.copyNumber, it.name)
}

func (it *Item) describe() string {
	return fmt.Sprintf("%s %q", it.set.setType, it.name)
}

// appendBody writes the object component followed by one attribute
// component per template slot.
func (it *Item) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, compObject)
	dst, err := it.AppendObname(dst)
	if err != nil {
		return dst, err
	}
	for _, attr := range it.attrs {
		if dst, err = attr.appendBody(dst); err != nil {
			return dst, fmt.Errorf("%s: %w", it.describe(), err)
		}
	}
	return dst, nil
}
