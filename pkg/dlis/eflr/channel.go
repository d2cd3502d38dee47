package eflr

import (
	"github.com/samcharles93/dlis/pkg/rp66"
)

// SetTypeChannel is the class set type of channel objects.
const SetTypeChannel = "CHANNEL"

// Channel names and describes one column of frame data: its long name,
// units, array shape, and on-wire representation code.
type Channel struct {
	*Item
	datasetKey string
}

// NewChannelSet creates a channel set with an optional set name.
func NewChannelSet(name string) *Set {
	return NewSet(SetTypeChannel, LRChannel, name)
}

// NewChannel creates a channel object registered with the given set.
func NewChannel(set *Set, name string) *Channel {
	it := newItem(set, name,
		textAttr("LONG-NAME"),
		identListAttr("PROPERTIES"),
		integerAttr("REPRESENTATION-CODE", rp66.USHORT),
		identAttr("UNITS"),
		dimensionAttr("DIMENSION"),
		refListAttr("AXIS"),
		dimensionAttr("ELEMENT-LIMIT"),
		objrefAttr("SOURCE"),
		numericListAttr("MINIMUM-VALUE", rp66.FDOUBL),
		numericListAttr("MAXIMUM-VALUE", rp66.FDOUBL),
	)
	return &Channel{Item: it}
}

// DatasetKey returns the key the channel's column is looked up under in
// the source data; it defaults to the channel name.
func (c *Channel) DatasetKey() string {
	if c.datasetKey != "" {
		return c.datasetKey
	}
	return c.Name()
}

// SetDatasetKey overrides the source-data key.
func (c *Channel) SetDatasetKey(key string) { c.datasetKey = key }

// RepCode returns the channel's data representation code, 0 when unset.
func (c *Channel) RepCode() rp66.Code {
	ints := c.Attr("REPRESENTATION-CODE").Ints()
	if len(ints) == 0 {
		return 0
	}
	return rp66.Code(ints[0])
}

// SetRepCode assigns the channel's data representation code.
func (c *Channel) SetRepCode(code rp66.Code) error {
	if !code.Valid() {
		return valueErr("REPRESENTATION-CODE", ErrInvalidCode, code.String())
	}
	return c.Attr("REPRESENTATION-CODE").SetValue(int(code))
}

// Dimension returns the declared per-row array shape, defaulting to a
// scalar column.
func (c *Channel) Dimension() []int {
	ints := c.Attr("DIMENSION").Ints()
	if len(ints) == 0 {
		return []int{1}
	}
	out := make([]int, len(ints))
	for i, v := range ints {
		out[i] = int(v)
	}
	return out
}

// SetDimension assigns the per-row array shape.
func (c *Channel) SetDimension(dim []int) error {
	return c.Attr("DIMENSION").SetValue(dim)
}

// ElementLimit returns the declared element limit, nil when unset.
func (c *Channel) ElementLimit() []int {
	ints := c.Attr("ELEMENT-LIMIT").Ints()
	if len(ints) == 0 {
		return nil
	}
	out := make([]int, len(ints))
	for i, v := range ints {
		out[i] = int(v)
	}
	return out
}

// Width returns the number of samples per row.
func (c *Channel) Width() int {
	width := 1
	for _, d := range c.Dimension() {
		width *= d
	}
	return width
}

// Units returns the channel's unit symbol, empty when unset.
func (c *Channel) Units() string {
	return c.Attr("UNITS").FirstString()
}

// ApplyDefaults fills the derivable attributes: the long name falls back
// to the channel name, and dimension and element limit mirror each other
// when only one is set.
func (c *Channel) ApplyDefaults() error {
	dim := c.Attr("DIMENSION")
	lim := c.Attr("ELEMENT-LIMIT")
	switch {
	case dim.HasValue() && !lim.HasValue():
		if err := lim.SetValue(c.Dimension()); err != nil {
			return err
		}
	case lim.HasValue() && !dim.HasValue():
		if err := dim.SetValue(c.ElementLimit()); err != nil {
			return err
		}
	}
	if ln := c.Attr("LONG-NAME"); !ln.HasValue() {
		if err := ln.SetValue(c.Name()); err != nil {
			return err
		}
	}
	return nil
}
