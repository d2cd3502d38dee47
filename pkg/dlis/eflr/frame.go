package eflr

import (
	"github.com/samcharles93/dlis/pkg/rp66"
)

// SetTypeFrame is the class set type of frame objects.
const SetTypeFrame = "FRAME"

// Frame references an ordered list of channels forming a table; the
// first channel serves as the index when an index type is declared.
type Frame struct {
	*Item
	channels []*Channel
}

// NewFrameSet creates a frame set with an optional set name.
func NewFrameSet(name string) *Set {
	return NewSet(SetTypeFrame, LRFrame, name)
}

// NewFrame creates a frame object registered with the given set.
func NewFrame(set *Set, name string) *Frame {
	it := newItem(set, name,
		textAttr("DESCRIPTION"),
		refListAttr("CHANNELS"),
		identAttr("INDEX-TYPE"),
		identAttr("DIRECTION"),
		numericAttr("SPACING", 0),
		integerAttr("ENCRYPTED", rp66.USHORT),
		numericAttr("INDEX-MIN", 0),
		numericAttr("INDEX-MAX", 0),
	)
	return &Frame{Item: it}
}

// SetChannels assigns the frame's channels in emission order.
func (f *Frame) SetChannels(channels []*Channel) error {
	items := make([]*Item, len(channels))
	for i, c := range channels {
		items[i] = c.Item
	}
	if err := f.Attr("CHANNELS").SetValue(items); err != nil {
		return err
	}
	f.channels = channels
	return nil
}

// Channels returns the frame's channels in emission order.
func (f *Frame) Channels() []*Channel { return f.channels }

// IndexType returns the declared index type, empty when the frame is
// indexed implicitly by row number.
func (f *Frame) IndexType() string {
	return f.Attr("INDEX-TYPE").FirstString()
}

// IndexChannel returns the channel serving as the frame index, nil when
// no index type is declared or the frame has no channels.
func (f *Frame) IndexChannel() *Channel {
	if f.IndexType() == "" || len(f.channels) == 0 {
		return nil
	}
	return f.channels[0]
}

// RowSize returns the encoded size in bytes of one frame row.
func (f *Frame) RowSize() (int, error) {
	total := 0
	for _, c := range f.channels {
		size, ok := c.RepCode().FixedSize()
		if !ok {
			return 0, valueErr("REPRESENTATION-CODE", ErrInvalidCode,
				"channel "+c.Name()+" has no fixed-size representation code")
		}
		total += size * c.Width()
	}
	return total, nil
}
