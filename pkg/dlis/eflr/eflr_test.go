package eflr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samcharles93/dlis/pkg/rp66"
)

func TestAttributeTemplateBytes(t *testing.T) {
	t.Parallel()

	a := textAttr("LONG-NAME")
	got, err := a.appendTemplate(nil)
	require.NoError(t, err)
	want := []byte{0x30, 9}
	want = append(want, "LONG-NAME"...)
	assert.Equal(t, want, got)
}

func TestAttributeBodyAbsent(t *testing.T) {
	t.Parallel()

	a := textAttr("DESCRIPTION")
	got, err := a.appendBody(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, got, "unset attribute collapses to the absent component")
}

func TestAttributeBodySingleValue(t *testing.T) {
	t.Parallel()

	a := textAttr("DESCRIPTION")
	require.NoError(t, a.SetValue("hi"))
	got, err := a.appendBody(nil)
	require.NoError(t, err)
	// descriptor (code+value), ASCII code, UVARI length, bytes
	assert.Equal(t, []byte{0x25, 20, 2, 'h', 'i'}, got)
}

func TestAttributeBodyMultivaluedWithUnits(t *testing.T) {
	t.Parallel()

	a := numericListAttr("COEFFICIENTS", rp66.FDOUBL)
	require.NoError(t, a.SetValue([]float64{1, 2, 3}))
	require.NoError(t, a.SetUnits("m"))
	got, err := a.appendBody(nil)
	require.NoError(t, err)

	assert.Equal(t, byte(0x2F), got[0], "count, code, units, and value bits")
	assert.Equal(t, byte(3), got[1], "count")
	assert.Equal(t, byte(rp66.FDOUBL), got[2])
	assert.Equal(t, []byte{1, 'm'}, got[3:5])
	assert.Len(t, got[5:], 24, "three big-endian doubles")
}

func TestAttributeCardinality(t *testing.T) {
	t.Parallel()

	single := numericAttr("SPACING", 0)
	err := single.SetValue([]float64{1, 2})
	var valErr *ValueError
	require.ErrorAs(t, err, &valErr)
	assert.ErrorIs(t, err, ErrInvalidCount)

	multi := numericListAttr("VALUES", 0)
	require.NoError(t, multi.SetValue([]float64{1, 2}))
	assert.Equal(t, 2, multi.Count())

	flat := numericListAttr("VALUES", 0)
	err = flat.SetValue([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidCount, "nested values need a multidimensional attribute")

	nested := measurementAttr("MEASUREMENT")
	require.NoError(t, nested.SetValue([][]float64{{1, 2}, {3, 4}}))
	assert.Equal(t, 4, nested.Count())
	assert.Equal(t, 2, nested.Rows())

	_, _, err = nested.toScalars([][]float64{{1, 2}, {3}})
	assert.Error(t, err, "ragged rows are rejected")
}

func TestAttributeCodeInference(t *testing.T) {
	t.Parallel()

	ints := &Attribute{label: "N", kind: attrNumeric, multivalued: true}
	require.NoError(t, ints.SetValue([]int{1, 300}))
	assert.Equal(t, rp66.UNORM, ints.Code())

	floats := &Attribute{label: "F", kind: attrNumeric}
	require.NoError(t, floats.SetValue(2.5))
	assert.Equal(t, rp66.FSINGL, floats.Code())

	times := dtimeAttr("CREATION-TIME")
	require.NoError(t, times.SetValue(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, rp66.DTIME, times.Code())
}

func TestAttributeCodeRestrictions(t *testing.T) {
	t.Parallel()

	dim := dimensionAttr("DIMENSION")
	assert.Error(t, dim.SetCode(rp66.FDOUBL), "dimensions take integer codes only")
	assert.NoError(t, dim.SetCode(rp66.UVARI))
	assert.ErrorIs(t, dim.SetValue([]int{0}), ErrOutOfRange)

	ref := refAttr("ZONES")
	assert.Error(t, ref.SetCode(rp66.ASCII))
	assert.Error(t, ref.SetUnits("m"), "reference attributes carry no units")

	status := statusAttr("STATUS")
	require.NoError(t, status.SetValue(true))
	assert.ErrorIs(t, status.SetValue(3), ErrOutOfRange)
}

func TestSetBodyStructure(t *testing.T) {
	t.Parallel()

	set := NewZoneSet("")
	zone := NewZone(set, "ZONE-1")
	zone.Item.originRef = 1
	require.NoError(t, zone.Attr("DOMAIN").SetValue(ZoneTime))

	body, err := set.Body()
	require.NoError(t, err)

	// Set component without a name: descriptor and set type.
	want := []byte{0xF0, 4}
	want = append(want, "ZONE"...)
	assert.Equal(t, want, body[:len(want)])

	// The object component introduces the item by OBNAME.
	obj := []byte{0x70, 0x01, 0x00, 6}
	obj = append(obj, "ZONE-1"...)
	assert.Contains(t, string(body), string(obj))
}

func TestSetBodyWithName(t *testing.T) {
	t.Parallel()

	set := NewZoneSet("DEPTH-ZONES")
	zone := NewZone(set, "Z1")
	zone.Item.originRef = 1

	body, err := set.Body()
	require.NoError(t, err)
	want := []byte{0xF8, 4}
	want = append(want, "ZONE"...)
	want = append(want, 11)
	want = append(want, "DEPTH-ZONES"...)
	assert.Equal(t, want, body[:len(want)])
}

func TestSetEmptyBody(t *testing.T) {
	t.Parallel()

	set := NewChannelSet("")
	body, err := set.Body()
	require.NoError(t, err)
	assert.Nil(t, body, "a set without items contributes no record")
}

func TestSetCopyNumbers(t *testing.T) {
	t.Parallel()

	set := NewChannelSet("")
	first := NewChannel(set, "DEPTH")
	second := NewChannel(set, "DEPTH")
	third := NewChannel(set, "RPM")
	assert.Equal(t, uint8(0), first.CopyNumber())
	assert.Equal(t, uint8(1), second.CopyNumber())
	assert.Equal(t, uint8(0), third.CopyNumber())
}

func TestItemObnameRequiresOrigin(t *testing.T) {
	t.Parallel()

	set := NewChannelSet("")
	ch := NewChannel(set, "DEPTH")
	_, err := ch.AppendObname(nil)
	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)

	ch.Item.SetOriginReference(3)
	got, err := ch.AppendObname(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00, 5, 'D', 'E', 'P', 'T', 'H'}, got)
}

func TestObjrefCarriesSetType(t *testing.T) {
	t.Parallel()

	set := NewChannelSet("")
	ch := NewChannel(set, "RPM")
	ch.Item.SetOriginReference(1)
	got, err := ch.AppendObjref(nil)
	require.NoError(t, err)
	want := []byte{7}
	want = append(want, "CHANNEL"...)
	want = append(want, 0x01, 0x00, 3)
	want = append(want, "RPM"...)
	assert.Equal(t, want, got)
}

func TestChannelDefaults(t *testing.T) {
	t.Parallel()

	set := NewChannelSet("")
	ch := NewChannel(set, "GR")
	require.NoError(t, ch.SetDimension([]int{8}))
	require.NoError(t, ch.ApplyDefaults())
	assert.Equal(t, []int{8}, ch.ElementLimit())
	assert.Equal(t, "GR", ch.Attr("LONG-NAME").FirstString())
	assert.Equal(t, 8, ch.Width())
}

func TestOriginDefaults(t *testing.T) {
	t.Parallel()

	set := NewOriginSet("")
	o := NewOrigin(set, "ORIGIN")
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, o.ApplyDefaults(now))
	assert.Equal(t, DefaultFieldName, o.Attr("FIELD-NAME").FirstString())
	created, ok := o.CreationTime()
	require.True(t, ok)
	assert.Equal(t, now, created)

	require.NoError(t, o.SetFileSetNumber(99))
	assert.Equal(t, uint32(99), o.FileSetNumber())
	assert.Error(t, o.SetFileSetNumber(100), "file set number cannot be reassigned")
}

func TestFrameRowSize(t *testing.T) {
	t.Parallel()

	chSet := NewChannelSet("")
	depth := NewChannel(chSet, "DEPTH")
	require.NoError(t, depth.SetRepCode(rp66.FDOUBL))
	image := NewChannel(chSet, "IMAGE")
	require.NoError(t, image.SetRepCode(rp66.FSINGL))
	require.NoError(t, image.SetDimension([]int{5}))

	frSet := NewFrameSet("")
	frame := NewFrame(frSet, "MAIN")
	require.NoError(t, frame.SetChannels([]*Channel{depth, image}))

	size, err := frame.RowSize()
	require.NoError(t, err)
	assert.Equal(t, 8+4*5, size)
}

func TestFileHeaderBody(t *testing.T) {
	t.Parallel()

	fh, err := NewFileHeader("WELL-LOG", "0", 1)
	require.NoError(t, err)
	fh.SetOriginReference(1)

	body, err := fh.Body()
	require.NoError(t, err)
	assert.Len(t, body, 120, "the file header segment is 124 bytes with its header")

	assert.Contains(t, string(body), "SEQUENCE-NUMBER")
	assert.Contains(t, string(body), "         1", "sequence number right-justified to 10 characters")
	assert.Contains(t, string(body), "WELL-LOG"+"  ", "id left-justified")
}

func TestFileHeaderValidation(t *testing.T) {
	t.Parallel()

	_, err := NewFileHeader(string(make([]byte, 70)), "0", 1)
	assert.Error(t, err)
	_, err = NewFileHeader("ID", "00", 1)
	assert.Error(t, err)
	_, err = NewFileHeader("ID", "0", 0)
	assert.Error(t, err)
	_, err = NewFileHeader("ID", "0", 10_000_000_000)
	assert.Error(t, err)

	fh, err := NewFileHeader("ID", "0", 1)
	require.NoError(t, err)
	_, err = fh.Body()
	assert.Error(t, err, "the header needs an origin reference before serialising")
}

func TestSchemaMismatch(t *testing.T) {
	t.Parallel()

	set := NewZoneSet("")
	NewZone(set, "Z1")
	rogue := newItem(set, "ROGUE", textAttr("DESCRIPTION"))
	rogue.originRef = 1
	set.items[0].originRef = 1

	_, err := set.Body()
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}
