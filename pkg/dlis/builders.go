package dlis

import (
	"fmt"
	"time"

	"github.com/samcharles93/dlis/pkg/dlis/eflr"
	"github.com/samcharles93/dlis/pkg/dlis/frames"
	"github.com/samcharles93/dlis/pkg/rp66"
)

// Optional scalar helpers for the builder option structs.

// Float returns a pointer to v for optional float fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v for optional integer fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v for optional boolean fields.
func Bool(v bool) *bool { return &v }

// Time returns a pointer to v for optional time fields.
func Time(v time.Time) *time.Time { return &v }

// attrValue is one pending attribute assignment; nil values are skipped.
type attrValue struct {
	label string
	value any
	units string
}

func applyAttrs(it *eflr.Item, vals []attrValue) error {
	for _, av := range vals {
		attr := it.Attr(av.label)
		if attr == nil {
			return &SchemaError{SetType: it.SetType(), Detail: "unknown attribute label " + av.label}
		}
		if av.value != nil {
			if err := attr.SetValue(av.value); err != nil {
				return err
			}
		}
		if av.units != "" {
			if err := attr.SetUnits(av.units); err != nil {
				return err
			}
		}
	}
	return nil
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func strsOrNil(ss []string) any {
	if len(ss) == 0 {
		return nil
	}
	return ss
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func timeOrNil(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}

func itemsOrNil[T interface{ EFLRItem() *eflr.Item }](vs []T) any {
	if len(vs) == 0 {
		return nil
	}
	items := make([]*eflr.Item, len(vs))
	for i, v := range vs {
		items[i] = v.EFLRItem()
	}
	return items
}

func itemOrNil[T interface{ EFLRItem() *eflr.Item }](v *T) any {
	if v == nil {
		return nil
	}
	return (*v).EFLRItem()
}

// OriginOptions carries the attributes of an origin object. Zero-valued
// fields are left unset.
type OriginOptions struct {
	FileSetNumber    uint32
	FileSetName      string
	FileID           string
	FileNumber       *int
	FileType         string
	Product          string
	Version          string
	Programs         []string
	CreationTime     *time.Time
	OrderNumber      string
	DescentNumber    *int
	RunNumber        *int
	WellID           *int
	WellName         string
	FieldName        string
	ProducerCode     *int
	ProducerName     string
	Company          string
	NameSpaceName    string
	NameSpaceVersion *int

	SetName string
}

// AddOrigin registers an origin. The first origin added is the defining
// origin whose file set number becomes the origin reference of every
// object without an explicit one.
func (lf *LogicalFile) AddOrigin(name string, opts OriginOptions) (*Origin, error) {
	set := lf.set(eflr.SetTypeOrigin, opts.SetName, eflr.NewOriginSet)
	o := eflr.NewOrigin(set, name)
	if err := lf.registered(o.EFLRItem()); err != nil {
		return nil, err
	}
	if opts.FileSetNumber != 0 {
		if err := o.SetFileSetNumber(opts.FileSetNumber); err != nil {
			return nil, err
		}
	}
	err := applyAttrs(o.EFLRItem(), []attrValue{
		{label: "FILE-ID", value: orNil(opts.FileID)},
		{label: "FILE-SET-NAME", value: orNil(opts.FileSetName)},
		{label: "FILE-NUMBER", value: intOrNil(opts.FileNumber)},
		{label: "FILE-TYPE", value: orNil(opts.FileType)},
		{label: "PRODUCT", value: orNil(opts.Product)},
		{label: "VERSION", value: orNil(opts.Version)},
		{label: "PROGRAMS", value: strsOrNil(opts.Programs)},
		{label: "CREATION-TIME", value: timeOrNil(opts.CreationTime)},
		{label: "ORDER-NUMBER", value: orNil(opts.OrderNumber)},
		{label: "DESCENT-NUMBER", value: intOrNil(opts.DescentNumber)},
		{label: "RUN-NUMBER", value: intOrNil(opts.RunNumber)},
		{label: "WELL-ID", value: intOrNil(opts.WellID)},
		{label: "WELL-NAME", value: orNil(opts.WellName)},
		{label: "FIELD-NAME", value: orNil(opts.FieldName)},
		{label: "PRODUCER-CODE", value: intOrNil(opts.ProducerCode)},
		{label: "PRODUCER-NAME", value: orNil(opts.ProducerName)},
		{label: "COMPANY", value: orNil(opts.Company)},
		{label: "NAME-SPACE-NAME", value: orNil(opts.NameSpaceName)},
		{label: "NAME-SPACE-VERSION", value: intOrNil(opts.NameSpaceVersion)},
	})
	if err != nil {
		return nil, err
	}
	lf.origins = append(lf.origins, o)
	return o, nil
}

// ChannelOptions carries the attributes of a channel object.
type ChannelOptions struct {
	LongName     string
	Properties   []string
	Code         rp66.Code
	Units        string
	Dimension    []int
	ElementLimit []int
	Axis         []*Axis
	MinimumValue *float64
	MaximumValue *float64
	// DatasetKey locates the channel's column in the source data; it
	// defaults to the channel name.
	DatasetKey string
	// Data attaches the channel's column inline, as an alternative to a
	// write-time source.
	Data *frames.Column

	SetName         string
	OriginReference uint32
}

// AddChannel registers a channel.
func (lf *LogicalFile) AddChannel(name string, opts ChannelOptions) (*Channel, error) {
	set := lf.set(eflr.SetTypeChannel, opts.SetName, eflr.NewChannelSet)
	c := eflr.NewChannel(set, name)
	if err := lf.registered(c.EFLRItem()); err != nil {
		return nil, err
	}
	if err := lf.checkUnit(opts.Units); err != nil {
		return nil, err
	}
	for _, p := range opts.Properties {
		if err := lf.checkProperty(p); err != nil {
			return nil, err
		}
	}
	if opts.Code != 0 {
		if err := c.SetRepCode(opts.Code); err != nil {
			return nil, err
		}
	}
	err := applyAttrs(c.EFLRItem(), []attrValue{
		{label: "LONG-NAME", value: orNil(opts.LongName)},
		{label: "PROPERTIES", value: strsOrNil(opts.Properties)},
		{label: "UNITS", value: orNil(opts.Units)},
		{label: "DIMENSION", value: intsOrNil(opts.Dimension)},
		{label: "ELEMENT-LIMIT", value: intsOrNil(opts.ElementLimit)},
		{label: "AXIS", value: itemsOrNil(opts.Axis)},
		{label: "MINIMUM-VALUE", value: floatOrNil(opts.MinimumValue), units: opts.Units},
		{label: "MAXIMUM-VALUE", value: floatOrNil(opts.MaximumValue), units: opts.Units},
	})
	if err != nil {
		return nil, err
	}
	if opts.DatasetKey != "" {
		c.SetDatasetKey(opts.DatasetKey)
	}
	if opts.Data != nil {
		lf.inlineData.Put(c.DatasetKey(), *opts.Data)
	}
	if opts.OriginReference != 0 {
		c.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	lf.channelOrder = append(lf.channelOrder, c)
	return c, nil
}

func intsOrNil(vs []int) any {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// FrameOptions carries the attributes of a frame object.
type FrameOptions struct {
	Description string
	Channels    []*Channel
	IndexType   string
	Direction   string
	Spacing     *float64
	Encrypted   *bool
	IndexMin    *float64
	IndexMax    *float64

	SetName         string
	OriginReference uint32
}

// AddFrame registers a frame over the given channels. The first channel
// is the index channel when an index type is declared.
func (lf *LogicalFile) AddFrame(name string, opts FrameOptions) (*Frame, error) {
	set := lf.set(eflr.SetTypeFrame, opts.SetName, eflr.NewFrameSet)
	f := eflr.NewFrame(set, name)
	if err := lf.registered(f.EFLRItem()); err != nil {
		return nil, err
	}
	if opts.IndexType != "" && !eflr.KnownFrameIndexType(opts.IndexType) {
		if lf.highCompat {
			return nil, &ValueError{Label: "INDEX-TYPE", Kind: eflr.ErrOutOfRange,
				Cause: fmt.Sprintf("%q is not one of the standard index types", opts.IndexType)}
		}
		lf.log.Warn("frame index type is not one of the standard values", "index_type", opts.IndexType)
	}
	if len(opts.Channels) > 0 {
		if err := f.SetChannels(opts.Channels); err != nil {
			return nil, err
		}
	}
	var encrypted any
	if opts.Encrypted != nil {
		if *opts.Encrypted {
			encrypted = 1
		} else {
			encrypted = 0
		}
	}
	err := applyAttrs(f.EFLRItem(), []attrValue{
		{label: "DESCRIPTION", value: orNil(opts.Description)},
		{label: "INDEX-TYPE", value: orNil(opts.IndexType)},
		{label: "DIRECTION", value: orNil(opts.Direction)},
		{label: "SPACING", value: floatOrNil(opts.Spacing)},
		{label: "ENCRYPTED", value: encrypted},
		{label: "INDEX-MIN", value: floatOrNil(opts.IndexMin)},
		{label: "INDEX-MAX", value: floatOrNil(opts.IndexMax)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		f.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	lf.frameOrder = append(lf.frameOrder, f)
	return f, nil
}

// AxisOptions carries the attributes of an axis object.
type AxisOptions struct {
	AxisID       string
	Coordinates  []any
	Spacing      *float64
	SpacingUnits string

	SetName         string
	OriginReference uint32
}

// AddAxis registers an axis.
func (lf *LogicalFile) AddAxis(name string, opts AxisOptions) (*Axis, error) {
	set := lf.set(eflr.SetTypeAxis, opts.SetName, eflr.NewAxisSet)
	a := eflr.NewAxis(set, name)
	if err := lf.registered(a.EFLRItem()); err != nil {
		return nil, err
	}
	var coords any
	if len(opts.Coordinates) > 0 {
		coords = opts.Coordinates
	}
	err := applyAttrs(a.EFLRItem(), []attrValue{
		{label: "AXIS-ID", value: orNil(opts.AxisID)},
		{label: "COORDINATES", value: coords},
		{label: "SPACING", value: floatOrNil(opts.Spacing), units: opts.SpacingUnits},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		a.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return a, nil
}

// ZoneOptions carries the attributes of a zone object.
type ZoneOptions struct {
	Description string
	Domain      string
	Minimum     any
	Maximum     any
	Units       string

	SetName         string
	OriginReference uint32
}

// AddZone registers a zone over a depth or time interval. Minimum and
// Maximum take numbers, or time.Time when the domain is TIME.
func (lf *LogicalFile) AddZone(name string, opts ZoneOptions) (*Zone, error) {
	set := lf.set(eflr.SetTypeZone, opts.SetName, eflr.NewZoneSet)
	z := eflr.NewZone(set, name)
	if err := lf.registered(z.EFLRItem()); err != nil {
		return nil, err
	}
	if err := lf.checkUnit(opts.Units); err != nil {
		return nil, err
	}
	err := applyAttrs(z.EFLRItem(), []attrValue{
		{label: "DESCRIPTION", value: orNil(opts.Description)},
		{label: "DOMAIN", value: orNil(opts.Domain)},
		{label: "MINIMUM", value: opts.Minimum, units: opts.Units},
		{label: "MAXIMUM", value: opts.Maximum, units: opts.Units},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		z.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return z, nil
}

// ParameterOptions carries the attributes of a parameter object.
type ParameterOptions struct {
	LongName  string
	Dimension []int
	Axis      []*Axis
	Zones     []*Zone
	Values    []any
	Units     string

	SetName         string
	OriginReference uint32
}

// AddParameter registers a parameter.
func (lf *LogicalFile) AddParameter(name string, opts ParameterOptions) (*Parameter, error) {
	set := lf.set(eflr.SetTypeParameter, opts.SetName, eflr.NewParameterSet)
	p := eflr.NewParameter(set, name)
	if err := lf.registered(p.EFLRItem()); err != nil {
		return nil, err
	}
	if err := lf.checkUnit(opts.Units); err != nil {
		return nil, err
	}
	var values any
	if len(opts.Values) > 0 {
		values = opts.Values
	}
	err := applyAttrs(p.EFLRItem(), []attrValue{
		{label: "LONG-NAME", value: orNil(opts.LongName)},
		{label: "DIMENSION", value: intsOrNil(opts.Dimension)},
		{label: "AXIS", value: itemsOrNil(opts.Axis)},
		{label: "ZONES", value: itemsOrNil(opts.Zones)},
		{label: "VALUES", value: values, units: opts.Units},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		p.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return p, nil
}

// EquipmentOptions carries the attributes of an equipment object.
type EquipmentOptions struct {
	TrademarkName   string
	Status          *bool
	Type            string
	SerialNumber    string
	Location        string
	Height          *float64
	Length          *float64
	MinimumDiameter *float64
	MaximumDiameter *float64
	Volume          *float64
	Weight          *float64
	HoleSize        *float64
	Pressure        *float64
	Temperature     *float64
	VerticalDepth   *float64
	RadialDrift     *float64
	AngularDrift    *float64

	SetName         string
	OriginReference uint32
}

// AddEquipment registers an equipment object.
func (lf *LogicalFile) AddEquipment(name string, opts EquipmentOptions) (*Equipment, error) {
	set := lf.set(eflr.SetTypeEquipment, opts.SetName, eflr.NewEquipmentSet)
	e := eflr.NewEquipment(set, name)
	if err := lf.registered(e.EFLRItem()); err != nil {
		return nil, err
	}
	if err := lf.checkEnum("equipment type", opts.Type, eflr.KnownEquipmentType); err != nil {
		return nil, err
	}
	if err := lf.checkEnum("equipment location", opts.Location, eflr.KnownEquipmentLocation); err != nil {
		return nil, err
	}
	var status any
	if opts.Status != nil {
		status = *opts.Status
	}
	err := applyAttrs(e.EFLRItem(), []attrValue{
		{label: "TRADEMARK-NAME", value: orNil(opts.TrademarkName)},
		{label: "STATUS", value: status},
		{label: "TYPE", value: orNil(opts.Type)},
		{label: "SERIAL-NUMBER", value: orNil(opts.SerialNumber)},
		{label: "LOCATION", value: orNil(opts.Location)},
		{label: "HEIGHT", value: floatOrNil(opts.Height)},
		{label: "LENGTH", value: floatOrNil(opts.Length)},
		{label: "MINIMUM-DIAMETER", value: floatOrNil(opts.MinimumDiameter)},
		{label: "MAXIMUM-DIAMETER", value: floatOrNil(opts.MaximumDiameter)},
		{label: "VOLUME", value: floatOrNil(opts.Volume)},
		{label: "WEIGHT", value: floatOrNil(opts.Weight)},
		{label: "HOLE-SIZE", value: floatOrNil(opts.HoleSize)},
		{label: "PRESSURE", value: floatOrNil(opts.Pressure)},
		{label: "TEMPERATURE", value: floatOrNil(opts.Temperature)},
		{label: "VERTICAL-DEPTH", value: floatOrNil(opts.VerticalDepth)},
		{label: "RADIAL-DRIFT", value: floatOrNil(opts.RadialDrift)},
		{label: "ANGULAR-DRIFT", value: floatOrNil(opts.AngularDrift)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		e.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return e, nil
}

// ToolOptions carries the attributes of a tool object.
type ToolOptions struct {
	Description   string
	TrademarkName string
	GenericName   string
	Parts         []*Equipment
	Status        *bool
	Channels      []*Channel
	Parameters    []*Parameter

	SetName         string
	OriginReference uint32
}

// AddTool registers a tool.
func (lf *LogicalFile) AddTool(name string, opts ToolOptions) (*Tool, error) {
	set := lf.set(eflr.SetTypeTool, opts.SetName, eflr.NewToolSet)
	t := eflr.NewTool(set, name)
	if err := lf.registered(t.EFLRItem()); err != nil {
		return nil, err
	}
	var status any
	if opts.Status != nil {
		status = *opts.Status
	}
	err := applyAttrs(t.EFLRItem(), []attrValue{
		{label: "DESCRIPTION", value: orNil(opts.Description)},
		{label: "TRADEMARK-NAME", value: orNil(opts.TrademarkName)},
		{label: "GENERIC-NAME", value: orNil(opts.GenericName)},
		{label: "PARTS", value: itemsOrNil(opts.Parts)},
		{label: "STATUS", value: status},
		{label: "CHANNELS", value: itemsOrNil(opts.Channels)},
		{label: "PARAMETERS", value: itemsOrNil(opts.Parameters)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		t.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return t, nil
}

// CalibrationCoefficientOptions carries the attributes of a
// calibration-coefficient object.
type CalibrationCoefficientOptions struct {
	Label           string
	Coefficients    []float64
	References      []float64
	PlusTolerances  []float64
	MinusTolerances []float64

	SetName         string
	OriginReference uint32
}

// AddCalibrationCoefficient registers a calibration-coefficient object.
func (lf *LogicalFile) AddCalibrationCoefficient(name string, opts CalibrationCoefficientOptions) (*CalibrationCoefficient, error) {
	set := lf.set(eflr.SetTypeCalibrationCoefficient, opts.SetName, eflr.NewCalibrationCoefficientSet)
	c := eflr.NewCalibrationCoefficient(set, name)
	if err := lf.registered(c.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(c.EFLRItem(), []attrValue{
		{label: "LABEL", value: orNil(opts.Label)},
		{label: "COEFFICIENTS", value: floatsOrNil(opts.Coefficients)},
		{label: "REFERENCES", value: floatsOrNil(opts.References)},
		{label: "PLUS-TOLERANCES", value: floatsOrNil(opts.PlusTolerances)},
		{label: "MINUS-TOLERANCES", value: floatsOrNil(opts.MinusTolerances)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		c.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return c, nil
}

func floatsOrNil(vs []float64) any {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// CalibrationMeasurementOptions carries the attributes of a
// calibration-measurement object.
type CalibrationMeasurementOptions struct {
	Phase             string
	MeasurementSource *Channel
	Type              string
	Dimension         []int
	Axis              []*Axis
	Measurement       [][]float64
	SampleCount       *int
	MaximumDeviation  [][]float64
	StandardDeviation [][]float64
	BeginTime         *time.Time
	Duration          *float64
	DurationUnits     string
	Reference         [][]float64
	Standard          [][]float64
	PlusTolerance     [][]float64
	MinusTolerance    [][]float64

	SetName         string
	OriginReference uint32
}

// AddCalibrationMeasurement registers a calibration-measurement object.
func (lf *LogicalFile) AddCalibrationMeasurement(name string, opts CalibrationMeasurementOptions) (*CalibrationMeasurement, error) {
	set := lf.set(eflr.SetTypeCalibrationMeasurement, opts.SetName, eflr.NewCalibrationMeasurementSet)
	m := eflr.NewCalibrationMeasurement(set, name)
	if err := lf.registered(m.EFLRItem()); err != nil {
		return nil, err
	}
	if opts.Phase != "" && !eflr.KnownCalibrationPhase(opts.Phase) {
		return nil, &ValueError{Label: "PHASE", Kind: eflr.ErrOutOfRange,
			Cause: fmt.Sprintf("%q is not one of the standard measurement phases", opts.Phase)}
	}
	err := applyAttrs(m.EFLRItem(), []attrValue{
		{label: "PHASE", value: orNil(opts.Phase)},
		{label: "MEASUREMENT-SOURCE", value: itemOrNil(opts.MeasurementSource)},
		{label: "TYPE", value: orNil(opts.Type)},
		{label: "DIMENSION", value: intsOrNil(opts.Dimension)},
		{label: "AXIS", value: itemsOrNil(opts.Axis)},
		{label: "MEASUREMENT", value: nestedOrNil(opts.Measurement)},
		{label: "SAMPLE-COUNT", value: intOrNil(opts.SampleCount)},
		{label: "MAXIMUM-DEVIATION", value: nestedOrNil(opts.MaximumDeviation)},
		{label: "STANDARD-DEVIATION", value: nestedOrNil(opts.StandardDeviation)},
		{label: "BEGIN-TIME", value: timeOrNil(opts.BeginTime)},
		{label: "DURATION", value: floatOrNil(opts.Duration), units: opts.DurationUnits},
		{label: "REFERENCE", value: nestedOrNil(opts.Reference)},
		{label: "STANDARD", value: nestedOrNil(opts.Standard)},
		{label: "PLUS-TOLERANCE", value: nestedOrNil(opts.PlusTolerance)},
		{label: "MINUS-TOLERANCE", value: nestedOrNil(opts.MinusTolerance)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		m.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return m, nil
}

func nestedOrNil(vs [][]float64) any {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// CalibrationOptions carries the attributes of a calibration object.
type CalibrationOptions struct {
	CalibratedChannels   []*Channel
	UncalibratedChannels []*Channel
	Coefficients         []*CalibrationCoefficient
	Measurements         []*CalibrationMeasurement
	Parameters           []*Parameter
	Method               string

	SetName         string
	OriginReference uint32
}

// AddCalibration registers a calibration.
func (lf *LogicalFile) AddCalibration(name string, opts CalibrationOptions) (*Calibration, error) {
	set := lf.set(eflr.SetTypeCalibration, opts.SetName, eflr.NewCalibrationSet)
	c := eflr.NewCalibration(set, name)
	if err := lf.registered(c.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(c.EFLRItem(), []attrValue{
		{label: "CALIBRATED-CHANNELS", value: itemsOrNil(opts.CalibratedChannels)},
		{label: "UNCALIBRATED-CHANNELS", value: itemsOrNil(opts.UncalibratedChannels)},
		{label: "COEFFICIENTS", value: itemsOrNil(opts.Coefficients)},
		{label: "MEASUREMENTS", value: itemsOrNil(opts.Measurements)},
		{label: "PARAMETERS", value: itemsOrNil(opts.Parameters)},
		{label: "METHOD", value: orNil(opts.Method)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		c.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return c, nil
}

// ComputationOptions carries the attributes of a computation object.
type ComputationOptions struct {
	LongName   string
	Properties []string
	Dimension  []int
	Axis       *Axis
	Zones      []*Zone
	Values     []float64
	Units      string
	Source     *Process

	SetName         string
	OriginReference uint32
}

// AddComputation registers a computation. When both values and zones are
// present their counts must agree; this is enforced before writing.
func (lf *LogicalFile) AddComputation(name string, opts ComputationOptions) (*Computation, error) {
	set := lf.set(eflr.SetTypeComputation, opts.SetName, eflr.NewComputationSet)
	c := eflr.NewComputation(set, name)
	if err := lf.registered(c.EFLRItem()); err != nil {
		return nil, err
	}
	for _, p := range opts.Properties {
		if err := lf.checkProperty(p); err != nil {
			return nil, err
		}
	}
	if err := lf.checkUnit(opts.Units); err != nil {
		return nil, err
	}
	err := applyAttrs(c.EFLRItem(), []attrValue{
		{label: "LONG-NAME", value: orNil(opts.LongName)},
		{label: "PROPERTIES", value: strsOrNil(opts.Properties)},
		{label: "DIMENSION", value: intsOrNil(opts.Dimension)},
		{label: "AXIS", value: itemOrNil(opts.Axis)},
		{label: "ZONES", value: itemsOrNil(opts.Zones)},
		{label: "VALUES", value: floatsOrNil(opts.Values), units: opts.Units},
		{label: "SOURCE", value: itemOrNil(opts.Source)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		c.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return c, nil
}

// ProcessOptions carries the attributes of a process object.
type ProcessOptions struct {
	Description        string
	TrademarkName      string
	Version            string
	Properties         []string
	Status             string
	InputChannels      []*Channel
	OutputChannels     []*Channel
	InputComputations  []*Computation
	OutputComputations []*Computation
	Parameters         []*Parameter
	Comments           []string

	SetName         string
	OriginReference uint32
}

// AddProcess registers a process.
func (lf *LogicalFile) AddProcess(name string, opts ProcessOptions) (*Process, error) {
	set := lf.set(eflr.SetTypeProcess, opts.SetName, eflr.NewProcessSet)
	p := eflr.NewProcess(set, name)
	if err := lf.registered(p.EFLRItem()); err != nil {
		return nil, err
	}
	if opts.Status != "" && !eflr.KnownProcessStatus(opts.Status) {
		return nil, &ValueError{Label: "STATUS", Kind: eflr.ErrOutOfRange,
			Cause: fmt.Sprintf("%q is not one of the standard process statuses", opts.Status)}
	}
	for _, prop := range opts.Properties {
		if err := lf.checkProperty(prop); err != nil {
			return nil, err
		}
	}
	err := applyAttrs(p.EFLRItem(), []attrValue{
		{label: "DESCRIPTION", value: orNil(opts.Description)},
		{label: "TRADEMARK-NAME", value: orNil(opts.TrademarkName)},
		{label: "VERSION", value: orNil(opts.Version)},
		{label: "PROPERTIES", value: strsOrNil(opts.Properties)},
		{label: "STATUS", value: orNil(opts.Status)},
		{label: "INPUT-CHANNELS", value: itemsOrNil(opts.InputChannels)},
		{label: "OUTPUT-CHANNELS", value: itemsOrNil(opts.OutputChannels)},
		{label: "INPUT-COMPUTATIONS", value: itemsOrNil(opts.InputComputations)},
		{label: "OUTPUT-COMPUTATIONS", value: itemsOrNil(opts.OutputComputations)},
		{label: "PARAMETERS", value: itemsOrNil(opts.Parameters)},
		{label: "COMMENTS", value: strsOrNil(opts.Comments)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		p.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return p, nil
}

// SpliceOptions carries the attributes of a splice object.
type SpliceOptions struct {
	OutputChannel *Channel
	InputChannels []*Channel
	Zones         []*Zone

	SetName         string
	OriginReference uint32
}

// AddSplice registers a splice.
func (lf *LogicalFile) AddSplice(name string, opts SpliceOptions) (*Splice, error) {
	set := lf.set(eflr.SetTypeSplice, opts.SetName, eflr.NewSpliceSet)
	s := eflr.NewSplice(set, name)
	if err := lf.registered(s.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(s.EFLRItem(), []attrValue{
		{label: "OUTPUT-CHANNEL", value: itemOrNil(opts.OutputChannel)},
		{label: "INPUT-CHANNELS", value: itemsOrNil(opts.InputChannels)},
		{label: "ZONES", value: itemsOrNil(opts.Zones)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		s.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return s, nil
}

// PathOptions carries the attributes of a path object.
type PathOptions struct {
	FrameType          *Frame
	WellReferencePoint *WellReferencePoint
	Value              []*Channel
	BoreholeDepth      *float64
	VerticalDepth      *float64
	RadialDrift        *float64
	AngularDrift       *float64
	Time               *float64
	DepthOffset        *float64
	MeasurePointOffset *float64
	ToolZeroOffset     *float64

	SetName         string
	OriginReference uint32
}

// AddPath registers a path.
func (lf *LogicalFile) AddPath(name string, opts PathOptions) (*Path, error) {
	set := lf.set(eflr.SetTypePath, opts.SetName, eflr.NewPathSet)
	p := eflr.NewPath(set, name)
	if err := lf.registered(p.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(p.EFLRItem(), []attrValue{
		{label: "FRAME-TYPE", value: itemOrNil(opts.FrameType)},
		{label: "WELL-REFERENCE-POINT", value: itemOrNil(opts.WellReferencePoint)},
		{label: "VALUE", value: itemsOrNil(opts.Value)},
		{label: "BOREHOLE-DEPTH", value: floatOrNil(opts.BoreholeDepth)},
		{label: "VERTICAL-DEPTH", value: floatOrNil(opts.VerticalDepth)},
		{label: "RADIAL-DRIFT", value: floatOrNil(opts.RadialDrift)},
		{label: "ANGULAR-DRIFT", value: floatOrNil(opts.AngularDrift)},
		{label: "TIME", value: floatOrNil(opts.Time)},
		{label: "DEPTH-OFFSET", value: floatOrNil(opts.DepthOffset)},
		{label: "MEASURE-POINT-OFFSET", value: floatOrNil(opts.MeasurePointOffset)},
		{label: "TOOL-ZERO-OFFSET", value: floatOrNil(opts.ToolZeroOffset)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		p.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return p, nil
}

// GroupOptions carries the attributes of a group object.
type GroupOptions struct {
	Description string
	ObjectType  string
	ObjectList  []*eflr.Item
	GroupList   []*Group

	SetName         string
	OriginReference uint32
}

// AddGroup registers a group over arbitrary objects.
func (lf *LogicalFile) AddGroup(name string, opts GroupOptions) (*Group, error) {
	set := lf.set(eflr.SetTypeGroup, opts.SetName, eflr.NewGroupSet)
	g := eflr.NewGroup(set, name)
	if err := lf.registered(g.EFLRItem()); err != nil {
		return nil, err
	}
	var objects any
	if len(opts.ObjectList) > 0 {
		objects = opts.ObjectList
	}
	err := applyAttrs(g.EFLRItem(), []attrValue{
		{label: "DESCRIPTION", value: orNil(opts.Description)},
		{label: "OBJECT-TYPE", value: orNil(opts.ObjectType)},
		{label: "OBJECT-LIST", value: objects},
		{label: "GROUP-LIST", value: itemsOrNil(opts.GroupList)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		g.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return g, nil
}

// MessageOptions carries the attributes of a message object.
type MessageOptions struct {
	Type          string
	Time          *time.Time
	BoreholeDrift *float64
	VerticalDepth *float64
	RadialDrift   *float64
	AngularDrift  *float64
	Text          []string

	SetName         string
	OriginReference uint32
}

// AddMessage registers a message.
func (lf *LogicalFile) AddMessage(name string, opts MessageOptions) (*Message, error) {
	set := lf.set(eflr.SetTypeMessage, opts.SetName, eflr.NewMessageSet)
	m := eflr.NewMessage(set, name)
	if err := lf.registered(m.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(m.EFLRItem(), []attrValue{
		{label: "TYPE", value: orNil(opts.Type)},
		{label: "TIME", value: timeOrNil(opts.Time)},
		{label: "BOREHOLE-DRIFT", value: floatOrNil(opts.BoreholeDrift)},
		{label: "VERTICAL-DEPTH", value: floatOrNil(opts.VerticalDepth)},
		{label: "RADIAL-DRIFT", value: floatOrNil(opts.RadialDrift)},
		{label: "ANGULAR-DRIFT", value: floatOrNil(opts.AngularDrift)},
		{label: "TEXT", value: strsOrNil(opts.Text)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		m.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return m, nil
}

// CommentOptions carries the attributes of a comment object.
type CommentOptions struct {
	Text []string

	SetName         string
	OriginReference uint32
}

// AddComment registers a comment.
func (lf *LogicalFile) AddComment(name string, opts CommentOptions) (*Comment, error) {
	set := lf.set(eflr.SetTypeComment, opts.SetName, eflr.NewCommentSet)
	c := eflr.NewComment(set, name)
	if err := lf.registered(c.EFLRItem()); err != nil {
		return nil, err
	}
	if err := applyAttrs(c.EFLRItem(), []attrValue{{label: "TEXT", value: strsOrNil(opts.Text)}}); err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		c.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return c, nil
}

// LongNameOptions carries the attributes of a long-name object.
type LongNameOptions struct {
	GeneralModifier  []string
	Quantity         string
	QuantityModifier []string
	AlteredForm      string
	Entity           string
	EntityModifier   []string
	EntityNumber     string
	EntityPart       string
	EntityPartNumber string
	GenericSource    string
	SourcePart       []string
	SourcePartNumber []string
	Conditions       []string
	StandardSymbol   string
	PrivateSymbol    string

	SetName         string
	OriginReference uint32
}

// AddLongName registers a long-name object.
func (lf *LogicalFile) AddLongName(name string, opts LongNameOptions) (*LongName, error) {
	set := lf.set(eflr.SetTypeLongName, opts.SetName, eflr.NewLongNameSet)
	ln := eflr.NewLongName(set, name)
	if err := lf.registered(ln.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(ln.EFLRItem(), []attrValue{
		{label: "GENERAL-MODIFIER", value: strsOrNil(opts.GeneralModifier)},
		{label: "QUANTITY", value: orNil(opts.Quantity)},
		{label: "QUANTITY-MODIFIER", value: strsOrNil(opts.QuantityModifier)},
		{label: "ALTERED-FORM", value: orNil(opts.AlteredForm)},
		{label: "ENTITY", value: orNil(opts.Entity)},
		{label: "ENTITY-MODIFIER", value: strsOrNil(opts.EntityModifier)},
		{label: "ENTITY-NUMBER", value: orNil(opts.EntityNumber)},
		{label: "ENTITY-PART", value: orNil(opts.EntityPart)},
		{label: "ENTITY-PART-NUMBER", value: orNil(opts.EntityPartNumber)},
		{label: "GENERIC-SOURCE", value: orNil(opts.GenericSource)},
		{label: "SOURCE-PART", value: strsOrNil(opts.SourcePart)},
		{label: "SOURCE-PART-NUMBER", value: strsOrNil(opts.SourcePartNumber)},
		{label: "CONDITIONS", value: strsOrNil(opts.Conditions)},
		{label: "STANDARD-SYMBOL", value: orNil(opts.StandardSymbol)},
		{label: "PRIVATE-SYMBOL", value: orNil(opts.PrivateSymbol)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		ln.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return ln, nil
}

// WellReferencePointOptions carries the attributes of a well reference
// point.
type WellReferencePointOptions struct {
	PermanentDatum          string
	VerticalZero            string
	PermanentDatumElevation *float64
	AbovePermanentDatum     *float64
	MagneticDeclination     *float64
	Coordinate1Name         string
	Coordinate1Value        *float64
	Coordinate2Name         string
	Coordinate2Value        *float64
	Coordinate3Name         string
	Coordinate3Value        *float64

	SetName         string
	OriginReference uint32
}

// AddWellReferencePoint registers a well reference point.
func (lf *LogicalFile) AddWellReferencePoint(name string, opts WellReferencePointOptions) (*WellReferencePoint, error) {
	set := lf.set(eflr.SetTypeWellReferencePoint, opts.SetName, eflr.NewWellReferencePointSet)
	w := eflr.NewWellReferencePoint(set, name)
	if err := lf.registered(w.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(w.EFLRItem(), []attrValue{
		{label: "PERMANENT-DATUM", value: orNil(opts.PermanentDatum)},
		{label: "VERTICAL-ZERO", value: orNil(opts.VerticalZero)},
		{label: "PERMANENT-DATUM-ELEVATION", value: floatOrNil(opts.PermanentDatumElevation)},
		{label: "ABOVE-PERMANENT-DATUM", value: floatOrNil(opts.AbovePermanentDatum)},
		{label: "MAGNETIC-DECLINATION", value: floatOrNil(opts.MagneticDeclination)},
		{label: "COORDINATE-1-NAME", value: orNil(opts.Coordinate1Name)},
		{label: "COORDINATE-1-VALUE", value: floatOrNil(opts.Coordinate1Value)},
		{label: "COORDINATE-2-NAME", value: orNil(opts.Coordinate2Name)},
		{label: "COORDINATE-2-VALUE", value: floatOrNil(opts.Coordinate2Value)},
		{label: "COORDINATE-3-NAME", value: orNil(opts.Coordinate3Name)},
		{label: "COORDINATE-3-VALUE", value: floatOrNil(opts.Coordinate3Value)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		w.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return w, nil
}

// NoFormatOptions carries the attributes of a no-format object.
type NoFormatOptions struct {
	ConsumerName string
	Description  string

	SetName         string
	OriginReference uint32
}

// AddNoFormat registers a no-format object describing an unformatted
// data stream.
func (lf *LogicalFile) AddNoFormat(name string, opts NoFormatOptions) (*NoFormat, error) {
	set := lf.set(eflr.SetTypeNoFormat, opts.SetName, eflr.NewNoFormatSet)
	nf := eflr.NewNoFormat(set, name)
	if err := lf.registered(nf.EFLRItem()); err != nil {
		return nil, err
	}
	err := applyAttrs(nf.EFLRItem(), []attrValue{
		{label: "CONSUMER-NAME", value: orNil(opts.ConsumerName)},
		{label: "DESCRIPTION", value: orNil(opts.Description)},
	})
	if err != nil {
		return nil, err
	}
	if opts.OriginReference != 0 {
		nf.EFLRItem().SetOriginReference(opts.OriginReference)
	}
	return nf, nil
}

// AddNoFormatData queues one unformatted payload to be written as a
// no-format record tied to the given object.
func (lf *LogicalFile) AddNoFormatData(target *NoFormat, data []byte) error {
	if target == nil {
		return &ReferenceError{Object: "NO-FORMAT", Detail: "no target object for unformatted data"}
	}
	lf.noFormatData = append(lf.noFormatData, noFormatBlob{target: target, data: data})
	return nil
}

// AddNoFormatText queues an ASCII payload as a no-format record.
func (lf *LogicalFile) AddNoFormatText(target *NoFormat, text string) error {
	return lf.AddNoFormatData(target, []byte(text))
}

func (lf *LogicalFile) checkProperty(p string) error {
	if p == "" || eflr.KnownProperty(p) {
		return nil
	}
	return &ValueError{Label: "PROPERTIES", Kind: eflr.ErrOutOfRange,
		Cause: fmt.Sprintf("%q is not one of the standard property values", p)}
}

// checkEnum audits a soft enum value: unknown values warn, or fail in
// high-compatibility mode. Empty values are ignored.
func (lf *LogicalFile) checkEnum(what, value string, known func(string) bool) error {
	if value == "" || known(value) {
		return nil
	}
	if lf.highCompat {
		return &ValueError{Label: what, Kind: eflr.ErrOutOfRange,
			Cause: fmt.Sprintf("%q is not one of the standard values", value)}
	}
	lf.log.Warn("value is not one of the standard values", "field", what, "value", value)
	return nil
}
